package main

import (
	"fmt"
	"log"
	"time"

	"github.com/integrii/flaggy"
	"github.com/logrusorgru/aurora"

	"lifelab/internal/control"
	"lifelab/internal/view"
	"lifelab/pkg/life"
)

type options struct {
	width       int
	height      int
	interval    time.Duration
	maxSteps    int
	workers     int
	seed        int64
	pattern     string
	fill        float64
	interactive bool
}

func main() {
	o := parseOptions()

	eng, err := life.NewWithConfig(life.Config{
		Width:   o.width,
		Height:  o.height,
		Workers: o.workers,
		Seed:    o.seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	if o.pattern != "" {
		if err := eng.LoadPattern(o.pattern); err != nil {
			log.Fatalf("unknown pattern %q (known: %v)", o.pattern, life.PatternNames())
		}
	} else {
		eng.Randomize(o.fill)
	}

	runner := control.NewRunner(eng, o.interval, o.maxSteps)

	if o.interactive {
		view.NewConsoleUI(runner).Start()
		return
	}
	runBatch(runner, o)
}

// runBatch drives the simulation headless until it terminates or hits the
// step limit, printing periodic progress.
func runBatch(runner *control.Runner, o options) {
	fmt.Println(aurora.Cyan("lifelab simulation started..."))
	start := time.Now()

	stCh := make(chan life.Status, 16)
	runner.Subscribe(func(st life.Status) {
		select {
		case stCh <- st:
		default: // drop, progress reporting is best effort
		}
	})
	runner.Start()

	// Poll alongside the status feed: sends are lossy, so completion must
	// not depend on the final notification arriving.
	poll := time.NewTicker(100 * time.Millisecond)
	defer poll.Stop()

	for {
		select {
		case st := <-stCh:
			if report(st, o, start) {
				return
			}
		case <-poll.C:
			if runner.Running() {
				continue
			}
			if report(runner.Engine().Query(), o, start) {
				return
			}
			fmt.Println(aurora.Red("runner stopped before termination"))
			return
		}
	}
}

// report prints progress and, for terminal states, the final summary. It
// returns true once the run is over.
func report(st life.Status, o options, start time.Time) bool {
	switch {
	case st.HasEnded:
		fmt.Println(aurora.Red(st.EndReason))
	case o.maxSteps > 0 && st.Generation >= o.maxSteps:
		fmt.Println(aurora.Yellow("step limit reached without termination"))
	default:
		if st.Generation > 0 && st.Generation%50 == 0 {
			fmt.Printf("generation %d, %d alive\n", st.Generation, st.AliveCount)
		}
		return false
	}
	fmt.Printf("generations: %d, alive: %d, elapsed: %v\n",
		st.Generation, st.AliveCount, time.Since(start).Round(time.Millisecond))
	return true
}

func parseOptions() options {
	o := options{
		width:    120,
		height:   60,
		interval: 50 * time.Millisecond,
		maxSteps: 2000,
		seed:     42,
		fill:     life.DefaultFillProbability,
	}

	flaggy.SetName("lifelab-term")
	flaggy.SetDescription("Conway's Game of Life on a toroidal grid, in your terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.Int(&o.width, "x", "width", "grid width in cells")
	flaggy.Int(&o.height, "y", "height", "grid height in cells")
	flaggy.Duration(&o.interval, "i", "interval", "delay between generations, e.g. 50ms")
	flaggy.Int(&o.maxSteps, "m", "max-steps", "stop after this many generations in batch mode (0 = unlimited)")
	flaggy.Int(&o.workers, "j", "workers", "evaluator workers (0 = one per CPU)")
	flaggy.Int64(&o.seed, "s", "seed", "seed for the random fill")
	flaggy.String(&o.pattern, "p", "pattern", "catalog pattern to load instead of a random fill")
	flaggy.Float64(&o.fill, "f", "fill", "alive probability for the random fill")
	flaggy.Bool(&o.interactive, "n", "interactive", "start the interactive terminal UI")

	flaggy.Parse()
	return o
}
