//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifelab/internal/app"
	"lifelab/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	eng, err := life.NewWithConfig(life.Config{
		Width:   cfg.Width,
		Height:  cfg.Height,
		Workers: cfg.Workers,
		Seed:    cfg.Seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Pattern != "" {
		if err := eng.LoadPattern(cfg.Pattern); err != nil {
			log.Fatalf("unknown pattern %q (known: %v)", cfg.Pattern, life.PatternNames())
		}
	} else {
		eng.Randomize(cfg.Fill)
	}

	game := app.New(eng, cfg)
	size := eng.Size()

	ebiten.SetWindowTitle("lifelab")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
