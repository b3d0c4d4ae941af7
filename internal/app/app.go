//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"lifelab/internal/render"
	"lifelab/internal/ui"
	"lifelab/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the life engine to the ebiten.Game interface. Key bindings:
// space pauses, N single-steps, R reseeds with the same seed, S with a new
// one, C clears, P cycles catalog patterns, Tab toggles the overlay, and the
// mouse draws cells (left alive, right dead).
type Game struct {
	eng     *life.Engine
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	patterns   []string
	patternIdx int
	pattern    string

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
	fill     float64
}

// New constructs a Game for the provided engine.
func New(eng *life.Engine, cfg *Config) *Game {
	size := eng.Size()
	return &Game{
		eng:        eng,
		painter:    render.NewGridPainter(size.W, size.H),
		overlay:    ui.NewOverlay(),
		onColor:    color.White,
		offColor:   color.Black,
		patterns:   life.PatternNames(),
		patternIdx: -1,
		pattern:    cfg.Pattern,
		scale:      cfg.Scale,
		seed:       cfg.Seed,
		fill:       cfg.Fill,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reseed(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.eng.Clear()
		g.pattern = ""
		g.paused = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.nextPattern()
	}
	g.handleMouse()

	g.overlay.Update()

	if (!g.paused || g.tickOnce) && !g.eng.Query().HasEnded {
		if err := g.eng.Step(); err != nil {
			return err
		}
		if ended, _ := g.eng.CheckTermination(); ended {
			g.paused = true
		}
		g.tickOnce = false
	}
	return nil
}

// Draw renders the current read buffer and the status overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.eng.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, g.eng.Query(), g.paused, g.pattern)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.eng.Size()
	return size.W * g.scale, size.H * g.scale
}

func (g *Game) reseed(seed int64) {
	g.seed = seed
	g.eng.Reset(seed)
	if g.fill != life.DefaultFillProbability {
		g.eng.Randomize(g.fill)
	}
	g.pattern = ""
	g.tickOnce = false
}

func (g *Game) nextPattern() {
	if len(g.patterns) == 0 {
		return
	}
	g.patternIdx = (g.patternIdx + 1) % len(g.patterns)
	name := g.patterns[g.patternIdx]
	if err := g.eng.LoadPattern(name); err != nil {
		// Catalog names come from the catalog itself; a failure here is a bug.
		log.Printf("load pattern %q: %v", name, err)
		return
	}
	g.pattern = name
	g.paused = true
}

func (g *Game) handleMouse() {
	var alive bool
	switch {
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		alive = true
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
		alive = false
	default:
		return
	}
	mx, my := ebiten.CursorPosition()
	if g.scale <= 0 {
		return
	}
	// Out-of-window coordinates land outside the grid and are dropped by the
	// engine itself.
	g.eng.DrawCell(mx/g.scale, my/g.scale, alive)
}
