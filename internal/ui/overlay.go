//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"lifelab/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws engine status text on top of the grid view.
type Overlay struct {
	visible bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay() *Overlay {
	return &Overlay{visible: true}
}

// Update toggles overlay visibility.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the status block onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, st life.Status, paused bool, pattern string) {
	if !o.visible {
		return
	}

	mode := "running"
	if paused {
		mode = "paused"
	}
	lines := []string{
		fmt.Sprintf("generation %d", st.Generation),
		fmt.Sprintf("alive %d", st.AliveCount),
		fmt.Sprintf("mode %s", mode),
	}
	if pattern != "" {
		lines = append(lines, fmt.Sprintf("pattern %s", pattern))
	}
	if st.HasEnded {
		lines = append(lines, st.EndReason)
	}

	face := basicfont.Face7x13
	y := 16
	for _, line := range lines {
		// Shadow first so the text stays readable over live cells.
		text.Draw(screen, line, face, 9, y+1, color.Black)
		text.Draw(screen, line, face, 8, y, color.RGBA{R: 120, G: 255, B: 120, A: 255})
		y += face.Height + 3
	}
}
