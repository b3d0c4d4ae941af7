package render

import (
	"image/color"
	"testing"

	"lifelab/pkg/core"
)

func TestFillCellsRGBAUsesAliveThreshold(t *testing.T) {
	cells := []uint8{core.CellDead, core.CellAlive, 128, 200}
	buf := make([]byte, 4*len(cells))
	fillCellsRGBA(buf, cells, color.White, color.Black)

	wantOn := []bool{false, true, false, true}
	for i, on := range wantOn {
		r := buf[i*4]
		if on && r != 0xFF {
			t.Fatalf("cell %d rendered dark, want alive color", i)
		}
		if !on && r != 0x00 {
			t.Fatalf("cell %d rendered bright, want dead color", i)
		}
	}
}
