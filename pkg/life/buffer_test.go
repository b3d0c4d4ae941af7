package life

import (
	"slices"
	"testing"

	"lifelab/pkg/core"
)

func TestBufferPairSwapExchangesRoles(t *testing.T) {
	b := NewBufferPair(8, 8)
	read, write := b.Read(), b.Write()
	if read == write {
		t.Fatal("read and write must be distinct grids")
	}

	b.Swap()
	if b.Read() != write || b.Write() != read {
		t.Fatal("Swap must exchange roles without reallocating")
	}
	b.Swap()
	if b.Read() != read || b.Write() != write {
		t.Fatal("double Swap must restore the original roles")
	}
}

func TestBufferPairSnapshotRestore(t *testing.T) {
	b := NewBufferPair(4, 4)
	b.Read().Cells()[5] = core.CellAlive

	snap := b.Snapshot()
	snap[6] = core.CellAlive
	if core.IsAlive(b.Read().Cells()[6]) {
		t.Fatal("snapshot must be a copy, not a view")
	}

	b.Restore(snap)
	if !slices.Equal(b.Read().Cells(), snap) {
		t.Fatal("restore must upload the full snapshot")
	}
}

func TestBufferPairRestoreRejectsMismatchedLength(t *testing.T) {
	b := NewBufferPair(4, 4)
	before := b.Snapshot()
	b.Restore([]uint8{core.CellAlive})
	if !slices.Equal(b.Read().Cells(), before) {
		t.Fatal("mismatched upload must be ignored")
	}
}
