package life

import "lifelab/pkg/core"

// BufferPair owns the two grids used for double-buffered generation advance.
// At any instant exactly one grid is tagged read and one write; a step reads
// only from the read grid, writes only to the write grid, and exchanges the
// roles with Swap once the whole pass is done. Grid identity never changes
// after construction, only role and contents.
type BufferPair struct {
	read  *core.ByteGrid
	write *core.ByteGrid
}

// NewBufferPair allocates the two equal-sized grids.
func NewBufferPair(w, h int) *BufferPair {
	return &BufferPair{
		read:  core.NewByteGrid(w, h),
		write: core.NewByteGrid(w, h),
	}
}

// Read returns the grid currently tagged as the read buffer.
func (b *BufferPair) Read() *core.ByteGrid { return b.read }

// Write returns the grid currently tagged as the write buffer.
func (b *BufferPair) Write() *core.ByteGrid { return b.write }

// Swap exchanges the read/write roles. Callers must only invoke it after a
// full pass over every cell has completed; a partial-pass swap would expose
// a generation mixing old and new states.
func (b *BufferPair) Swap() {
	b.read, b.write = b.write, b.read
}

// Snapshot copies the current read buffer out.
func (b *BufferPair) Snapshot() []uint8 {
	return append([]uint8(nil), b.read.Cells()...)
}

// Restore uploads a full set of cells into the read buffer. The slice length
// must match the grid; mismatched uploads are ignored.
func (b *BufferPair) Restore(cells []uint8) {
	dst := b.read.Cells()
	if len(cells) != len(dst) {
		return
	}
	copy(dst, cells)
}
