package life

import "sort"

// Offset is a pattern cell position relative to the pattern's own origin.
// Patterns carry no absolute placement; the engine centers them on load.
type Offset struct {
	X, Y int
}

// Pattern is an immutable named list of alive-cell offsets.
type Pattern struct {
	Name  string
	Cells []Offset
}

// Bounds returns the pattern's bounding box (inclusive).
func (p Pattern) Bounds() (minX, minY, maxX, maxY int) {
	if len(p.Cells) == 0 {
		return 0, 0, 0, 0
	}
	minX, minY = p.Cells[0].X, p.Cells[0].Y
	maxX, maxY = minX, minY
	for _, c := range p.Cells[1:] {
		if c.X < minX {
			minX = c.X
		}
		if c.X > maxX {
			maxX = c.X
		}
		if c.Y < minY {
			minY = c.Y
		}
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	return minX, minY, maxX, maxY
}

// catalog holds the built-in patterns: still lifes, oscillators and
// travelers, in their conventional phases.
var catalog = map[string]Pattern{
	"block": {Name: "block", Cells: []Offset{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
	}},
	"beehive": {Name: "beehive", Cells: []Offset{
		{1, 0}, {2, 0},
		{0, 1}, {3, 1},
		{1, 2}, {2, 2},
	}},
	"loaf": {Name: "loaf", Cells: []Offset{
		{1, 0}, {2, 0},
		{0, 1}, {3, 1},
		{1, 2}, {3, 2},
		{2, 3},
	}},
	"boat": {Name: "boat", Cells: []Offset{
		{0, 0}, {1, 0},
		{0, 1}, {2, 1},
		{1, 2},
	}},
	"tub": {Name: "tub", Cells: []Offset{
		{1, 0},
		{0, 1}, {2, 1},
		{1, 2},
	}},
	"blinker": {Name: "blinker", Cells: []Offset{
		{0, 0}, {1, 0}, {2, 0},
	}},
	"toad": {Name: "toad", Cells: []Offset{
		{1, 0}, {2, 0}, {3, 0},
		{0, 1}, {1, 1}, {2, 1},
	}},
	"beacon": {Name: "beacon", Cells: []Offset{
		{0, 0}, {1, 0},
		{0, 1}, {1, 1},
		{2, 2}, {3, 2},
		{2, 3}, {3, 3},
	}},
	"pulsar":         {Name: "pulsar", Cells: pulsarCells()},
	"pentadecathlon": {Name: "pentadecathlon", Cells: pentadecathlonCells()},
	"glider": {Name: "glider", Cells: []Offset{
		{1, 0},
		{2, 1},
		{0, 2}, {1, 2}, {2, 2},
	}},
	"lwss": {Name: "lwss", Cells: []Offset{
		{1, 0}, {4, 0},
		{0, 1},
		{0, 2}, {4, 2},
		{0, 3}, {1, 3}, {2, 3}, {3, 3},
	}},
	"mwss": {Name: "mwss", Cells: []Offset{
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0},
		{0, 1}, {5, 1},
		{5, 2},
		{0, 3}, {4, 3},
		{2, 4},
	}},
	"hwss": {Name: "hwss", Cells: []Offset{
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0},
		{0, 1}, {6, 1},
		{6, 2},
		{0, 3}, {5, 3},
		{2, 4}, {3, 4},
	}},
}

// pulsarCells builds the 48-cell period-3 pulsar inside a 13x13 box.
func pulsarCells() []Offset {
	arms := []int{2, 3, 4, 8, 9, 10}
	lines := []int{0, 5, 7, 12}
	cells := make([]Offset, 0, 48)
	for _, l := range lines {
		for _, a := range arms {
			cells = append(cells, Offset{a, l}) // horizontal runs
			cells = append(cells, Offset{l, a}) // vertical runs
		}
	}
	return cells
}

// pentadecathlonCells builds the 12-cell period-15 oscillator seed.
func pentadecathlonCells() []Offset {
	cells := []Offset{{2, 0}, {7, 0}, {2, 2}, {7, 2}}
	for x := 0; x < 10; x++ {
		if x == 2 || x == 7 {
			continue
		}
		cells = append(cells, Offset{x, 1})
	}
	return cells
}

// LookupPattern returns the named catalog pattern.
func LookupPattern(name string) (Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

// PatternNames lists the catalog in stable order.
func PatternNames() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
