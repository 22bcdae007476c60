package main

// Cell is one grid square. The zero value is Empty.
type Cell struct {
	Color   Color
	Painted bool
}

// Empty is a fully transparent cell.
var Empty = Cell{}

// Paint returns an opaque cell of the given color.
func Paint(c Color) Cell {
	return Cell{Color: c, Painted: true}
}

// Grid is a square matrix of cells indexed as cells[y][x].
type Grid struct {
	size  int
	cells [][]Cell
}

func NewGrid(size int) (*Grid, error) {
	if size <= 0 || size > maxGridSize {
		return nil, &InvalidSizeError{Size: size}
	}
	cells := make([][]Cell, size)
	for y := range cells {
		cells[y] = make([]Cell, size)
	}
	return &Grid{size: size, cells: cells}, nil
}

func (g *Grid) Size() int {
	return g.size
}

func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.size && y >= 0 && y < g.size
}

// Get returns the cell at x,y or an OutOfBoundsError.
func (g *Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Empty, &OutOfBoundsError{X: x, Y: y, Size: g.size}
	}
	return g.cells[y][x], nil
}

// Set overwrites the cell at x,y. Coordinates outside the grid are ignored;
// a fast drag can report positions just past the edge.
func (g *Grid) Set(x, y int, c Cell) {
	if !g.InBounds(x, y) {
		return
	}
	g.cells[y][x] = c
}

func (g *Grid) Clear() {
	for y := range g.cells {
		row := g.cells[y]
		for x := range row {
			row[x] = Empty
		}
	}
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([][]Cell, g.size)
	for y := range g.cells {
		cells[y] = make([]Cell, g.size)
		copy(cells[y], g.cells[y])
	}
	return &Grid{size: g.size, cells: cells}
}

// Equal reports whether both grids have the same size and cells.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.size != other.size {
		return false
	}
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if g.cells[y][x] != other.cells[y][x] {
				return false
			}
		}
	}
	return true
}

// PaintedCount returns how many cells hold a color.
func (g *Grid) PaintedCount() int {
	n := 0
	for y := range g.cells {
		for _, c := range g.cells[y] {
			if c.Painted {
				n++
			}
		}
	}
	return n
}
