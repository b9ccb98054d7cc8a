package gridmap

import "fmt"

// Sample3 is a three-channel 8-bit pixel sample in decoder channel order.
// The averaging kernels in this package are order-independent, so RGB and
// BGR sources produce the same result.
type Sample3 [3]uint8

// Sample1 is a single-channel 8-bit sample. It aliases uint8 so that
// Grid[Sample1] rows can be copied directly into image buffers.
type Sample1 = uint8

// Grid is a dense 2D array of elements addressed by (row, col) with
// 0 <= row < Height() and 0 <= col < Width(). Width and height are fixed at
// construction and never change; only element contents are mutable.
//
// The backing storage is a single row-major slice, so iterating a row is a
// contiguous scan.
type Grid[T any] struct {
	width  int
	height int
	cells  []T
}

// NewGrid allocates a zero-valued grid of the given dimensions.
// It panics if either dimension is negative.
func NewGrid[T any](width, height int) *Grid[T] {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("gridmap: invalid grid dimensions %dx%d", width, height))
	}
	return &Grid[T]{
		width:  width,
		height: height,
		cells:  make([]T, width*height),
	}
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// At returns the element at (row, col). Out-of-range coordinates panic.
func (g *Grid[T]) At(row, col int) T {
	g.check(row, col)
	return g.cells[row*g.width+col]
}

// Set stores v at (row, col). Out-of-range coordinates panic.
func (g *Grid[T]) Set(row, col int, v T) {
	g.check(row, col)
	g.cells[row*g.width+col] = v
}

// Row returns the backing slice for one row. The slice aliases the grid's
// storage: writes through it are writes to the grid. Workers rely on this
// for contiguous per-row access without per-element bounds checks.
func (g *Grid[T]) Row(row int) []T {
	if row < 0 || row >= g.height {
		panic(fmt.Sprintf("gridmap: row %d out of range [0,%d)", row, g.height))
	}
	start := row * g.width
	return g.cells[start : start+g.width]
}

func (g *Grid[T]) check(row, col int) {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		panic(fmt.Sprintf("gridmap: coordinate (%d,%d) out of range %dx%d", row, col, g.width, g.height))
	}
}
