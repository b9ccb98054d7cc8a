package gridmap

import "testing"

func TestGrid_Dimensions(t *testing.T) {
	g := NewGrid[Sample1](7, 3)

	if g.Width() != 7 {
		t.Errorf("expected width 7, got %d", g.Width())
	}
	if g.Height() != 3 {
		t.Errorf("expected height 3, got %d", g.Height())
	}
}

func TestGrid_ZeroValued(t *testing.T) {
	g := NewGrid[Sample3](4, 4)

	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			if g.At(r, c) != (Sample3{}) {
				t.Fatalf("expected zero value at (%d,%d), got %v", r, c, g.At(r, c))
			}
		}
	}
}

func TestGrid_SetAt(t *testing.T) {
	g := NewGrid[Sample3](3, 2)

	g.Set(1, 2, Sample3{10, 20, 30})

	if got := g.At(1, 2); got != (Sample3{10, 20, 30}) {
		t.Errorf("expected {10 20 30}, got %v", got)
	}
	if got := g.At(0, 2); got != (Sample3{}) {
		t.Errorf("neighbor (0,2) should be untouched, got %v", got)
	}
}

func TestGrid_RowAliasesStorage(t *testing.T) {
	g := NewGrid[Sample1](4, 2)

	row := g.Row(1)
	if len(row) != 4 {
		t.Fatalf("expected row length 4, got %d", len(row))
	}

	row[3] = 99
	if got := g.At(1, 3); got != 99 {
		t.Errorf("write through Row not visible via At: got %d", got)
	}
}

func TestGrid_EmptyGrid(t *testing.T) {
	g := NewGrid[Sample1](0, 0)

	if g.Width() != 0 || g.Height() != 0 {
		t.Errorf("expected 0x0 grid, got %dx%d", g.Width(), g.Height())
	}
}

func TestGrid_PanicsOnOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		fn   func(*Grid[Sample1])
	}{
		{"at negative row", func(g *Grid[Sample1]) { g.At(-1, 0) }},
		{"at past width", func(g *Grid[Sample1]) { g.At(0, 3) }},
		{"set past height", func(g *Grid[Sample1]) { g.Set(2, 0, 0) }},
		{"row out of range", func(g *Grid[Sample1]) { g.Row(5) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic, got none")
				}
			}()
			tt.fn(NewGrid[Sample1](3, 2))
		})
	}
}

func TestGrid_PanicsOnNegativeDimensions(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic, got none")
		}
	}()
	NewGrid[Sample1](-1, 4)
}
