package gridmap

import (
	"fmt"
	"testing"
)

func TestPartitionSpace_CoversEveryCoordinateOnce(t *testing.T) {
	shapes := []struct {
		height, width      int
		tileRows, tileCols int
	}{
		{1, 1, 128, 128},
		{2, 2, 1, 1},
		{7, 13, 3, 5},
		{128, 128, 128, 128},
		{129, 257, 128, 128},
		{1000, 1, 64, 64},
		{1, 1000, 64, 64},
		{50, 50, 7, 50},
		{33, 77, 100, 100}, // tile larger than grid
	}

	for _, s := range shapes {
		name := fmt.Sprintf("%dx%d_tile%dx%d", s.height, s.width, s.tileRows, s.tileCols)
		t.Run(name, func(t *testing.T) {
			tiles := partitionSpace(s.height, s.width, s.tileRows, s.tileCols)

			visits := make([]int, s.height*s.width)
			for _, p := range tiles {
				if p.RowStart < 0 || p.RowEnd > s.height || p.ColStart < 0 || p.ColEnd > s.width {
					t.Fatalf("partition %+v escapes %dx%d grid", p, s.width, s.height)
				}
				if p.Rows() <= 0 || p.Cols() <= 0 {
					t.Fatalf("empty partition %+v", p)
				}
				for r := p.RowStart; r < p.RowEnd; r++ {
					for c := p.ColStart; c < p.ColEnd; c++ {
						visits[r*s.width+c]++
					}
				}
			}

			for i, v := range visits {
				if v != 1 {
					t.Fatalf("coordinate (%d,%d) visited %d times", i/s.width, i%s.width, v)
				}
			}
		})
	}
}

func TestPartitionSpace_EmptySpace(t *testing.T) {
	if tiles := partitionSpace(0, 100, 128, 128); tiles != nil {
		t.Errorf("expected no partitions for zero height, got %d", len(tiles))
	}
	if tiles := partitionSpace(100, 0, 128, 128); tiles != nil {
		t.Errorf("expected no partitions for zero width, got %d", len(tiles))
	}
}

func TestPartitionSpace_ClampsTileSize(t *testing.T) {
	// Non-positive grain falls back to single-element tiles rather than
	// looping forever.
	tiles := partitionSpace(3, 3, 0, -1)

	if len(tiles) != 9 {
		t.Fatalf("expected 9 single-element tiles, got %d", len(tiles))
	}
	for _, p := range tiles {
		if p.Size() != 1 {
			t.Errorf("expected size 1, got %d for %+v", p.Size(), p)
		}
	}
}

func TestPartition_Size(t *testing.T) {
	p := Partition{RowStart: 2, RowEnd: 5, ColStart: 10, ColEnd: 14}

	if p.Rows() != 3 || p.Cols() != 4 || p.Size() != 12 {
		t.Errorf("expected 3 rows, 4 cols, size 12; got %d, %d, %d", p.Rows(), p.Cols(), p.Size())
	}
}
