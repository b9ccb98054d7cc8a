package gridmap

// Partition is a rectangular sub-range [RowStart, RowEnd) x [ColStart, ColEnd)
// of a grid's coordinate space. The executor assigns each partition to exactly
// one worker; partitions produced for a grid are disjoint and their union is
// the full coordinate space.
type Partition struct {
	RowStart, RowEnd int
	ColStart, ColEnd int
}

// Rows returns the number of rows covered by the partition.
func (p Partition) Rows() int { return p.RowEnd - p.RowStart }

// Cols returns the number of columns covered by the partition.
func (p Partition) Cols() int { return p.ColEnd - p.ColStart }

// Size returns the number of elements covered by the partition.
func (p Partition) Size() int { return p.Rows() * p.Cols() }

// partitionSpace splits [0, height) x [0, width) into tiles of at most
// tileRows x tileCols elements. Edge tiles are clipped to the grid boundary,
// so the result covers every coordinate exactly once. An empty coordinate
// space yields no partitions.
func partitionSpace(height, width, tileRows, tileCols int) []Partition {
	if height <= 0 || width <= 0 {
		return nil
	}

	tileRows = max(tileRows, 1)
	tileCols = max(tileCols, 1)

	rowTiles := (height + tileRows - 1) / tileRows
	colTiles := (width + tileCols - 1) / tileCols

	tiles := make([]Partition, 0, rowTiles*colTiles)
	for r := 0; r < height; r += tileRows {
		for c := 0; c < width; c += tileCols {
			tiles = append(tiles, Partition{
				RowStart: r,
				RowEnd:   min(r+tileRows, height),
				ColStart: c,
				ColEnd:   min(c+tileCols, width),
			})
		}
	}
	return tiles
}
