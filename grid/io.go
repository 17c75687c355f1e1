package grid

import (
	"encoding/binary"
	"io"
	"math"
)

// header field count: zoom, west, north, width, height — five little-endian
// int32 values, matching Extents' five named fields. The sixth field named
// alongside this format elsewhere in the design docs, nIterations, belongs
// to the per-pixel time series format in package accessgrid, not to this
// single-snapshot grid format — a plain Grid has no iteration axis to
// count (see DESIGN.md for the full reasoning).
const headerFieldCount = 5

// WriteTo serializes g in a bit-exact binary format: a little-endian
// header of five int32 (zoom, west, north, width, height)
// followed by Width*Height int32 cell values in row-major order (x inner,
// y outer), delta-coded as successive differences starting from an implicit
// 0, with each density rounded to the nearest integer before delta-coding.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	header := [headerFieldCount]int32{
		int32(g.Zoom), int32(g.West), int32(g.North), int32(g.Width), int32(g.Height),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return 0, err
	}
	written := int64(headerFieldCount * 4)

	prev := int32(0)
	buf := make([]int32, len(g.Opportunities))
	for i, v := range g.Opportunities {
		rounded := int32(math.RoundToEven(v))
		buf[i] = rounded - prev
		prev = rounded
	}
	if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
		return written, err
	}
	written += int64(len(buf) * 4)

	return written, nil
}

// ReadFrom deserializes a Grid previously written by WriteTo, reversing the
// delta coding exactly. Returns a Truncated accesserr if the stream ends
// before the declared width*height cells are read.
func ReadFrom(r io.Reader) (*Grid, error) {
	var header [headerFieldCount]int32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, newTruncatedErr("grid.ReadFrom", errTruncatedHeader)
	}

	extents := Extents{
		Zoom:   int(header[0]),
		West:   int(header[1]),
		North:  int(header[2]),
		Width:  int(header[3]),
		Height: int(header[4]),
	}
	if extents.Width <= 0 || extents.Height <= 0 {
		return nil, newBadConfigErr("grid.ReadFrom", errBadDimensions)
	}

	n := extents.Count()
	deltas := make([]int32, n)
	if err := binary.Read(r, binary.LittleEndian, &deltas); err != nil {
		return nil, newTruncatedErr("grid.ReadFrom", errTruncatedBody)
	}

	cells := make([]float64, n)
	prev := int32(0)
	for i, d := range deltas {
		prev += d
		cells[i] = float64(prev)
	}

	return &Grid{Extents: extents, Opportunities: cells}, nil
}
