package accessgrid

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/transitaccess/accesscore/grid"
)

// magic is the 8-byte ASCII tag every Access Grid stream starts with.
var magic = [8]byte{'A', 'C', 'C', 'E', 'S', 'S', 'G', 'R'}

// version is the only format version this package writes or reads.
const version int32 = 0

// headerFieldCount is the six little-endian int32 fields following the
// magic and version: zoom, west, north, width, height, nIterations.
const headerFieldCount = 6

// WriteTo serializes g bit-exactly: 8-byte ASCII magic "ACCESSGR", int32
// version (0), a six-int32 header (zoom, west, north, width, height,
// nIterations), then width*height*nIterations int32 values in row-major
// (y, x, iteration) order, delta-coded along the iteration axis — each
// pixel's NIterations snapshots are encoded as successive differences
// starting from an implicit 0, independently of every other pixel.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	if _, err := w.Write(magic[:]); err != nil {
		return 0, err
	}
	written := int64(len(magic))

	if err := binary.Write(w, binary.LittleEndian, version); err != nil {
		return written, err
	}
	written += 4

	header := [headerFieldCount]int32{
		int32(g.Extents.Zoom), int32(g.Extents.West), int32(g.Extents.North),
		int32(g.Extents.Width), int32(g.Extents.Height), int32(g.NIterations),
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return written, err
	}
	written += int64(headerFieldCount * 4)

	buf := make([]int32, len(g.Values))
	width, height, n := g.Extents.Width, g.Extents.Height, g.NIterations
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			prev := int32(0)
			base := (y*width + x) * n
			for iter := 0; iter < n; iter++ {
				v := g.Values[base+iter]
				buf[base+iter] = v - prev
				prev = v
			}
		}
	}
	if err := binary.Write(w, binary.LittleEndian, buf); err != nil {
		return written, err
	}
	written += int64(len(buf) * 4)

	return written, nil
}

// ReadFrom deserializes a Grid previously written by WriteTo, reversing the
// delta coding exactly and validating the magic and version. Returns a
// BadMagic, VersionMismatch, or Truncated accesserr on malformed input, and
// a BadConfig accesserr if the header declares a non-positive width, height,
// or nIterations.
func ReadFrom(r io.Reader) (*Grid, error) {
	var gotMagic [8]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, newTruncatedErr("accessgrid.ReadFrom", errTruncatedHeader)
	}
	if !bytes.Equal(gotMagic[:], magic[:]) {
		return nil, newBadMagicErr("accessgrid.ReadFrom", errBadMagic)
	}

	var gotVersion int32
	if err := binary.Read(r, binary.LittleEndian, &gotVersion); err != nil {
		return nil, newTruncatedErr("accessgrid.ReadFrom", errTruncatedHeader)
	}
	if gotVersion != version {
		return nil, newVersionMismatchErr("accessgrid.ReadFrom", errUnsupportedVersion)
	}

	var header [headerFieldCount]int32
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, newTruncatedErr("accessgrid.ReadFrom", errTruncatedHeader)
	}

	extents := grid.Extents{
		Zoom:   int(header[0]),
		West:   int(header[1]),
		North:  int(header[2]),
		Width:  int(header[3]),
		Height: int(header[4]),
	}
	nIterations := int(header[5])
	if extents.Width <= 0 || extents.Height <= 0 || nIterations <= 0 {
		return nil, newBadConfigErr("accessgrid.ReadFrom", errBadDimensions)
	}

	total := extents.Width * extents.Height * nIterations
	deltas := make([]int32, total)
	if err := binary.Read(r, binary.LittleEndian, &deltas); err != nil {
		return nil, newTruncatedErr("accessgrid.ReadFrom", errTruncatedBody)
	}

	values := make([]int32, total)
	width, height := extents.Width, extents.Height
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			prev := int32(0)
			base := (y*width + x) * nIterations
			for iter := 0; iter < nIterations; iter++ {
				prev += deltas[base+iter]
				values[base+iter] = prev
			}
		}
	}

	return &Grid{Extents: extents, NIterations: nIterations, Values: values}, nil
}
