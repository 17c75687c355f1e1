package accessgrid

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/transitaccess/accesscore/accesserr"
	"github.com/transitaccess/accesscore/grid"
)

func TestNewRejectsBadConfig(t *testing.T) {
	_, err := New(grid.Extents{Zoom: 5, West: 0, North: 0, Width: 2, Height: 2}, 0)
	require.Error(t, err)
	assert.Equal(t, accesserr.BadConfig, err.(*accesserr.Error).Kind)
}

func TestSetAndAtRoundTripInMemory(t *testing.T) {
	g, err := New(grid.Extents{Zoom: 5, West: 0, North: 0, Width: 2, Height: 2}, 3)
	require.NoError(t, err)

	g.Set(1, 0, 2, 42)
	assert.Equal(t, int32(42), g.At(1, 0, 2))
	assert.Equal(t, int32(0), g.At(0, 0, 0))
}

func TestGridRoundTripDeltaCoding(t *testing.T) {
	// 2x1 grid, 3 iterations per pixel: pixel (0,0) = [10,10,7], pixel
	// (1,0) = [0,5,5].
	extents := grid.Extents{Zoom: 8, West: 3, North: 4, Width: 2, Height: 1}
	g := &Grid{Extents: extents, NIterations: 3, Values: []int32{10, 10, 7, 0, 5, 5}}

	var buf bytes.Buffer
	_, err := g.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ReadFrom(&buf)
	require.NoError(t, err)

	assert.Equal(t, g.Values, got.Values)
	assert.Equal(t, extents, got.Extents)
	assert.Equal(t, 3, got.NIterations)
}

func TestWriteToEmitsExpectedMagicAndVersion(t *testing.T) {
	extents := grid.Extents{Zoom: 1, West: 0, North: 0, Width: 1, Height: 1}
	g := &Grid{Extents: extents, NIterations: 1, Values: []int32{5}}

	var buf bytes.Buffer
	_, err := g.WriteTo(&buf)
	require.NoError(t, err)

	got := buf.Bytes()
	require.True(t, len(got) >= 8)
	assert.Equal(t, "ACCESSGR", string(got[:8]))
}

func TestReadFromRejectsBadMagic(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader([]byte("NOTAGRID" + "\x00\x00\x00\x00")))
	require.Error(t, err)
	assert.Equal(t, accesserr.BadMagic, err.(*accesserr.Error).Kind)
}

func TestReadFromRejectsUnsupportedVersion(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(magic[:])
	buf.Write([]byte{7, 0, 0, 0}) // version = 7, little-endian

	_, err := ReadFrom(&buf)
	require.Error(t, err)
	assert.Equal(t, accesserr.VersionMismatch, err.(*accesserr.Error).Kind)
}

func TestReadFromRejectsTruncatedBody(t *testing.T) {
	extents := grid.Extents{Zoom: 1, West: 0, North: 0, Width: 2, Height: 2}
	g := &Grid{Extents: extents, NIterations: 2, Values: make([]int32, 8)}

	var buf bytes.Buffer
	_, err := g.WriteTo(&buf)
	require.NoError(t, err)

	truncated := bytes.NewReader(buf.Bytes()[:buf.Len()-4])
	_, err = ReadFrom(truncated)
	require.Error(t, err)
	assert.Equal(t, accesserr.Truncated, err.(*accesserr.Error).Kind)
}

func TestGzipRoundTrip(t *testing.T) {
	extents := grid.Extents{Zoom: 6, West: 10, North: 20, Width: 3, Height: 2}
	g := &Grid{Extents: extents, NIterations: 2, Values: []int32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}}

	var buf bytes.Buffer
	require.NoError(t, g.WriteGzip(&buf))

	got, err := ReadGzip(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Values, got.Values)
	assert.Equal(t, g.Extents, got.Extents)
}
