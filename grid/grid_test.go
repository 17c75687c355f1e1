package grid

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridRoundTripScenario3(t *testing.T) {
	// 3x2 grid (width=2,height=3 row-major) with values
	// [[1.4,0.6],[0.0,2.7],[3.5,4.2]] round-trips to [[1,1],[0,3],[4,4]].
	extents := Extents{Zoom: 5, West: 0, North: 0, Width: 2, Height: 3}
	cells := []float64{1.4, 0.6, 0.0, 2.7, 3.5, 4.2}
	g := &Grid{Extents: extents, Opportunities: cells}

	var buf bytes.Buffer
	_, err := g.WriteTo(&buf)
	require.NoError(t, err)

	got, err := ReadFrom(&buf)
	require.NoError(t, err)

	want := []float64{1, 1, 0, 3, 4, 4}
	assert.Equal(t, want, got.Opportunities)
	assert.Equal(t, extents, got.Extents)
}

func TestGridRoundTripExactBytes(t *testing.T) {
	extents := Extents{Zoom: 9, West: 100, North: 200, Width: 4, Height: 4}
	b := NewBuilder(extents)
	for i := 0; i < 16; i++ {
		b.cells[i] = float64(i) * 1.5
	}
	g := b.Build()

	var buf1, buf2 bytes.Buffer
	_, err := g.WriteTo(&buf1)
	require.NoError(t, err)

	got, err := ReadFrom(bytes.NewReader(buf1.Bytes()))
	require.NoError(t, err)

	_, err = got.WriteTo(&buf2)
	require.NoError(t, err)

	// Re-writing the grid read back, which already holds rounded integers,
	// must reproduce the original bytes exactly (rounding only happens on
	// the first write), and writing it once more must do the same.
	var buf1Again bytes.Buffer
	_, err = got.WriteTo(&buf1Again)
	require.NoError(t, err)
	assert.Equal(t, buf1.Bytes(), buf2.Bytes())
	assert.Equal(t, buf1Again.Bytes(), buf2.Bytes())
}

func TestReadFromTruncatedHeader(t *testing.T) {
	_, err := ReadFrom(bytes.NewReader([]byte{1, 2, 3}))
	require.Error(t, err)
}

func TestReadFromTruncatedBody(t *testing.T) {
	extents := Extents{Zoom: 1, West: 0, North: 0, Width: 2, Height: 2}
	g := FromPoints(extents, nil)
	var buf bytes.Buffer
	_, err := g.WriteTo(&buf)
	require.NoError(t, err)

	truncated := buf.Bytes()[:len(buf.Bytes())-2]
	_, err = ReadFrom(bytes.NewReader(truncated))
	require.Error(t, err)
}

func TestIncrementPointInBounds(t *testing.T) {
	extents := ExtentsFromBounds(10, 10, 10, -10, -10)
	g := FromPoints(extents, []Point{{Lat: 0, Lon: 0, Amount: 5}})
	assert.InDelta(t, 5.0, g.Sum(), 1e-9)
}

func TestIncrementPointOutOfBoundsDropsSilentlyByDefault(t *testing.T) {
	extents := ExtentsFromBounds(10, 1, 1, -1, -1)
	g := FromPoints(extents, []Point{{Lat: 80, Lon: 170, Amount: 5}})
	assert.Equal(t, 0.0, g.Sum())
}

func TestIncrementPointOutOfBoundsHookFires(t *testing.T) {
	extents := ExtentsFromBounds(10, 1, 1, -1, -1)
	var hit bool
	b := NewBuilder(extents, WithOutOfBoundsHook(func(lat, lon float64) {
		hit = true
	}))
	b.IncrementPoint(80, 170, 5)
	assert.True(t, hit)
}

func TestPixelWeightsDegenerateGeometry(t *testing.T) {
	extents := Extents{Zoom: 10, West: 0, North: 0, Width: 4, Height: 4}
	b := NewBuilder(extents)
	ring := [][2]float64{{0, 0}, {0, 0}, {0, 0}, {0, 0}}
	_, err := b.PixelWeights(ring)
	require.Error(t, err)
}

func TestRasterizePolygonConservesMass(t *testing.T) {
	// The ring spans world pixels x 524346..524433 and y 524142..524229 at
	// zoom 12; this window covers all of them.
	extents := Extents{Zoom: 12, West: 524340, North: 524136, Width: 100, Height: 100}
	b := NewBuilder(extents)

	ring := [][2]float64{
		{0.02, 0.02}, {0.02, 0.05}, {0.05, 0.05}, {0.05, 0.02}, {0.02, 0.02},
	}
	const value = 1000.0
	require.NoError(t, b.RasterizePolygon(ring, value))

	g := b.Build()
	assert.InDelta(t, value, g.Sum(), 1e-6)
}

func TestTransformWrapperConservesMassUpsampleExample(t *testing.T) {
	// source grid zoom 9 [[8.0]]; target at zoom 11 covering that cell; sum
	// over the 16 target cells equals 8.0 exactly.
	source := &Grid{
		Extents:       Extents{Zoom: 9, West: 100, North: 100, Width: 1, Height: 1},
		Opportunities: []float64{8.0},
	}
	target := Extents{Zoom: 11, West: 400, North: 400, Width: 4, Height: 4}

	w, err := NewTransformWrapper(source, target)
	require.NoError(t, err)

	var sum float64
	for i := 0; i < w.Count(); i++ {
		sum += w.Opportunities(i)
	}
	assert.Equal(t, 8.0, sum)
}

func TestTransformWrapperRejectsDownsample(t *testing.T) {
	source := &Grid{Extents: Extents{Zoom: 12, West: 0, North: 0, Width: 1, Height: 1}, Opportunities: []float64{1}}
	_, err := NewTransformWrapper(source, Extents{Zoom: 8, West: 0, North: 0, Width: 1, Height: 1})
	require.Error(t, err)
}

func TestTransformWrapperRejectsDzTooLarge(t *testing.T) {
	source := &Grid{Extents: Extents{Zoom: 9, West: 0, North: 0, Width: 1, Height: 1}, Opportunities: []float64{1}}
	_, err := NewTransformWrapper(source, Extents{Zoom: 13, West: 0, North: 0, Width: 1, Height: 1})
	require.Error(t, err)
}

func TestExtentsIndexAndInBounds(t *testing.T) {
	e := Extents{Width: 4, Height: 3}
	assert.Equal(t, 9, e.Index(1, 2))
	assert.True(t, e.InBounds(3, 2))
	assert.False(t, e.InBounds(4, 0))
	assert.False(t, e.InBounds(0, 3))
}
