package mercator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLonToPixelKnownValues(t *testing.T) {
	// At zoom 0 the whole world is one 256px tile; lon=-180 -> 0, lon=180 -> 256.
	assert.InDelta(t, 0.0, LonToPixel(-180, 0), 1e-9)
	assert.InDelta(t, 256.0, LonToPixel(180, 0), 1e-9)
	assert.InDelta(t, 128.0, LonToPixel(0, 0), 1e-9)
}

func TestLatToPixelEquatorIsCentered(t *testing.T) {
	assert.InDelta(t, 128.0, LatToPixel(0, 0), 1e-9)
}

func TestPixelLonRoundTrip(t *testing.T) {
	for _, lon := range []float64{-179.9, -90, 0, 45.25, 179.9} {
		for _, zoom := range []int{0, 4, 12, 20} {
			px := LonToPixel(lon, zoom)
			got := PixelToLon(px, zoom)
			assert.InDelta(t, lon, got, 1e-6, "zoom=%d lon=%v", zoom, lon)
		}
	}
}

func TestPixelLatRoundTrip(t *testing.T) {
	for _, lat := range []float64{-80, -45, 0, 12.5, 80} {
		for _, zoom := range []int{0, 4, 12, 20} {
			py := LatToPixel(lat, zoom)
			got := PixelToLat(py, zoom)
			assert.InDelta(t, lat, got, 1e-6, "zoom=%d lat=%v", zoom, lat)
		}
	}
}

func TestPixelToCenterOffsetsByHalf(t *testing.T) {
	zoom := 10
	lon := PixelToLon(100, zoom)
	centerLon := PixelToCenterLon(100, zoom)
	assert.Greater(t, centerLon, lon)

	lat := PixelToLat(100, zoom)
	centerLat := PixelToCenterLat(100, zoom)
	assert.NotEqual(t, lat, centerLat)
}

func TestTilePixelRoundTrip(t *testing.T) {
	for tile := 0; tile < 20; tile++ {
		px := TileToPixel(tile)
		assert.Equal(t, tile, PixelToTile(px))
		assert.Equal(t, tile, PixelToTile(px+TileSize-1))
	}
}

func TestPixelGeometryWinding(t *testing.T) {
	ring := PixelGeometry(5, 5, 10)
	require := assert.New(t)
	require.Len(ring, 5)
	require.Equal(ring[0], ring[4], "ring must close")

	minLon, minLat := ring[0][0], ring[0][1]
	_, maxLat := ring[1][0], ring[1][1]
	maxLon, _ := ring[2][0], ring[2][1]

	require.Less(minLon, maxLon)
	require.Less(minLat, maxLat)
}

func TestLonToPixelFloorMatchesMath(t *testing.T) {
	assert.Equal(t, int(math.Floor(LonToPixel(17.3, 9))), LonToPixelFloor(17.3, 9))
	assert.Equal(t, int(math.Floor(LatToPixel(47.1, 9))), LatToPixelFloor(47.1, 9))
}
