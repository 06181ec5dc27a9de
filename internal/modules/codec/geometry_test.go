package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFitWithinNeverUpscales(t *testing.T) {
	cases := []struct {
		srcW, srcH, reqW, reqH int
		wantW, wantH           int
	}{
		{2000, 2000, 500, 0, 500, 500},
		{2000, 1000, 500, 0, 500, 250},
		{1000, 2000, 0, 500, 250, 500},
		{2000, 1000, 500, 100, 200, 100},
		{800, 600, 4000, 3000, 800, 600},
		{800, 600, 4000, 0, 800, 600},
		{800, 600, 0, 0, 800, 600},
		{800, 600, 800, 600, 800, 600},
	}
	for _, c := range cases {
		w, h := FitWithin(c.srcW, c.srcH, c.reqW, c.reqH)
		require.Equal(t, c.wantW, w, "width for %+v", c)
		require.Equal(t, c.wantH, h, "height for %+v", c)
		require.LessOrEqual(t, w, c.srcW)
		require.LessOrEqual(t, h, c.srcH)
	}
}

func TestFitWithinTinyTargets(t *testing.T) {
	w, h := FitWithin(10000, 10, 1, 0)
	require.GreaterOrEqual(t, w, 1)
	require.GreaterOrEqual(t, h, 1)
}

func TestStretchTo(t *testing.T) {
	w, h := StretchTo(2000, 1000, 500, 800)
	require.Equal(t, 500, w)
	require.Equal(t, 800, h)

	// caps at the source per axis
	w, h = StretchTo(2000, 1000, 3000, 500)
	require.Equal(t, 2000, w)
	require.Equal(t, 500, h)

	// zero keeps the source dimension
	w, h = StretchTo(2000, 1000, 500, 0)
	require.Equal(t, 500, w)
	require.Equal(t, 1000, h)
}

func TestPNGCompressionLevel(t *testing.T) {
	cases := []struct {
		quality int
		want    int
	}{
		{10, 8},
		{50, 4},
		{80, 1},
		{100, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, PNGCompressionLevel(c.quality), "quality %d", c.quality)
	}
	for q := 10; q <= 100; q++ {
		level := PNGCompressionLevel(q)
		require.GreaterOrEqual(t, level, 0)
		require.LessOrEqual(t, level, 9)
	}
}
