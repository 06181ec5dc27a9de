package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRatio(t *testing.T) {
	cases := []struct {
		original, compressed int64
		want                 float64
	}{
		{1000, 500, 50},
		{1000, 250, 75},
		{3000, 1000, 66.67},
		{1000, 1000, 0},
		{1000, 1500, -50},
		{0, 100, 0},
	}
	for _, c := range cases {
		require.Equal(t, c.want, Ratio(c.original, c.compressed), "%d -> %d", c.original, c.compressed)
	}
}

func TestThumbName(t *testing.T) {
	require.Equal(t, "abc_thumb.jpg", ThumbName("abc.webp"))
	require.Equal(t, "abc_thumb.jpg", ThumbName("abc.jpeg"))
	require.Equal(t, "noext_thumb.jpg", ThumbName("noext"))
}
