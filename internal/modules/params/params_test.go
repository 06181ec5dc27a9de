package params

import (
	"testing"

	"github.com/pixelpress/pixelpress/internal/modules/consts"
	"github.com/stretchr/testify/require"
)

func TestResolveQuality(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", DefaultQuality},
		{"abc", DefaultQuality},
		{"50", 50},
		{"10", 10},
		{"100", 100},
		{"5", MinQuality},
		{"0", MinQuality},
		{"-20", MinQuality},
		{"101", MaxQuality},
		{"9999", MaxQuality},
		{" 73 ", 73},
	}
	for _, c := range cases {
		got := Resolve(RawOptions{Quality: c.raw}).Quality
		require.Equal(t, c.want, got, "quality %q", c.raw)
	}
}

func TestResolveFormat(t *testing.T) {
	cases := []struct {
		raw  string
		want consts.Format
	}{
		{"", consts.FormatJPEG},
		{"jpeg", consts.FormatJPEG},
		{"jpg", consts.FormatJPEG},
		{"JPG", consts.FormatJPEG},
		{"PNG", consts.FormatPNG},
		{"webp", consts.FormatWebP},
		{"AVIF", consts.FormatAVIF},
		{"gif", consts.FormatJPEG},
		{"bmp", consts.FormatJPEG},
	}
	for _, c := range cases {
		got := Resolve(RawOptions{Format: c.raw}).Format
		require.Equal(t, c.want, got, "format %q", c.raw)
	}
}

func TestResolveDimensions(t *testing.T) {
	p := Resolve(RawOptions{Width: "500"})
	require.Equal(t, 500, p.Width)
	require.Equal(t, 0, p.Height)
	require.True(t, p.ResizeRequested())

	p = Resolve(RawOptions{Width: "-10", Height: "abc"})
	require.Equal(t, 0, p.Width)
	require.Equal(t, 0, p.Height)
	require.False(t, p.ResizeRequested())

	p = Resolve(RawOptions{})
	require.False(t, p.ResizeRequested())
}

func TestResolveResizeMode(t *testing.T) {
	require.Equal(t, consts.ResizeFit, Resolve(RawOptions{}).ResizeMode)
	require.Equal(t, consts.ResizeFit, Resolve(RawOptions{MaintainAspectRatio: "true"}).ResizeMode)
	require.Equal(t, consts.ResizeFit, Resolve(RawOptions{MaintainAspectRatio: "garbage"}).ResizeMode)
	require.Equal(t, consts.ResizeStretch, Resolve(RawOptions{MaintainAspectRatio: "false"}).ResizeMode)
	require.Equal(t, consts.ResizeStretch, Resolve(RawOptions{MaintainAspectRatio: "0"}).ResizeMode)
	require.Equal(t, consts.ResizeStretch, Resolve(RawOptions{MaintainAspectRatio: "no"}).ResizeMode)
}
