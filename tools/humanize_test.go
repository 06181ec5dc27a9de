package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHumanSize(t *testing.T) {
	cases := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1 KB"},
		{1536, "1.5 KB"},
		{1310720, "1.25 MB"},
		{-1536, "-1.5 KB"},
	}
	for _, c := range cases {
		require.Equal(t, c.want, HumanSize(c.bytes), "bytes %d", c.bytes)
	}
}

func TestDetectImageType(t *testing.T) {
	jpegHeader := append([]byte{0xFF, 0xD8, 0xFF, 0xE0}, make([]byte, 16)...)
	require.Equal(t, ImageTypeJPEG, DetectImageType(jpegHeader))

	pngHeader := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 16)...)
	require.Equal(t, ImageTypePNG, DetectImageType(pngHeader))

	webpHeader := append([]byte("RIFF\x00\x00\x00\x00WEBP"), make([]byte, 16)...)
	require.Equal(t, ImageTypeWEBP, DetectImageType(webpHeader))

	avifHeader := append([]byte("\x00\x00\x00\x20ftypavif"), make([]byte, 16)...)
	require.Equal(t, ImageTypeAVIF, DetectImageType(avifHeader))

	require.Equal(t, ImageTypeUnknown, DetectImageType([]byte("not an image, truly")))
	require.Equal(t, ImageTypeUnknown, DetectImageType([]byte{0x01}))
}
