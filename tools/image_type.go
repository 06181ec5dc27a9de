package tools

import "bytes"

type ImageType string

const (
	ImageTypeJPEG    ImageType = "jpeg"
	ImageTypePNG     ImageType = "png"
	ImageTypeWEBP    ImageType = "webp"
	ImageTypeGIF     ImageType = "gif"
	ImageTypeAVIF    ImageType = "avif"
	ImageTypeUnknown ImageType = "unknown"
)

func (t ImageType) String() string {
	return string(t)
}

// DetectImageType sniffs the magic bytes of common image containers.
func DetectImageType(data []byte) ImageType {
	if len(data) < 12 {
		return ImageTypeUnknown
	}
	switch {
	case bytes.HasPrefix(data, []byte{0xFF, 0xD8, 0xFF}):
		return ImageTypeJPEG
	case bytes.HasPrefix(data, []byte{0x89, 0x50, 0x4E, 0x47}):
		return ImageTypePNG
	case bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WEBP")):
		return ImageTypeWEBP
	case bytes.HasPrefix(data, []byte("GIF8")):
		return ImageTypeGIF
	case bytes.Equal(data[4:8], []byte("ftyp")) && bytes.HasPrefix(data[8:], []byte("avif")):
		return ImageTypeAVIF
	default:
		return ImageTypeUnknown
	}
}
