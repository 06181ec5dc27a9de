package tools

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"

	"github.com/disintegration/imaging"
	"golang.org/x/image/webp"
)

// Thumbnail renders a JPEG preview whose longest edge is at most maxEdge.
// Inputs are decoded by sniffed type; formats outside jpeg/png/webp are
// reported as unsupported so the caller can skip the preview.
func Thumbnail(srcData []byte, maxEdge int, quality int) ([]byte, error) {
	imageType := DetectImageType(srcData)
	var img image.Image
	var err error
	switch imageType {
	case ImageTypePNG:
		img, err = png.Decode(bytes.NewReader(srcData))
	case ImageTypeJPEG:
		img, err = jpeg.Decode(bytes.NewReader(srcData))
	case ImageTypeWEBP:
		img, err = webp.Decode(bytes.NewReader(srcData))
	default:
		return nil, fmt.Errorf("unsupported image type: %s", imageType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	thumb := imaging.Fit(img, maxEdge, maxEdge, imaging.Lanczos)
	ret := new(bytes.Buffer)
	err = jpeg.Encode(ret, thumb, &jpeg.Options{Quality: quality})
	if err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return ret.Bytes(), nil
}
