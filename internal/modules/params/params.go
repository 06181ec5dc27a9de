package params

import (
	"strconv"
	"strings"

	"github.com/pixelpress/pixelpress/internal/modules/consts"
)

const (
	MinQuality     = 10
	MaxQuality     = 100
	DefaultQuality = 80
)

// RawOptions is the untrusted client input exactly as it arrives in the
// multipart form.
type RawOptions struct {
	Quality             string
	Format              string
	Width               string
	Height              string
	MaintainAspectRatio string
}

// CompressionParams are fully normalized: every field is safe to hand to the
// codec without further checks.
type CompressionParams struct {
	Quality    int
	Format     consts.Format
	Width      int
	Height     int
	ResizeMode consts.ResizeMode
}

// ResizeRequested reports whether either target dimension was supplied.
func (p CompressionParams) ResizeRequested() bool {
	return p.Width > 0 || p.Height > 0
}

// Resolve normalizes raw options into safe bounds. It never fails: anything
// unparsable falls back to a default.
func Resolve(raw RawOptions) CompressionParams {
	return CompressionParams{
		Quality:    resolveQuality(raw.Quality),
		Format:     resolveFormat(raw.Format),
		Width:      resolveDimension(raw.Width),
		Height:     resolveDimension(raw.Height),
		ResizeMode: resolveResizeMode(raw.MaintainAspectRatio),
	}
}

func resolveQuality(raw string) int {
	q, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultQuality
	}
	if q < MinQuality {
		return MinQuality
	}
	if q > MaxQuality {
		return MaxQuality
	}
	return q
}

func resolveFormat(raw string) consts.Format {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "jpeg", "jpg":
		return consts.FormatJPEG
	case "png":
		return consts.FormatPNG
	case "webp":
		return consts.FormatWebP
	case "avif":
		return consts.FormatAVIF
	default:
		return consts.FormatJPEG
	}
}

func resolveDimension(raw string) int {
	d, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || d <= 0 {
		return 0
	}
	return d
}

func resolveResizeMode(raw string) consts.ResizeMode {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "false", "0", "no":
		return consts.ResizeStretch
	default:
		return consts.ResizeFit
	}
}
