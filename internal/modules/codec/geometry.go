package codec

import (
	"math"
)

// FitWithin scales (srcW, srcH) to fit inside (reqW, reqH) preserving aspect
// ratio. A zero request dimension means unbounded on that axis. The source is
// never enlarged.
func FitWithin(srcW, srcH, reqW, reqH int) (int, int) {
	if srcW <= 0 || srcH <= 0 || (reqW <= 0 && reqH <= 0) {
		return srcW, srcH
	}
	scale := 1.0
	if reqW > 0 {
		scale = math.Min(scale, float64(reqW)/float64(srcW))
	}
	if reqH > 0 {
		scale = math.Min(scale, float64(reqH)/float64(srcH))
	}
	if scale >= 1.0 {
		return srcW, srcH
	}
	w := int(math.Round(float64(srcW) * scale))
	h := int(math.Round(float64(srcH) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}

// StretchTo returns the exact requested dimensions, capped per axis at the
// source so a stretch can distort but never upscale. A zero request keeps the
// source dimension.
func StretchTo(srcW, srcH, reqW, reqH int) (int, int) {
	w, h := srcW, srcH
	if reqW > 0 && reqW < srcW {
		w = reqW
	}
	if reqH > 0 && reqH < srcH {
		h = reqH
	}
	return w, h
}

// PNGCompressionLevel maps the 10-100 quality scale onto zlib levels 0-9,
// inverted: higher quality asks for less aggressive compression.
func PNGCompressionLevel(quality int) int {
	level := int(math.Floor(9 - float64(quality)/11.11))
	if level < 0 {
		return 0
	}
	if level > 9 {
		return 9
	}
	return level
}
