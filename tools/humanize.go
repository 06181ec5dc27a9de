package tools

import (
	"fmt"
	"math"
)

// HumanSize renders a byte count as a short human string ("1.25 MB").
// Negative counts keep their sign, which the compression result uses when an
// output grew instead of shrinking.
func HumanSize(bytes int64) string {
	sign := ""
	n := float64(bytes)
	if n < 0 {
		sign = "-"
		n = -n
	}
	units := []string{"B", "KB", "MB", "GB", "TB"}
	i := 0
	for n >= 1024 && i < len(units)-1 {
		n /= 1024
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%s%d %s", sign, int64(n), units[i])
	}
	return fmt.Sprintf("%s%s %s", sign, trimZeros(n), units[i])
}

func trimZeros(n float64) string {
	rounded := math.Round(n*100) / 100
	s := fmt.Sprintf("%.2f", rounded)
	for len(s) > 0 && s[len(s)-1] == '0' {
		s = s[:len(s)-1]
	}
	if len(s) > 0 && s[len(s)-1] == '.' {
		s = s[:len(s)-1]
	}
	return s
}
