package compress

import "strings"

// TargetSize returns the render size for a width x height source. Only the
// dominant axis is clamped: a landscape or square image is bounded by
// maxWidth, a portrait one by maxHeight, and the other axis follows the
// aspect ratio without being checked against its own bound. A bound of zero
// or less means unbounded. Fractional results are truncated.
func TargetSize(width, height, maxWidth, maxHeight int) (int, int) {
	w := float64(width)
	h := float64(height)

	if width >= height {
		if maxWidth > 0 && w > float64(maxWidth) {
			h *= float64(maxWidth) / w
			w = float64(maxWidth)
		}
	} else {
		if maxHeight > 0 && h > float64(maxHeight) {
			w *= float64(maxHeight) / h
			h = float64(maxHeight)
		}
	}

	return int(w), int(h)
}

// WebPName replaces the final extension of name with .webp, or appends it
// when there is none: "a.b.c.png" -> "a.b.c.webp", "noext" -> "noext.webp".
func WebPName(name string) string {
	idx := strings.LastIndex(name, ".")
	if idx == -1 {
		return name + OutputExtension
	}
	return name[:idx] + OutputExtension
}
