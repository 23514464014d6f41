// Package format renders byte counts for display.
package format

import (
	"math"
	"strconv"
)

const (
	// ByteUnit is the step between successive units
	ByteUnit = 1024

	// DefaultDecimals is the precision used by FormatSize
	DefaultDecimals = 2

	zeroBytes = "0 Bytes"
)

// ByteUnits are the unit labels, one per power of ByteUnit
var ByteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatSize formats a byte count with DefaultDecimals digits after the point
func FormatSize(bytes int64) string {
	return FormatBytes(float64(bytes), DefaultDecimals)
}

// FormatBytes scales bytes to the largest power of 1024 not exceeding it
// and prints the magnitude with exactly decimals fraction digits, e.g.
// FormatBytes(1536, 1) == "1.5 KB". Zero is always "0 Bytes". Values past
// the last unit stay in YB.
func FormatBytes(bytes float64, decimals int) string {
	if bytes == 0 {
		return zeroBytes
	}
	if math.IsNaN(bytes) {
		return "NaN " + ByteUnits[0]
	}
	if decimals < 0 {
		decimals = 0
	}

	sign := ""
	if bytes < 0 {
		sign = "-"
		bytes = -bytes
	}

	// repeated division keeps exact powers of 1024 on the right unit
	i := 0
	value := bytes
	for value >= ByteUnit && i < len(ByteUnits)-1 {
		value /= ByteUnit
		i++
	}

	return sign + strconv.FormatFloat(value, 'f', decimals, 64) + " " + ByteUnits[i]
}
