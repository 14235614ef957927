package converting

import (
	"math"
	"regexp"
	"strconv"
)

var numericPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseNumeric accepts decimal numbers with an optional sign, fraction and
// exponent. Hex, infinities and NaN are rejected.
func ParseNumeric(text string) (float64, bool) {
	if !numericPattern.MatchString(text) {
		return 0, false
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(value, 0) {
		return 0, false
	}

	return value, true
}

// TruncateInt drops the fraction of value. It fails for values outside the
// int32 range.
func TruncateInt(value float64) (int, bool) {
	if math.Abs(value) > math.MaxInt32 {
		return 0, false
	}

	return int(value), true
}
