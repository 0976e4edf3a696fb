package calc

import (
	"math"
	"strconv"
	"strings"
)

// Decimal exponents outside [sciLow, sciHigh) render in scientific notation.
const (
	sciLow  = -4
	sciHigh = 16
)

func formatNumber(n Number) string {
	if n.kind == KindInteger {
		return n.bigInt().String()
	}
	return formatFloat(n.f)
}

// formatFloat renders the shortest digits that round-trip to f. Whole values
// in fixed notation keep a ".0" suffix so they stay distinguishable from
// integers: 4.0, 10.5, 1e+16, 1.5e-05, inf, nan.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err == nil && (exp < sciLow || exp >= sciHigh) {
		return sci
	}

	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(fixed, '.') {
		fixed += ".0"
	}
	return fixed
}
