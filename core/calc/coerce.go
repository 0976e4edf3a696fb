package calc

import (
	"errors"
	"math/big"
	"strconv"
	"strings"
)

// Coerce converts raw input to the most specific Value: Integer if s parses
// as one, else Float, else Text. Surrounding whitespace is ignored for the
// numeric attempts; Text keeps s unchanged.
func Coerce(s string) Value {
	if n, ok := ParseInteger(s); ok {
		return n.Value()
	}
	if n, ok := ParseFloat(s); ok {
		return n.Value()
	}
	return Text(s)
}

// ParseInteger parses a base-10 integer with an optional sign. Single
// underscores may separate digits ("1_000").
func ParseInteger(s string) (Number, bool) {
	body := strings.TrimSpace(s)
	sign := ""
	if body != "" && (body[0] == '+' || body[0] == '-') {
		sign, body = body[:1], body[1:]
	}

	digits, ok := stripSeparators(body)
	if !ok || digits == "" {
		return Number{}, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return Number{}, false
		}
	}

	z, ok := new(big.Int).SetString(sign+digits, 10)
	if !ok {
		return Number{}, false
	}
	return Number{kind: KindInteger, i: z}, true
}

// ParseFloat parses decimal or exponent notation as well as inf, infinity
// and nan in any case. Values beyond the double range become ±Inf.
// Hexadecimal float syntax is rejected.
func ParseFloat(s string) (Number, bool) {
	body := strings.TrimSpace(s)
	if body == "" || strings.ContainsAny(body, "xX") {
		return Number{}, false
	}

	digits, ok := stripSeparators(body)
	if !ok {
		return Number{}, false
	}

	f, err := strconv.ParseFloat(digits, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Number{}, false
	}
	return Float(f), true
}

// stripSeparators removes underscores that sit between two digits. Any
// other underscore makes the input invalid.
func stripSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '_' {
			b.WriteByte(c)
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
