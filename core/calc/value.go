// Package calc implements the add2vals arithmetic library.
//
// Operands are modelled as explicit tagged unions. Value is exactly one of
// Integer, Float or Text; Number is the numeric subset (Integer or Float).
// Add2 accepts any Value and concatenates when text is involved, while
// Subtract2 only accepts Numbers, so non-numeric subtraction cannot be
// expressed.
package calc

import (
	"math"
	"math/big"

	"github.com/aledsdavies/add2vals/core/invariant"
)

// Kind identifies which variant of a Value or Number is active.
type Kind uint8

const (
	KindInteger Kind = iota // arbitrary-precision integer
	KindFloat               // IEEE-754 double
	KindText                // literal text
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// IsNumeric reports whether k is KindInteger or KindFloat.
func (k Kind) IsNumeric() bool {
	return k == KindInteger || k == KindFloat
}

// Number is an Integer or a Float. The zero Number is Integer(0).
type Number struct {
	kind Kind

	// Union fields (only one valid per kind)
	i *big.Int // KindInteger; nil means zero
	f float64  // KindFloat
}

// Integer returns an Integer Number.
func Integer(n int64) Number {
	return Number{kind: KindInteger, i: big.NewInt(n)}
}

// BigInteger returns an Integer Number holding a copy of n.
// A nil n is treated as zero.
func BigInteger(n *big.Int) Number {
	if n == nil {
		return Number{kind: KindInteger}
	}
	return Number{kind: KindInteger, i: new(big.Int).Set(n)}
}

// Float returns a Float Number.
func Float(f float64) Number {
	return Number{kind: KindFloat, f: f}
}

// Kind returns KindInteger or KindFloat.
func (n Number) Kind() Kind {
	return n.kind
}

// Int returns a copy of the integer payload. It panics if n is a Float.
func (n Number) Int() *big.Int {
	invariant.Precondition(n.kind == KindInteger, "Int called on %s number", n.kind)
	return new(big.Int).Set(n.bigInt())
}

// Float64 returns n as a float64, converting Integers to the nearest double.
// Integers too large for a double convert to ±Inf.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindFloat:
		return n.f
	case KindInteger:
		f, _ := new(big.Float).SetInt(n.bigInt()).Float64()
		return f
	default:
		invariant.Invariant(false, "number has non-numeric kind %s", n.kind)
		return math.NaN()
	}
}

// Value widens n to a Value.
func (n Number) Value() Value {
	return Value{kind: n.kind, num: n}
}

// Equal reports whether n and o hold the same variant and payload.
// Floats compare with ==, so NaN is never equal to itself.
func (n Number) Equal(o Number) bool {
	if n.kind != o.kind {
		return false
	}
	if n.kind == KindInteger {
		return n.bigInt().Cmp(o.bigInt()) == 0
	}
	return n.f == o.f
}

func (n Number) String() string {
	return formatNumber(n)
}

func (n Number) bigInt() *big.Int {
	if n.i == nil {
		return new(big.Int)
	}
	return n.i
}

// Value is an Integer, a Float or Text. The zero Value is Integer(0).
type Value struct {
	kind Kind
	num  Number // KindInteger, KindFloat
	text string // KindText
}

// Text returns a Text Value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Kind returns the active variant.
func (v Value) Kind() Kind {
	return v.kind
}

// Number narrows v to a Number. ok is false for Text.
func (v Value) Number() (n Number, ok bool) {
	if !v.kind.IsNumeric() {
		return Number{}, false
	}
	return v.num, true
}

// Equal reports whether v and o hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	if v.kind == KindText {
		return v.text == o.text
	}
	return v.num.Equal(o.num)
}

// String returns the canonical rendering: Text verbatim, numbers in
// canonical decimal form.
func (v Value) String() string {
	switch v.kind {
	case KindText:
		return v.text
	case KindInteger, KindFloat:
		return formatNumber(v.num)
	default:
		invariant.Invariant(false, "value has unknown kind %d", uint8(v.kind))
		return ""
	}
}
