package calc

import (
	"math/big"

	"github.com/aledsdavies/add2vals/core/invariant"
)

// Add2 adds a and b.
//
//	(Integer, Integer) -> Integer sum
//	(Float, numeric)   -> Float sum, Integer operand promoted
//	(Text, any)        -> Text a.String() + b.String()
//
// Operand order matters for concatenation: Add2(Text("hello"), 3) is
// "hello3" while Add2(3, Text("hello")) is "3hello".
func Add2(a, b Value) Value {
	if a.kind == KindText || b.kind == KindText {
		return Text(a.String() + b.String())
	}

	result := combine(a.num, b.num, (*big.Int).Add, func(x, y float64) float64 { return x + y })
	return result.Value()
}

// Subtract2 returns a - b with the same promotion rules as Add2.
func Subtract2(a, b Number) Number {
	return combine(a, b, (*big.Int).Sub, func(x, y float64) float64 { return x - y })
}

// combine applies an integer or float operation depending on the operand
// kinds. Integers are never mutated; intOp writes into a fresh big.Int.
func combine(a, b Number, intOp func(z, x, y *big.Int) *big.Int, floatOp func(x, y float64) float64) Number {
	invariant.Precondition(a.kind.IsNumeric(), "left operand has kind %s", a.kind)
	invariant.Precondition(b.kind.IsNumeric(), "right operand has kind %s", b.kind)

	if a.kind == KindInteger && b.kind == KindInteger {
		z := new(big.Int)
		intOp(z, a.bigInt(), b.bigInt())
		return Number{kind: KindInteger, i: z}
	}
	return Float(floatOp(a.Float64(), b.Float64()))
}
