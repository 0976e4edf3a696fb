package calc

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumberString(t *testing.T) {
	huge, _ := new(big.Int).SetString("-98765432109876543210", 10)

	tests := []struct {
		name string
		n    Number
		want string
	}{
		{"zero integer", Integer(0), "0"},
		{"integer", Integer(3), "3"},
		{"negative integer", Integer(-12), "-12"},
		{"big integer", BigInteger(huge), "-98765432109876543210"},
		{"nil big integer", BigInteger(nil), "0"},
		{"fraction", Float(10.5), "10.5"},
		{"whole float", Float(4), "4.0"},
		{"zero float", Float(0), "0.0"},
		{"negative zero", Float(math.Copysign(0, -1)), "-0.0"},
		{"shortest digits", Float(1.0 / 3), "0.3333333333333333"},
		{"small fixed", Float(0.0001), "0.0001"},
		{"small scientific", Float(0.000015), "1.5e-05"},
		{"large fixed", Float(1234567890123456), "1234567890123456.0"},
		{"large scientific", Float(1e16), "1e+16"},
		{"very large", Float(1.5e300), "1.5e+300"},
		{"positive infinity", Float(math.Inf(1)), "inf"},
		{"negative infinity", Float(math.Inf(-1)), "-inf"},
		{"not a number", Float(math.NaN()), "nan"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, tt.n.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.want, tt.n.Value().String()); diff != "" {
				t.Errorf("value rendering mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestZeroValueRendersAsInteger(t *testing.T) {
	var v Value
	if diff := cmp.Diff("0", v.String()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(KindInteger, v.Kind()); diff != "" {
		t.Errorf("kind mismatch (-want +got):\n%s", diff)
	}
}

func TestTextRendersVerbatim(t *testing.T) {
	for _, s := range []string{"", "hello", " 42 ", "1e5x"} {
		if diff := cmp.Diff(s, Text(s).String()); diff != "" {
			t.Errorf("mismatch for %q (-want +got):\n%s", s, diff)
		}
	}
}
