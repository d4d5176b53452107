// Package field implements the concrete coefficient fields grobner.Field
// is parameterized over: exact rationals, float64, and integers modulo a
// prime.
package field

import (
	"math/big"

	"github.com/pkg/errors"
)

// Rational is an exact rational coefficient, backed by math/big.Rat. Every
// arithmetic method returns a fresh value; it never mutates its receiver
// or argument, so copies of a Rational never alias each other's state.
type Rational struct {
	r *big.Rat
}

// NewRational returns the rational num/den.
func NewRational(num, den int64) Rational {
	return Rational{r: big.NewRat(num, den)}
}

func (x Rational) Zero() Rational { return Rational{r: big.NewRat(0, 1)} }
func (x Rational) One() Rational  { return Rational{r: big.NewRat(1, 1)} }

func (x Rational) Equal(y Rational) bool { return x.r.Cmp(y.r) == 0 }
func (x Rational) Add(y Rational) Rational {
	return Rational{r: new(big.Rat).Add(x.r, y.r)}
}
func (x Rational) Sub(y Rational) Rational {
	return Rational{r: new(big.Rat).Sub(x.r, y.r)}
}
func (x Rational) Mul(y Rational) Rational {
	return Rational{r: new(big.Rat).Mul(x.r, y.r)}
}

// Div returns x/y. Div panics if y is zero.
func (x Rational) Div(y Rational) Rational {
	if y.r.Sign() == 0 {
		panic("field: division by zero")
	}
	return Rational{r: new(big.Rat).Quo(x.r, y.r)}
}

func (x Rational) Neg() Rational     { return Rational{r: new(big.Rat).Neg(x.r)} }
func (x Rational) Less(y Rational) bool { return x.r.Cmp(y.r) < 0 }
func (x Rational) String() string    { return x.r.RatString() }

// Parse reads a decimal or fractional ("a/b") literal.
func (x Rational) Parse(s string) (Rational, error) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, errors.Errorf("field: invalid rational literal %q", s)
	}
	return Rational{r: r}, nil
}
