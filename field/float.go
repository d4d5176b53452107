package field

import (
	"strconv"

	"github.com/pkg/errors"
)

// Float is a float64 coefficient field with no epsilon tolerance: equality
// is IEEE-754 equality.
type Float float64

func (x Float) Zero() Float { return 0 }
func (x Float) One() Float  { return 1 }

func (x Float) Equal(y Float) bool { return x == y }
func (x Float) Add(y Float) Float  { return x + y }
func (x Float) Sub(y Float) Float  { return x - y }
func (x Float) Mul(y Float) Float  { return x * y }

// Div returns x/y. Div panics if y is zero.
func (x Float) Div(y Float) Float {
	if y == 0 {
		panic("field: division by zero")
	}
	return x / y
}

func (x Float) Neg() Float       { return -x }
func (x Float) Less(y Float) bool { return x < y }
func (x Float) String() string   { return strconv.FormatFloat(float64(x), 'g', -1, 64) }

// Parse reads a decimal floating-point literal.
func (x Float) Parse(s string) (Float, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "field: invalid float literal %q", s)
	}
	return Float(v), nil
}
