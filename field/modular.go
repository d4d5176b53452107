package field

import (
	"math/big"

	"github.com/pkg/errors"
)

// Modular is an element of Z_p for a prime modulus p carried per value, so
// elements of different moduli can coexist in one process. Inverse is
// computed with big.Int.ModInverse; for a prime modulus this agrees with
// Fermat's-little-theorem exponentiation.
type Modular struct {
	modulus *big.Int
	v       *big.Int
}

// NewModular returns v mod modulus. modulus must be a prime for Div/Inv to
// behave as field division; NewModular does not itself check primality.
func NewModular(modulus, v int64) Modular {
	m := big.NewInt(modulus)
	return Modular{modulus: m, v: normalize(v, m)}
}

func normalize(v int64, m *big.Int) *big.Int {
	return new(big.Int).Mod(big.NewInt(v), m)
}

func (x Modular) Zero() Modular { return Modular{modulus: x.modulus, v: big.NewInt(0)} }
func (x Modular) One() Modular  { return Modular{modulus: x.modulus, v: big.NewInt(1)} }

func (x Modular) Equal(y Modular) bool { return x.v.Cmp(y.v) == 0 }

func (x Modular) Add(y Modular) Modular { return x.reduce(new(big.Int).Add(x.v, y.v)) }
func (x Modular) Sub(y Modular) Modular { return x.reduce(new(big.Int).Sub(x.v, y.v)) }
func (x Modular) Mul(y Modular) Modular { return x.reduce(new(big.Int).Mul(x.v, y.v)) }

// Div returns x/y computed as x * y^-1 mod p. Div panics if y is zero.
func (x Modular) Div(y Modular) Modular {
	if y.v.Sign() == 0 {
		panic("field: division by zero")
	}
	inv := new(big.Int).ModInverse(y.v, y.modulus)
	return x.reduce(new(big.Int).Mul(x.v, inv))
}

func (x Modular) Neg() Modular { return x.reduce(new(big.Int).Neg(x.v)) }

// Less orders representatives 0..p-1; Z_p has no intrinsic sign, so this
// comparison exists solely to satisfy grobner.Field's sign-testing
// contract for printing and carries no algebraic meaning.
func (x Modular) Less(y Modular) bool { return x.v.Cmp(y.v) < 0 }

func (x Modular) String() string { return x.v.String() }

// Parse reads a (possibly negative) decimal integer literal, reducing it
// mod x's modulus.
func (x Modular) Parse(s string) (Modular, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Modular{}, errors.Errorf("field: invalid integer literal %q", s)
	}
	return x.reduce(v), nil
}

// Modulus returns x's prime modulus.
func (x Modular) Modulus() int64 { return x.modulus.Int64() }

func (x Modular) reduce(v *big.Int) Modular {
	return Modular{modulus: x.modulus, v: new(big.Int).Mod(v, x.modulus)}
}
