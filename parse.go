package grobner

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fdr400/grobner/parse"
)

// ParseMonomial parses a TeX-like monomial literal (an optional sign, an
// optional coefficient literal, followed by zero or more variable factors)
// under ctx, using field to parse the coefficient.
func ParseMonomial[K Field[K]](ctx Context, field K, s string) (Monomial[K], error) {
	n, err := parse.ParseMonomial(s)
	if err != nil {
		return Monomial[K]{}, err
	}
	return evalMonomial(ctx, field, n)
}

// ParsePolynomial parses a TeX-like polynomial literal: a non-empty
// sequence of monomials separated by "+" or "-", or "0" for the zero
// polynomial.
func ParsePolynomial[K Field[K]](ctx Context, field K, s string) (Polynomial[K], error) {
	n, err := parse.ParsePolynomial(s)
	if err != nil {
		return Polynomial[K]{}, err
	}
	ms, err := evalMonomials(ctx, field, n.Monomials)
	if err != nil {
		return Polynomial[K]{}, err
	}
	return NewPolynomial(ctx, field, ms...), nil
}

// ParseSystem parses a TeX-like polynomial-system literal: a leading count
// followed by that many polynomials separated by whitespace, into a Set
// configured with variant.
func ParseSystem[K Field[K]](ctx Context, field K, variant Variant, s string) (*Set[K], error) {
	n, err := parse.ParseSystem(s)
	if err != nil {
		return nil, err
	}
	polys := make([]Polynomial[K], 0, len(n.Polynomials))
	for _, pn := range n.Polynomials {
		ms, err := evalMonomials(ctx, field, pn.Monomials)
		if err != nil {
			return nil, err
		}
		polys = append(polys, NewPolynomial(ctx, field, ms...))
	}
	return NewSet(ctx, field, variant, polys...), nil
}

func evalMonomials[K Field[K]](ctx Context, field K, ns []parse.Monomial) ([]Monomial[K], error) {
	ms := make([]Monomial[K], 0, len(ns))
	for _, n := range ns {
		m, err := evalMonomial(ctx, field, n)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}

func evalMonomial[K Field[K]](ctx Context, field K, n parse.Monomial) (Monomial[K], error) {
	coef, err := evalCoefficient(field, n.Coefficient)
	if err != nil {
		return Monomial[K]{}, errors.Wrapf(err, "grobner: parsing monomial factor list %v", n.Factors)
	}
	occ := make([]Occurrence, 0, len(n.Factors))
	for _, f := range n.Factors {
		deg := f.Degree
		if deg == 0 {
			deg = 1
		}
		occ = append(occ, Occurrence{ID: Variable(f.ID), Degree: uint32(deg)})
	}
	return NewMonomial(ctx, field, coef, occ), nil
}

func evalCoefficient[K Field[K]](field K, literal string) (K, error) {
	switch literal {
	case "", "+":
		return field.One(), nil
	case "-":
		return field.One().Neg(), nil
	default:
		c, err := field.Parse(literal)
		if err != nil {
			return field.Zero(), errors.Wrapf(err, "grobner: parsing coefficient %q", literal)
		}
		return c, nil
	}
}

// String renders m in the TeX-like surface syntax: a coefficient of 1 is
// omitted unless m is a bare constant, a coefficient of -1 is written as
// writeCoefficient describes, and braces are used only around multi-digit
// variable ids and degrees.
func (m Monomial[K]) String() string {
	var b strings.Builder
	writeCoefficient(&b, m.coef, m.field, len(m.occ) != 0)
	for _, o := range m.occ {
		b.WriteString("x_")
		writeTeXNumber(&b, uint64(o.ID))
		if o.Degree > 1 {
			b.WriteString("^")
			writeTeXNumber(&b, uint64(o.Degree))
		}
	}
	return b.String()
}

// writeCoefficient handles the ±1 special cases. A -1 coefficient in a
// field where "<0" is meaningful prints as a bare minus sign with no
// following "1", even for a constant monomial; the parser accepts that
// form back, so round trips still hold. In fields without an intrinsic
// sign (Z_p), -1 has a non-negative representative and prints as that
// representative instead.
func writeCoefficient[K Field[K]](b *strings.Builder, coef, field K, hasFactors bool) {
	negOne := field.One().Neg()
	switch {
	case coef.Equal(negOne):
		switch {
		case coef.Less(field.Zero()):
			b.WriteString("-")
		case !coef.Equal(field.One()):
			b.WriteString(coef.String())
		case !hasFactors:
			b.WriteString(field.One().String())
		}
	case !coef.Equal(field.One()):
		b.WriteString(coef.String())
	case !hasFactors:
		b.WriteString(field.One().String())
	}
}

func writeTeXNumber(b *strings.Builder, n uint64) {
	if n >= 10 {
		b.WriteString("{")
		b.WriteString(strconv.FormatUint(n, 10))
		b.WriteString("}")
		return
	}
	b.WriteString(strconv.FormatUint(n, 10))
}

// String renders p in the TeX-like surface syntax: its monomials in
// ordering order (leading first), separated by "+" or "-"; the zero
// polynomial prints as "0".
func (p Polynomial[K]) String() string {
	if p.IsZero() {
		return "0"
	}
	var b strings.Builder
	first := true
	for m := range p.Monomials() {
		if !first && p.field.Zero().Less(m.Coefficient()) {
			b.WriteString("+")
		}
		b.WriteString(m.String())
		first = false
	}
	return b.String()
}

// String renders s as a polynomial system: its polynomials separated by
// "; " and terminated by "."; the empty system prints as "0".
func (s *Set[K]) String() string {
	if len(s.polys) == 0 {
		return "0"
	}
	parts := make([]string, len(s.polys))
	for i, p := range s.polys {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; ") + "."
}
