package grobner

import (
	"iter"

	"github.com/jba/omap"
)

// Polynomial is a finite sum of monomials whose monomial parts (coefficient
// stripped) are pairwise distinct, stored in an ordered map keyed by Word
// and compared with the active monomial Order. The zero value is not a
// valid Polynomial; build one with NewPolynomial or via arithmetic on an
// existing Polynomial.
type Polynomial[K Field[K]] struct {
	ctx   Context
	field K
	m     *omap.MapFunc[Word, K]
}

func zeroPolynomial[K Field[K]](ctx Context, field K) Polynomial[K] {
	return Polynomial[K]{ctx: ctx, field: field, m: omap.NewMapFunc[Word, K](ctx.Order)}
}

// NewPolynomial returns the polynomial built from monomials: zero monomials
// are dropped, and monomials sharing a monomial part have their
// coefficients summed (dropping the term entirely if the sum is zero).
func NewPolynomial[K Field[K]](ctx Context, field K, monomials ...Monomial[K]) Polynomial[K] {
	p := zeroPolynomial(ctx, field)
	for _, m := range monomials {
		p.addMonomial(m)
	}
	return p
}

func (p Polynomial[K]) addMonomial(m Monomial[K]) {
	if m.IsZero() {
		return
	}
	c := m.coef
	if prev, ok := p.m.Get(m.occ); ok {
		c = prev.Add(m.coef)
	}
	if c.Equal(p.field.Zero()) {
		p.m.Delete(m.occ)
	} else {
		p.m.Set(m.occ, c)
	}
}

// Len reports the number of non-zero terms in p.
func (p Polynomial[K]) Len() int { return p.m.Len() }

// IsZero reports whether p is the zero polynomial.
func (p Polynomial[K]) IsZero() bool { return p.m.Len() == 0 }

// Field returns the field witness p was built with.
func (p Polynomial[K]) Field() K { return p.field }

// Context returns the (variable order, monomial order) pair p was built
// under.
func (p Polynomial[K]) Context() Context { return p.ctx }

// Leading returns p's leading monomial L(p): the greatest term under the
// active monomial ordering. It reports false for the zero polynomial.
func (p Polynomial[K]) Leading() (Monomial[K], bool) {
	w, ok := p.m.Max()
	if !ok {
		return Monomial[K]{}, false
	}
	c, _ := p.m.Get(w)
	return Monomial[K]{ctx: p.ctx, field: p.field, coef: c, occ: w, deg: totalDegree(w)}, true
}

// Monomials iterates p's terms from the leading monomial down.
func (p Polynomial[K]) Monomials() iter.Seq[Monomial[K]] {
	return func(yield func(Monomial[K]) bool) {
		for w, c := range p.m.Backward() {
			m := Monomial[K]{ctx: p.ctx, field: p.field, coef: c, occ: w, deg: totalDegree(w)}
			if !yield(m) {
				return
			}
		}
	}
}

// Add returns p + q.
func (p Polynomial[K]) Add(q Polynomial[K]) Polynomial[K] {
	r := zeroPolynomial(p.ctx, p.field)
	for m := range p.Monomials() {
		r.addMonomial(m)
	}
	for m := range q.Monomials() {
		r.addMonomial(m)
	}
	return r
}

// Sub returns p - q.
func (p Polynomial[K]) Sub(q Polynomial[K]) Polynomial[K] {
	return p.Add(q.MulScalar(p.field.One().Neg()))
}

// MulScalar returns p with every term's coefficient multiplied by f. If f
// is zero, the result is the zero polynomial.
func (p Polynomial[K]) MulScalar(f K) Polynomial[K] {
	r := zeroPolynomial(p.ctx, p.field)
	if f.Equal(p.field.Zero()) {
		return r
	}
	for m := range p.Monomials() {
		r.addMonomial(m.MulScalar(f))
	}
	return r
}

// MulMonomial returns p * m. Multiplication by a non-zero monomial is
// injective on monomial parts, so no new collisions arise among p's
// existing terms; if m is zero the result is the zero polynomial.
func (p Polynomial[K]) MulMonomial(m Monomial[K]) Polynomial[K] {
	r := zeroPolynomial(p.ctx, p.field)
	if m.IsZero() {
		return r
	}
	for t := range p.Monomials() {
		r.addMonomial(t.Mul(m))
	}
	return r
}

// ReduceBy finds any monomial t of p divisible by L(g) and, if one exists,
// replaces p with p - (t/L(g))*g, reporting true. If no such monomial
// exists (including when g is zero), p is returned unchanged and false is
// reported.
func (p Polynomial[K]) ReduceBy(g Polynomial[K]) (Polynomial[K], bool) {
	lg, ok := g.Leading()
	if !ok {
		return p, false
	}
	for t := range p.Monomials() {
		if t.Divides(lg) {
			quotient := t.Div(lg)
			return p.Sub(g.MulMonomial(quotient)), true
		}
	}
	return p, false
}

// Equal reports whether p and q have identical terms.
func (p Polynomial[K]) Equal(q Polynomial[K]) bool {
	if p.Len() != q.Len() {
		return false
	}
	for m := range p.Monomials() {
		c, ok := q.m.Get(m.occ)
		if !ok || !c.Equal(m.Coefficient()) {
			return false
		}
	}
	return true
}

// SPolynomial returns the S-polynomial of p and q:
//
//	S(p, q) = (L/L(p))*p - (L/L(q))*q,  L = lcm(L(p), L(q)).
//
// Both p and q must be non-zero.
func SPolynomial[K Field[K]](p, q Polynomial[K]) Polynomial[K] {
	lp, _ := p.Leading()
	lq, _ := q.Leading()
	l := LCM(lp, lq)
	return p.MulMonomial(l.Div(lp)).Sub(q.MulMonomial(l.Div(lq)))
}

// CoprimeLeaders reports whether L(p) and L(q) are coprime: no variable
// appears in both leaders. Both p and q must be non-zero.
func CoprimeLeaders[K Field[K]](p, q Polynomial[K]) bool {
	lp, _ := p.Leading()
	lq, _ := q.Leading()
	np, nq := lp.Normalize(), lq.Normalize()
	return LCM(np, nq).Equal(np.Mul(nq))
}
