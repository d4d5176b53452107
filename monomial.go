package grobner

// Monomial is a single term: a coefficient in a field together with the
// sorted, pairwise-distinct occurrences it carries. The zero value is not a
// valid Monomial; construct one with NewMonomial or via arithmetic on an
// existing Monomial or Polynomial.
type Monomial[K Field[K]] struct {
	ctx   Context
	field K
	coef  K
	occ   Word
	deg   uint64
}

// NewMonomial returns the monomial coef * prod(x_id^deg) for the
// occurrences in occ. Occurrences naming the same id have their degrees
// summed before the zero-check; occurrences with degree 0 are dropped. If
// coef is zero, the result is the zero monomial regardless of occ.
func NewMonomial[K Field[K]](ctx Context, field, coef K, occ []Occurrence) Monomial[K] {
	if coef.Equal(field.Zero()) {
		return Monomial[K]{ctx: ctx, field: field, coef: coef}
	}
	w := mergeOccurrences(occ)
	ctx.sortWord(w)
	return Monomial[K]{ctx: ctx, field: field, coef: coef, occ: w, deg: totalDegree(w)}
}

func zeroMonomial[K Field[K]](ctx Context, field K) Monomial[K] {
	return Monomial[K]{ctx: ctx, field: field, coef: field.Zero()}
}

// IsZero reports whether m is the zero monomial.
func (m Monomial[K]) IsZero() bool { return m.coef.Equal(m.field.Zero()) }

// Coefficient returns m's coefficient.
func (m Monomial[K]) Coefficient() K { return m.coef }

// Field returns the field witness m was built with.
func (m Monomial[K]) Field() K { return m.field }

// Context returns the (variable order, monomial order) pair m was built
// under.
func (m Monomial[K]) Context() Context { return m.ctx }

// Word returns m's coefficient-stripped occurrence list, in the variable
// order of m's context. The caller must not mutate the returned slice.
func (m Monomial[K]) Word() Word { return m.occ }

// Degree returns the sum of m's occurrence degrees (0 for the zero monomial
// and for the constant monomial).
func (m Monomial[K]) Degree() uint64 { return m.deg }

// Normalize returns a copy of m with its coefficient overwritten to 1. The
// zero monomial normalizes to itself.
func (m Monomial[K]) Normalize() Monomial[K] {
	if m.IsZero() {
		return m
	}
	n := m
	n.coef = m.field.One()
	return n
}

// MulScalar returns m with its coefficient multiplied by f. If f is zero,
// the result is the zero monomial.
func (m Monomial[K]) MulScalar(f K) Monomial[K] {
	if f.Equal(m.field.Zero()) {
		return zeroMonomial[K](m.ctx, m.field)
	}
	c := m.coef.Mul(f)
	if c.Equal(m.field.Zero()) {
		return zeroMonomial[K](m.ctx, m.field)
	}
	return Monomial[K]{ctx: m.ctx, field: m.field, coef: c, occ: m.occ, deg: m.deg}
}

// Add returns m + n. Precondition: m and n have identical words (same
// monomial part); callers that don't satisfy this get an unspecified
// result, not a panic.
func (m Monomial[K]) Add(n Monomial[K]) Monomial[K] {
	c := m.coef.Add(n.coef)
	if c.Equal(m.field.Zero()) {
		return zeroMonomial[K](m.ctx, m.field)
	}
	return Monomial[K]{ctx: m.ctx, field: m.field, coef: c, occ: m.occ, deg: m.deg}
}

// Mul returns m * n: coefficients multiply, occurrence lists merge by id
// with degrees summed on collision.
func (m Monomial[K]) Mul(n Monomial[K]) Monomial[K] {
	c := m.coef.Mul(n.coef)
	if c.Equal(m.field.Zero()) {
		return zeroMonomial[K](m.ctx, m.field)
	}
	merged := make([]Occurrence, 0, len(m.occ)+len(n.occ))
	merged = append(merged, m.occ...)
	merged = append(merged, n.occ...)
	w := mergeOccurrences(merged)
	m.ctx.sortWord(w)
	return Monomial[K]{ctx: m.ctx, field: m.field, coef: c, occ: w, deg: totalDegree(w)}
}

// Divides reports whether other divides m — equivalently, whether m is
// divisible by other: other's occurrences are present in m with at least
// its degree. The zero monomial divides nothing.
func (m Monomial[K]) Divides(other Monomial[K]) bool {
	if other.IsZero() {
		return false
	}
	idx := indexByID(m.occ)
	for _, o := range other.occ {
		mo, ok := idx[o.ID]
		if !ok || mo.Degree < o.Degree {
			return false
		}
	}
	return true
}

// Div returns m / divisor. Precondition: divisor divides m (see Divides).
func (m Monomial[K]) Div(divisor Monomial[K]) Monomial[K] {
	c := m.coef.Div(divisor.coef)
	if c.Equal(m.field.Zero()) {
		return zeroMonomial[K](m.ctx, m.field)
	}
	idx := indexByID(divisor.occ)
	occ := make(Word, 0, len(m.occ))
	for _, o := range m.occ {
		d := o.Degree
		if sub, ok := idx[o.ID]; ok {
			d -= sub.Degree
		}
		if d > 0 {
			occ = append(occ, Occurrence{ID: o.ID, Degree: d})
		}
	}
	return Monomial[K]{ctx: m.ctx, field: m.field, coef: c, occ: occ, deg: totalDegree(occ)}
}

// LCM returns the least common multiple of m and n: coefficient 1, and for
// each id appearing in either, the larger of the two degrees. The LCM of a
// zero operand is the zero monomial.
func LCM[K Field[K]](m, n Monomial[K]) Monomial[K] {
	if m.IsZero() || n.IsZero() {
		return zeroMonomial[K](m.ctx, m.field)
	}
	nIdx := indexByID(n.occ)
	seen := make(map[Variable]bool, len(m.occ)+len(n.occ))
	occ := make(Word, 0, len(m.occ)+len(n.occ))
	for _, o := range m.occ {
		d := o.Degree
		if no, ok := nIdx[o.ID]; ok && no.Degree > d {
			d = no.Degree
		}
		occ = append(occ, Occurrence{ID: o.ID, Degree: d})
		seen[o.ID] = true
	}
	for _, o := range n.occ {
		if seen[o.ID] {
			continue
		}
		occ = append(occ, o)
	}
	m.ctx.sortWord(occ)
	return Monomial[K]{ctx: m.ctx, field: m.field, coef: m.field.One(), occ: occ, deg: totalDegree(occ)}
}

// Equal reports whether m and n have the same coefficient and the same
// word.
func (m Monomial[K]) Equal(n Monomial[K]) bool {
	if !m.coef.Equal(n.coef) {
		return false
	}
	return wordEqual(m.occ, n.occ)
}

func wordEqual(a, b Word) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
