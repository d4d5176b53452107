package grobner

import "fmt"

// Variant selects which S-pair selection strategy Buchberger uses. All four
// produce the same Gröbner basis; they differ only in how much redundant
// S-polynomial work is pruned before it's computed.
type Variant int

const (
	// Default recomputes, each round, the S-polynomial of every pair over
	// the current set, appending all non-zero normal forms; it stops when a
	// round adds nothing.
	Default Variant = iota
	// DoNotRepeat processes each unordered pair at most once, via a queue
	// seeded with the initial pairs and extended as polynomials are added.
	DoNotRepeat
	// SkipCoprime is DoNotRepeat plus Buchberger's first criterion: pairs
	// whose leaders are coprime are skipped without computing their
	// S-polynomial.
	SkipCoprime
	// LCMCriterion is SkipCoprime plus Buchberger's second criterion: a
	// pair (i, j) is skipped if some k has L(p_k) dividing
	// lcm(L(p_i), L(p_j)) and both (i, k) and (j, k) are already resolved.
	LCMCriterion
)

// VariantByName returns the Buchberger variant named by name (one of
// "default", "do-not-repeat", "skip-coprime", "lcm-criterion"). Unknown
// names are rejected rather than silently falling back to a default.
func VariantByName(name string) (Variant, error) {
	switch name {
	case "default":
		return Default, nil
	case "do-not-repeat":
		return DoNotRepeat, nil
	case "skip-coprime":
		return SkipCoprime, nil
	case "lcm-criterion":
		return LCMCriterion, nil
	default:
		return 0, fmt.Errorf("grobner: unknown Buchberger variant %q", name)
	}
}

// Set is a mutable, ordered collection of polynomials: a PolynomialSet in
// the sense of the ideal it generates. A boolean flag records whether the
// set is currently known to be a Gröbner basis; Buchberger sets it to true
// on completion, and Append resets it since an arbitrary insertion may no
// longer be a basis.
type Set[K Field[K]] struct {
	ctx     Context
	field   K
	variant Variant
	polys   []Polynomial[K]
	isBasis bool
}

// NewSet returns a Set over the given polynomials, using variant for any
// subsequent Buchberger call.
func NewSet[K Field[K]](ctx Context, field K, variant Variant, polys ...Polynomial[K]) *Set[K] {
	s := &Set[K]{ctx: ctx, field: field, variant: variant}
	s.polys = append(s.polys, polys...)
	return s
}

// Len reports the number of polynomials currently in s (duplicates and
// zero polynomials included until the next reduction pass removes them).
func (s *Set[K]) Len() int { return len(s.polys) }

// Polynomials returns a copy of s's current polynomial list.
func (s *Set[K]) Polynomials() []Polynomial[K] {
	out := make([]Polynomial[K], len(s.polys))
	copy(out, s.polys)
	return out
}

// IsGroebnerBasis reports whether s is currently known to be a Gröbner
// basis of its ideal.
func (s *Set[K]) IsGroebnerBasis() bool { return s.isBasis }

// Append adds p to s and resets the Gröbner-basis flag: an arbitrary
// insertion may break the basis property.
func (s *Set[K]) Append(p Polynomial[K]) {
	s.polys = append(s.polys, p)
	s.isBasis = false
}

// NormalForm computes a normal form of p modulo s: elementary reduction is
// attempted against each polynomial in the set in turn, the scan restarts
// from the first polynomial whenever a reduction succeeds, and the process
// stops when a full pass makes no reduction or p becomes zero. When s is a
// Gröbner basis, the result is unique and is zero iff p belongs to the
// ideal s generates.
func (s *Set[K]) NormalForm(p Polynomial[K]) Polynomial[K] {
	for {
		reducedAny := false
		for _, g := range s.polys {
			if g.IsZero() {
				continue
			}
			next, ok := p.ReduceBy(g)
			if !ok {
				continue
			}
			p = next
			reducedAny = true
			if p.IsZero() {
				return p
			}
			break
		}
		if !reducedAny {
			return p
		}
	}
}

// Autoreduce repeatedly attempts, for every ordered pair (i, j) with i != j,
// one elementary reduction of polynomial i by polynomial j, until a full
// sweep over all pairs makes no reduction, then drops any polynomial that
// reduced to zero. Like NormalForm, this may reduce any matching
// monomial of a polynomial, not only its leader.
func (s *Set[K]) Autoreduce() {
	for {
		changed := false
		for i := range s.polys {
			for j := range s.polys {
				if i == j || s.polys[j].IsZero() {
					continue
				}
				if next, ok := s.polys[i].ReduceBy(s.polys[j]); ok {
					s.polys[i] = next
					changed = true
				}
			}
		}
		if !changed {
			break
		}
	}

	survivors := s.polys[:0]
	for _, p := range s.polys {
		if !p.IsZero() {
			survivors = append(survivors, p)
		}
	}
	s.polys = survivors
}

// Buchberger enlarges s, in place, into a Gröbner basis of the ideal it
// generates, using s's configured Variant to select S-pairs. Running
// Buchberger on a set already known to be a basis is a no-op.
func (s *Set[K]) Buchberger() {
	if s.isBasis {
		return
	}
	switch s.variant {
	case Default:
		s.buchbergerRounds()
	case DoNotRepeat:
		s.buchbergerQueue(false, false)
	case SkipCoprime:
		s.buchbergerQueue(true, false)
	case LCMCriterion:
		s.buchbergerQueue(true, true)
	default:
		s.buchbergerRounds()
	}
	s.isBasis = true
}

func (s *Set[K]) buchbergerRounds() {
	for {
		n := len(s.polys)
		var additions []Polynomial[K]
		for i := 0; i < n; i++ {
			if s.polys[i].IsZero() {
				continue
			}
			for j := i + 1; j < n; j++ {
				if s.polys[j].IsZero() {
					continue
				}
				nf := s.NormalForm(SPolynomial(s.polys[i], s.polys[j]))
				if !nf.IsZero() {
					additions = append(additions, nf)
				}
			}
		}
		if len(additions) == 0 {
			return
		}
		s.polys = append(s.polys, additions...)
	}
}

type pair struct{ i, j int }

func orderedPair(i, j int) pair {
	if i > j {
		return pair{j, i}
	}
	return pair{i, j}
}

// buchbergerQueue implements DoNotRepeat (skipCoprime=false,
// lcmCriterion=false), SkipCoprime (skipCoprime=true, lcmCriterion=false)
// and LCMCriterion (both true): every unordered pair is processed at most
// once, off a queue seeded with the initial pairs and extended with
// (k, new) for every prior surviving k whenever a new polynomial is
// appended.
func (s *Set[K]) buchbergerQueue(skipCoprime, lcmCriterion bool) {
	var queue []pair
	pending := make(map[pair]bool)
	enqueue := func(i, j int) {
		p := orderedPair(i, j)
		queue = append(queue, p)
		pending[p] = true
	}

	n := len(s.polys)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			enqueue(i, j)
		}
	}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		delete(pending, p)

		if s.polys[p.i].IsZero() || s.polys[p.j].IsZero() {
			continue
		}
		if skipCoprime && CoprimeLeaders(s.polys[p.i], s.polys[p.j]) {
			continue
		}
		if lcmCriterion && s.lcmCriterionSkips(p.i, p.j, pending) {
			continue
		}

		nf := s.NormalForm(SPolynomial(s.polys[p.i], s.polys[p.j]))
		if nf.IsZero() {
			continue
		}

		newIdx := len(s.polys)
		s.polys = append(s.polys, nf)
		for k := 0; k < newIdx; k++ {
			if !s.polys[k].IsZero() {
				enqueue(k, newIdx)
			}
		}
	}
}

// lcmCriterionSkips implements Buchberger's second criterion: (i, j) may be
// skipped if some k, distinct from both, has L(p_k) dividing
// lcm(L(p_i), L(p_j)) and neither (i, k) nor (j, k) is still pending.
func (s *Set[K]) lcmCriterionSkips(i, j int, pending map[pair]bool) bool {
	li, _ := s.polys[i].Leading()
	lj, _ := s.polys[j].Leading()
	l := LCM(li, lj)
	for k, pk := range s.polys {
		if k == i || k == j || pk.IsZero() {
			continue
		}
		lk, _ := pk.Leading()
		if !l.Divides(lk) {
			continue
		}
		if !pending[orderedPair(i, k)] && !pending[orderedPair(j, k)] {
			return true
		}
	}
	return false
}

// MinimumBasis reshapes s, in place, into the reduced Gröbner basis of its
// ideal: autoreduce, run Buchberger, normalize every leader to monic,
// prune any polynomial whose leader is divisible by another surviving
// polynomial's leader, then autoreduce again.
func (s *Set[K]) MinimumBasis() {
	s.Autoreduce()
	s.Buchberger()

	for i, p := range s.polys {
		lead, ok := p.Leading()
		if !ok {
			continue
		}
		s.polys[i] = p.MulScalar(s.field.One().Div(lead.Coefficient()))
	}

	s.prune()
	s.Autoreduce()
	s.isBasis = true
}

func (s *Set[K]) prune() {
	for {
		remove := -1
		for i, pi := range s.polys {
			li, ok := pi.Leading()
			if !ok {
				continue
			}
			for j, pj := range s.polys {
				if i == j {
					continue
				}
				lj, ok := pj.Leading()
				if !ok {
					continue
				}
				if li.Divides(lj) {
					remove = i
					break
				}
			}
			if remove != -1 {
				break
			}
		}
		if remove == -1 {
			return
		}
		s.polys = append(s.polys[:remove], s.polys[remove+1:]...)
	}
}

// Contains reports whether p belongs to the ideal s generates: s is
// promoted to a Gröbner basis if it isn't one already, and the result is
// normal_form(p) == 0.
func (s *Set[K]) Contains(p Polynomial[K]) bool {
	s.Buchberger()
	return s.NormalForm(p).IsZero()
}
