package grobner

import "sort"

// Variable identifies one of the ring's denumerably many indeterminates.
// Only identifiers that actually occur in a monomial are ever stored.
type Variable uint32

// Occurrence pairs a variable with its degree in a monomial. Degree is
// always >= 1 in a well-formed Monomial; a variable absent from a
// monomial's occurrence list is implicitly raised to the power 0.
type Occurrence struct {
	ID     Variable
	Degree uint32
}

// Word is the coefficient-stripped part of a monomial: its sorted,
// pairwise-distinct variable occurrences. Two monomials are terms of the
// same position in a polynomial iff their words are equal.
type Word []Occurrence

// VariableOrder fixes which variable id counts as "smaller" when sorting
// the occurrences inside a monomial and when breaking ties in a monomial
// Order. The nil VariableOrder is the canonical order x_1 < x_2 < ...
type VariableOrder struct {
	rank map[Variable]int
}

// NewVariableOrder returns a VariableOrder induced by perm: perm[i] is the
// i'th smallest variable. A variable id absent from perm sorts after every
// id named in perm, in its own natural numeric order.
func NewVariableOrder(perm []Variable) *VariableOrder {
	if len(perm) == 0 {
		return nil
	}
	rank := make(map[Variable]int, len(perm))
	for i, v := range perm {
		rank[v] = i
	}
	return &VariableOrder{rank: rank}
}

func (vo *VariableOrder) rankOf(v Variable) int {
	if vo == nil {
		return int(v)
	}
	if r, ok := vo.rank[v]; ok {
		return r
	}
	return len(vo.rank) + int(v)
}

// Less reports whether a sorts before b under vo.
func (vo *VariableOrder) Less(a, b Variable) bool { return vo.rankOf(a) < vo.rankOf(b) }

// Context bundles the variable order and the monomial order. It is threaded
// explicitly through Monomial and Polynomial construction rather than held
// in package-level state; a polynomial carries the Context it was built
// under. Operations that combine two values use the receiver's Context and
// do not check that the other operand was built under the same one.
type Context struct {
	Vars  *VariableOrder
	Order Order
}

func (c Context) sortWord(w Word) {
	sort.SliceStable(w, func(i, j int) bool { return c.Vars.rankOf(w[i].ID) < c.Vars.rankOf(w[j].ID) })
}

// mergeOccurrences sums degrees of repeated ids and drops any occurrence
// whose degree collapses to zero. The input order is not preserved; callers
// sort the result under a Context afterward.
func mergeOccurrences(occ []Occurrence) Word {
	if len(occ) == 0 {
		return nil
	}
	degree := make(map[Variable]int64, len(occ))
	order := make([]Variable, 0, len(occ))
	for _, o := range occ {
		if _, ok := degree[o.ID]; !ok {
			order = append(order, o.ID)
		}
		degree[o.ID] += int64(o.Degree)
	}
	out := make(Word, 0, len(order))
	for _, id := range order {
		d := degree[id]
		if d <= 0 {
			continue
		}
		out = append(out, Occurrence{ID: id, Degree: uint32(d)})
	}
	return out
}

func indexByID(w Word) map[Variable]Occurrence {
	m := make(map[Variable]Occurrence, len(w))
	for _, o := range w {
		m[o.ID] = o
	}
	return m
}

func totalDegree(w Word) uint64 {
	var d uint64
	for _, o := range w {
		d += uint64(o.Degree)
	}
	return d
}
