package grobner

import "fmt"

// OrderByName returns the monomial ordering named by name (one of "lex",
// "grlex", "grevlex", "invlex"), induced by vo. Unknown names are rejected
// rather than silently falling back to a default.
func OrderByName(name string, vo *VariableOrder) (Order, error) {
	switch name {
	case "lex":
		return Lex(vo), nil
	case "grlex":
		return Grlex(vo), nil
	case "grevlex":
		return Grevlex(vo), nil
	case "invlex":
		return Invlex(vo), nil
	default:
		return nil, fmt.Errorf("grobner: unknown monomial ordering %q", name)
	}
}

// Order is a strict total order on non-zero monomial parts. It returns a
// cmp.Compare-style result: negative if a sorts before b, zero if equal,
// positive if a is the greater (leading) monomial. Both operands must
// already be sorted by the same VariableOrder.
type Order func(a, b Word) int

// Lex returns the lexicographic order induced by vo.
func Lex(vo *VariableOrder) Order {
	return func(a, b Word) int { return threeWay(a, b, vo, lexGreater) }
}

// Grlex returns the graded lexicographic order induced by vo: total degree
// first, ties broken by Lex.
func Grlex(vo *VariableOrder) Order {
	return func(a, b Word) int { return threeWay(a, b, vo, grlexGreater) }
}

// Grevlex returns the graded reverse lexicographic order induced by vo:
// total degree first, ties broken by reverse lex in reverse variable order.
func Grevlex(vo *VariableOrder) Order {
	return func(a, b Word) int { return threeWay(a, b, vo, grevlexGreater) }
}

// Invlex returns Lex applied in reverse variable order.
func Invlex(vo *VariableOrder) Order {
	return func(a, b Word) int { return threeWay(a, b, vo, invlexGreater) }
}

type greaterFunc func(a, b Word, vo *VariableOrder) bool

func threeWay(a, b Word, vo *VariableOrder, greater greaterFunc) int {
	switch {
	case greater(a, b, vo):
		return 1
	case greater(b, a, vo):
		return -1
	default:
		return 0
	}
}

func lexGreater(a, b Word, vo *VariableOrder) bool {
	ai, bi, aEnd, bEnd := firstDivergence(a, b, false)
	return compareDivergence(a, b, ai, bi, aEnd, bEnd, false, true, -1, vo)
}

func grlexGreater(a, b Word, vo *VariableOrder) bool {
	da, db := totalDegree(a), totalDegree(b)
	if da != db {
		return da > db
	}
	return lexGreater(a, b, vo)
}

func grevlexGreater(a, b Word, vo *VariableOrder) bool {
	da, db := totalDegree(a), totalDegree(b)
	if da != db {
		return da > db
	}
	ai, bi, aEnd, bEnd := firstDivergence(a, b, true)
	if aEnd && bEnd {
		// Both words exhausted with no divergence: a and b are equal, and
		// equal exponent vectors compare equal under grevlex. Unlike lex/
		// invlex (whose onAEnd is false), grevlex's onAEnd is true, so this
		// case needs an explicit override to keep Grevlex a strict total
		// order (a monomial must not compare greater than itself).
		return false
	}
	return compareDivergence(a, b, ai, bi, aEnd, bEnd, true, false, 1, vo)
}

func invlexGreater(a, b Word, vo *VariableOrder) bool {
	ai, bi, aEnd, bEnd := firstDivergence(a, b, true)
	if !aEnd && !bEnd && a[ai].ID != b[bi].ID {
		// Read from the highest-ranked variable down, the word that carries
		// the higher-ranked of the two diverging variables is the greater.
		return vo.rankOf(a[ai].ID) > vo.rankOf(b[bi].ID)
	}
	return compareDivergence(a, b, ai, bi, aEnd, bEnd, false, true, -1, vo)
}

// firstDivergence walks a and b simultaneously (from the start if !reverse,
// from the end if reverse), skipping a common run of identical occurrence
// pairs, and reports the index into a and b of the first differing pair, or
// that one side was exhausted first.
func firstDivergence(a, b Word, reverse bool) (ai, bi int, aEnd, bEnd bool) {
	la, lb := len(a), len(b)
	n := la
	if lb < n {
		n = lb
	}
	i := 0
	for i < n {
		var x, y Occurrence
		if reverse {
			x, y = a[la-1-i], b[lb-1-i]
		} else {
			x, y = a[i], b[i]
		}
		if x != y {
			break
		}
		i++
	}
	switch {
	case i == la && i == lb:
		return 0, 0, true, true
	case i == la:
		return 0, 0, true, false
	case i == lb:
		return 0, 0, false, true
	case reverse:
		return la - 1 - i, lb - 1 - i, false, false
	default:
		return i, i, false, false
	}
}

// compareDivergence resolves exhaustion first, then compares by variable
// rank if the divergent occurrences name different ids, else by their
// (sign-scaled) degree.
func compareDivergence(a, b Word, ai, bi int, aEnd, bEnd, onAEnd, onBEnd bool, sgn int, vo *VariableOrder) bool {
	if aEnd {
		return onAEnd
	}
	if bEnd {
		return onBEnd
	}
	x, y := a[ai], b[bi]
	if x.ID != y.ID {
		return vo.rankOf(x.ID) < vo.rankOf(y.ID)
	}
	return int64(sgn)*int64(x.Degree) < int64(sgn)*int64(y.Degree)
}
