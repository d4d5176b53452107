// Package parse implements the TeX-like surface grammar: a
// recursive-descent parser producing untyped AST values (Monomial,
// Polynomial, System) that the root package evaluates into algebraic
// values once it knows which field and context to evaluate against.
package parse

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/fdr400/grobner/parse/scan"
)

// Factor is one variable occurrence in a monomial literal: x_ID or
// x_{ID}, optionally raised to ^Degree or ^{Degree}. Degree 0 means no
// exponent was written; the caller treats that as degree 1.
type Factor struct {
	ID     uint64
	Degree uint64
}

// Monomial is a single parsed term: the coefficient literal exactly as
// written (including any sign, but not including the leading "x" of the
// first factor), and its variable factors in the order they were written.
// Coefficient is "" when neither a sign nor a coefficient was written
// (coefficient 1; a separator sign is kept in Coefficient), "+"/"-" when
// only a sign was written, and the literal text otherwise.
type Monomial struct {
	Coefficient string
	Factors     []Factor
}

// Polynomial is a parsed sum of monomials, sign already attached to each
// one; "0" parses to the empty Polynomial.
type Polynomial struct {
	Monomials []Monomial
}

// System is a parsed polynomial system: a leading count and that many
// whitespace-separated polynomials.
type System struct {
	Polynomials []Polynomial
}

// ParseMonomial parses a single whitespace-free monomial literal.
func ParseMonomial(s string) (Monomial, error) {
	if s == "" {
		return Monomial{}, errors.New("parse: empty monomial")
	}
	xPos := strings.IndexByte(s, 'x')
	coefText, rest := s, ""
	if xPos >= 0 {
		coefText, rest = s[:xPos], s[xPos:]
	}
	factors, err := parseFactors(rest)
	if err != nil {
		return Monomial{}, errors.Wrapf(err, "parse: monomial %q", s)
	}
	return Monomial{Coefficient: coefText, Factors: factors}, nil
}

func parseFactors(s string) ([]Factor, error) {
	sc := scan.New(s)
	var factors []Factor
	for {
		tok := sc.Next()
		if tok.Type == scan.EOF {
			return factors, nil
		}
		if tok.Type != scan.X {
			return nil, errors.Errorf("parse: expected variable factor \"x\", got %q", tok.Text)
		}
		id, err := parseSubscript(sc)
		if err != nil {
			return nil, err
		}
		deg, err := parseSuperscript(sc)
		if err != nil {
			return nil, err
		}
		factors = append(factors, Factor{ID: id, Degree: deg})
	}
}

// parseSubscript consumes "_N" or "_{N}" and returns N.
func parseSubscript(sc *scan.Scanner) (uint64, error) {
	u := sc.Next()
	if u.Type != scan.Underscore {
		return 0, errors.Errorf("parse: expected \"_\" after variable, got %q", u.Text)
	}
	return parseBracedNumber(sc, "variable id")
}

// parseSuperscript consumes an optional "^K" or "^{K}" and returns K, or 0
// if no caret was present.
func parseSuperscript(sc *scan.Scanner) (uint64, error) {
	if sc.Peek().Type != scan.Caret {
		return 0, nil
	}
	sc.Next()
	n, err := parseBracedNumber(sc, "degree")
	if err != nil {
		return 0, err
	}
	if n == 0 {
		return 0, errors.New("parse: degree must be at least 1")
	}
	return n, nil
}

func parseBracedNumber(sc *scan.Scanner, what string) (uint64, error) {
	tok := sc.Next()
	braced := tok.Type == scan.LBrace
	if braced {
		tok = sc.Next()
	}
	if tok.Type != scan.Number {
		return 0, errors.Errorf("parse: expected %s, got %q", what, tok.Text)
	}
	n, err := strconv.ParseUint(tok.Text, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse: %s %q", what, tok.Text)
	}
	if braced {
		close := sc.Next()
		if close.Type != scan.RBrace {
			return 0, errors.Errorf("parse: missing closing brace after %s %d", what, n)
		}
	}
	return n, nil
}

// ParsePolynomial parses a whitespace-free polynomial literal: a non-empty
// sequence of monomials separated by "+" or "-" (the sign attaches to the
// following monomial), or "0"/"" for the zero polynomial.
func ParsePolynomial(s string) (Polynomial, error) {
	if s == "" || s == "0" {
		return Polynomial{}, nil
	}
	var blocks []string
	var cur strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c == '+' || c == '-') && cur.Len() > 0 {
			blocks = append(blocks, cur.String())
			cur.Reset()
		}
		cur.WriteByte(c)
	}
	if cur.Len() > 0 {
		blocks = append(blocks, cur.String())
	}

	p := Polynomial{Monomials: make([]Monomial, 0, len(blocks))}
	for _, block := range blocks {
		m, err := ParseMonomial(block)
		if err != nil {
			return Polynomial{}, errors.Wrapf(err, "parse: polynomial %q", s)
		}
		p.Monomials = append(p.Monomials, m)
	}
	return p, nil
}

// ParseSystem parses a polynomial-system literal: a leading count N,
// followed by N polynomials separated by whitespace.
func ParseSystem(s string) (System, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return System{}, errors.New("parse: empty polynomial system")
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return System{}, errors.Wrapf(err, "parse: system count %q", fields[0])
	}
	if n < 0 || len(fields)-1 < n {
		return System{}, errors.Errorf("parse: system declares %d polynomials but only %d were given", n, len(fields)-1)
	}

	sys := System{Polynomials: make([]Polynomial, 0, n)}
	for i := 0; i < n; i++ {
		p, err := ParsePolynomial(fields[1+i])
		if err != nil {
			return System{}, errors.Wrapf(err, "parse: system polynomial %d", i)
		}
		sys.Polynomials = append(sys.Polynomials, p)
	}
	return sys, nil
}
