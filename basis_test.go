package grobner

import (
	"testing"

	"github.com/fdr400/grobner/field"
)

func mustParseSystem(t *testing.T, ctx Context, variant Variant, src string) *Set[field.Rational] {
	t.Helper()
	set, err := ParseSystem(ctx, field.NewRational(0, 1), variant, src)
	if err != nil {
		t.Fatalf("ParseSystem(%q): %+v", src, err)
	}
	return set
}

func mustParsePolynomial(t *testing.T, ctx Context, src string) Polynomial[field.Rational] {
	t.Helper()
	p, err := ParsePolynomial(ctx, field.NewRational(0, 1), src)
	if err != nil {
		t.Fatalf("ParsePolynomial(%q): %+v", src, err)
	}
	return p
}

// assertBasisEquals checks that got holds exactly the polynomials in want, in
// any order. The reduced Gröbner basis of an ideal is unique up to
// permutation, so an unordered comparison is the right notion of equality.
func assertBasisEquals(t *testing.T, got *Set[field.Rational], ctx Context, want []string) {
	t.Helper()
	polys := got.Polynomials()
	if len(polys) != len(want) {
		t.Fatalf("basis has %d polynomials, want %d: %v", len(polys), len(want), got)
	}
	matched := make([]bool, len(polys))
	for _, w := range want {
		wp := mustParsePolynomial(t, ctx, w)
		found := false
		for i, p := range polys {
			if !matched[i] && p.Equal(wp) {
				matched[i] = true
				found = true
				break
			}
		}
		if !found {
			t.Errorf("basis %v is missing %q", got, w)
		}
	}
}

func TestMinimumBasisPermutedLex(t *testing.T) {
	vo := NewVariableOrder([]Variable{3, 1, 2})
	ctx := Context{Vars: vo, Order: Lex(vo)}
	for _, variant := range allVariants {
		set := mustParseSystem(t, ctx, variant, "3 x_1x_2+2x_2x_3 x_1-x_2^2 x_2x_3^2-x_2")
		set.MinimumBasis()
		assertBasisEquals(t, set, ctx, []string{"x_3x_2+1/2x_2^3", "x_1-x_2^2", "x_2^5-4x_2"})
	}
}

func TestMinimumBasisPermutedGrlex(t *testing.T) {
	vo := NewVariableOrder([]Variable{3, 1, 2})
	ctx := Context{Vars: vo, Order: Grlex(vo)}
	for _, variant := range allVariants {
		set := mustParseSystem(t, ctx, variant,
			"5 x_1^3-2x_1x_2 x_1^2x_2-2x_2^2+x_1 -x_1^2 -2x_1x_2 -2x_2^2+x_1")
		set.MinimumBasis()
		assertBasisEquals(t, set, ctx, []string{"x_1^2", "x_1x_2", "x_2^2-1/2x_1"})
	}
}

func TestMinimumBasisLexThreeVariables(t *testing.T) {
	ctx := lexCtx()
	for _, variant := range allVariants {
		set := mustParseSystem(t, ctx, variant,
			"4 x_1^2+x_2^2+x_3^2 x_1+x_2-x_3 x_2+x_3^2 x_3^4+x_3^3+x_3^2")
		set.MinimumBasis()
		assertBasisEquals(t, set, ctx, []string{"x_1-x_3^2-x_3", "x_2+x_3^2", "x_3^4+x_3^3+x_3^2"})
	}
}

func TestMinimumBasisLexLinearSystem(t *testing.T) {
	ctx := lexCtx()
	for _, variant := range allVariants {
		set := mustParseSystem(t, ctx, variant,
			"3 3x_1-6x_2-2x_3 2x_1-4x_2+4x_4 x_1-2x_2-x_3-x_4")
		set.MinimumBasis()
		assertBasisEquals(t, set, ctx, []string{"x_1-2x_2+2x_4", "x_3+3x_4"})
	}
}

func TestContainsLex(t *testing.T) {
	ctx := lexCtx()
	for _, variant := range allVariants {
		set := mustParseSystem(t, ctx, variant, "2 x_1^2x_2+2x_3^2 x_2^2-x_2x_3")

		if set.Contains(mustParsePolynomial(t, ctx, "x_1^3x_3^3+3x_1x_2x_3^3")) {
			t.Errorf("variant %v: x_1^3x_3^3+3x_1x_2x_3^3 should not belong to the ideal", variant)
		}
		if !set.Contains(mustParsePolynomial(t, ctx, "x_1^3x_2^2x_3+2x_1x_2^2x_3^2")) {
			t.Errorf("variant %v: x_1^3x_2^2x_3+2x_1x_2^2x_3^2 should belong to the ideal", variant)
		}
	}
}

func TestContainsGrlex(t *testing.T) {
	ctx := Context{Order: Grlex(nil)}
	for _, variant := range allVariants {
		set := mustParseSystem(t, ctx, variant, "2 x_1x_3-x_2^2 x_1^3-x_3^2")

		if !set.Contains(mustParsePolynomial(t, ctx, "-4x_1^2x_2^2x_3^2+x_2^6+3x_3^5")) {
			t.Errorf("variant %v: -4x_1^2x_2^2x_3^2+x_2^6+3x_3^5 should belong to the ideal", variant)
		}
		if set.Contains(mustParsePolynomial(t, ctx, "x_1x_2-5x_2^2+x_1")) {
			t.Errorf("variant %v: x_1x_2-5x_2^2+x_1 should not belong to the ideal", variant)
		}
	}
}
