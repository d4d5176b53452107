package grobner

import (
	"fmt"
	"testing"
)

func w(occ ...Occurrence) Word { return Word(occ) }

func TestLex(t *testing.T) {
	order := Lex(nil)
	tests := []struct {
		a, b Word
		want int
	}{
		{w(Occurrence{1, 1}), w(Occurrence{2, 1}), 1},       // x_1 > x_2
		{w(Occurrence{1, 2}), w(Occurrence{1, 1}, Occurrence{2, 1}), 1}, // x_1^2 > x_1x_2
		{w(Occurrence{1, 1}), w(Occurrence{1, 1}), 0},
		{w(Occurrence{2, 5}), w(Occurrence{1, 1}), -1}, // x_2^5 < x_1
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			if got := order(test.a, test.b); got != test.want {
				t.Errorf("Lex(%v, %v) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestGrlex(t *testing.T) {
	order := Grlex(nil)
	tests := []struct {
		a, b Word
		want int
	}{
		// Higher total degree wins regardless of lex.
		{w(Occurrence{2, 3}), w(Occurrence{1, 2}), 1},
		// Equal degree: fall back to lex.
		{w(Occurrence{1, 1}, Occurrence{2, 1}), w(Occurrence{2, 2}), 1},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			if got := order(test.a, test.b); got != test.want {
				t.Errorf("Grlex(%v, %v) = %d, want %d", test.a, test.b, got, test.want)
			}
		})
	}
}

func TestInvlex(t *testing.T) {
	order := Invlex(nil)
	// x_1x_2^2 and x_1^2x_2 agree on x_1's rank but diverge on x_2's degree;
	// invlex reads the occurrence list from the last variable backward, so
	// the higher x_2 degree wins.
	a := w(Occurrence{1, 1}, Occurrence{2, 2})
	b := w(Occurrence{1, 2}, Occurrence{2, 1})
	if got := order(a, b); got != 1 {
		t.Errorf("Invlex(x_1x_2^2, x_1^2x_2) = %d, want 1", got)
	}
}

func TestVariableOrderPermutation(t *testing.T) {
	vo := NewVariableOrder([]Variable{2, 1})
	order := Lex(vo)
	// Under this permutation x_2 outranks x_1.
	got := order(w(Occurrence{2, 1}), w(Occurrence{1, 1}))
	if got != 1 {
		t.Errorf("Lex under [2,1](x_2, x_1) = %d, want 1", got)
	}
}

func TestOrderByName(t *testing.T) {
	for _, name := range []string{"lex", "grlex", "grevlex", "invlex"} {
		if _, err := OrderByName(name, nil); err != nil {
			t.Errorf("OrderByName(%q): %v", name, err)
		}
	}
	if _, err := OrderByName("bogus", nil); err == nil {
		t.Error("OrderByName(\"bogus\") expected an error")
	}
}

func TestGrevlexReflexive(t *testing.T) {
	order := Grevlex(nil)
	tests := []Word{
		w(),
		w(Occurrence{1, 3}),
		w(Occurrence{1, 1}, Occurrence{2, 2}),
	}
	for i, word := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			if got := order(word, word); got != 0 {
				t.Errorf("Grevlex(%v, %v) = %d, want 0 (a monomial must not compare greater than itself)", word, word, got)
			}
		})
	}
}

func ExampleGrevlex() {
	order := Grevlex(nil)
	// Higher total degree wins outright.
	fmt.Println(order(w(Occurrence{1, 5}), w(Occurrence{2, 1})))
	// Equal degree, diverging on which variable carries it: the one with
	// the lower-ranked variable wins.
	fmt.Println(order(w(Occurrence{1, 2}), w(Occurrence{2, 2})))
	// Equal degree, same variables: the one with the smaller exponent in
	// the highest-ranked diverging variable wins.
	fmt.Println(order(w(Occurrence{1, 1}, Occurrence{2, 2}), w(Occurrence{1, 2}, Occurrence{2, 1})))
	// Output:
	// 1
	// 1
	// -1
}
