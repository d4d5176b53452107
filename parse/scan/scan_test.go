package scan

import (
	"fmt"
	"testing"
)

func TestScannerNext(t *testing.T) {
	tests := []struct {
		input string
		want  []Token
	}{
		{
			input: "x_1",
			want: []Token{
				{Type: X, Text: "x", Pos: 0},
				{Type: Underscore, Text: "_", Pos: 1},
				{Type: Number, Text: "1", Pos: 2},
				{Type: EOF, Pos: 3},
			},
		},
		{
			input: "x_{12}^{3}",
			want: []Token{
				{Type: X, Text: "x", Pos: 0},
				{Type: Underscore, Text: "_", Pos: 1},
				{Type: LBrace, Text: "{", Pos: 2},
				{Type: Number, Text: "12", Pos: 3},
				{Type: RBrace, Text: "}", Pos: 5},
				{Type: Caret, Text: "^", Pos: 6},
				{Type: LBrace, Text: "{", Pos: 7},
				{Type: Number, Text: "3", Pos: 8},
				{Type: RBrace, Text: "}", Pos: 9},
				{Type: EOF, Pos: 10},
			},
		},
		{
			input: "",
			want:  []Token{{Type: EOF, Pos: 0}},
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			sc := New(test.input)
			for j, want := range test.want {
				got := sc.Next()
				if got != want {
					t.Fatalf("token %d: got %+v, want %+v", j, got, want)
				}
			}
		})
	}
}

func TestScannerPeekDoesNotAdvance(t *testing.T) {
	sc := New("x_2")
	first := sc.Peek()
	second := sc.Peek()
	if first != second {
		t.Fatalf("Peek is not idempotent: %+v != %+v", first, second)
	}
	if next := sc.Next(); next != first {
		t.Fatalf("Next after Peek = %+v, want %+v", next, first)
	}
}

func TestScannerError(t *testing.T) {
	sc := New("x+1")
	sc.Next() // x
	tok := sc.Next()
	if tok.Type != Error || tok.Text != "+" {
		t.Fatalf("got %+v, want an Error token for '+'", tok)
	}
}
