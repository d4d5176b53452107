package field

import (
	"fmt"
	"testing"
)

func TestModularArithmetic(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 17}
	for _, p := range primes {
		t.Run(fmt.Sprintf("p=%d", p), func(t *testing.T) {
			for a := int64(0); a < p; a++ {
				for b := int64(0); b < p; b++ {
					x, y := NewModular(p, a), NewModular(p, b)
					if got, want := x.Add(y), (a+b)%p; got.v.Int64() != want {
						t.Errorf("%d+%d mod %d: got %d, want %d", a, b, p, got.v.Int64(), want)
					}
					if got, want := x.Mul(y), (a*b)%p; got.v.Int64() != want {
						t.Errorf("%d*%d mod %d: got %d, want %d", a, b, p, got.v.Int64(), want)
					}
					if b != 0 {
						q := x.Div(y)
						if got := q.Mul(y); got.v.Int64() != a {
							t.Errorf("(%d/%d)*%d mod %d: got %d, want %d", a, b, b, p, got.v.Int64(), a)
						}
					}
				}
			}
		})
	}
}

func TestModularInverseRoundTrip(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 17}
	for _, p := range primes {
		for i := int64(1); i <= 100; i++ {
			m := NewModular(p, i)
			if m.Equal(NewModular(p, 0)) {
				continue
			}
			inv := m.One().Div(m)
			if got := inv.Mul(m); got.v.Int64() != 1 {
				t.Errorf("(1/%d)*%d mod %d = %d, want 1", i, i, p, got.v.Int64())
			}
		}
	}
}

func TestModularNegativeLiteralNormalizes(t *testing.T) {
	x := NewModular(7, -1)
	if x.v.Int64() != 6 {
		t.Errorf("NewModular(7, -1) = %d, want 6", x.v.Int64())
	}
	y, err := NewModular(7, 0).Parse("-9")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	// -9 mod 7 == -2 mod 7 == 5
	if y.v.Int64() != 5 {
		t.Errorf("Parse(-9) mod 7 = %d, want 5", y.v.Int64())
	}

	minusOne, err := NewModular(2, 0).Parse("-1")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !minusOne.Equal(NewModular(2, 1)) {
		t.Errorf("Parse(-1) mod 2 = %s, want 1", minusOne.String())
	}
}

func TestModularDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Div by zero did not panic")
		}
	}()
	NewModular(5, 1).Div(NewModular(5, 0))
}

func TestModularEqualAndZeroOne(t *testing.T) {
	x := NewModular(13, 4)
	if !x.Zero().Equal(NewModular(13, 0)) {
		t.Error("Zero() != 0")
	}
	if !x.One().Equal(NewModular(13, 1)) {
		t.Error("One() != 1")
	}
	if x.Modulus() != 13 {
		t.Errorf("Modulus() = %d, want 13", x.Modulus())
	}
}

func ExampleModular_String() {
	fmt.Println(NewModular(7, 10).String())
	fmt.Println(NewModular(7, -1).String())
	// Output:
	// 3
	// 6
}
