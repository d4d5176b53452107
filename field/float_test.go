package field

import (
	"fmt"
	"testing"
)

func TestFloatArithmetic(t *testing.T) {
	a, b := Float(1.5), Float(0.5)
	if got := a.Add(b); got != 2 {
		t.Errorf("Add: got %v, want 2", got)
	}
	if got := a.Sub(b); got != 1 {
		t.Errorf("Sub: got %v, want 1", got)
	}
	if got := a.Mul(b); got != 0.75 {
		t.Errorf("Mul: got %v, want 0.75", got)
	}
	if got := a.Div(b); got != 3 {
		t.Errorf("Div: got %v, want 3", got)
	}
	if got := a.Neg(); got != -1.5 {
		t.Errorf("Neg: got %v, want -1.5", got)
	}
}

func TestFloatDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Div by zero did not panic")
		}
	}()
	Float(1).Div(Float(0))
}

func TestFloatParse(t *testing.T) {
	got, err := Float(0).Parse("3.25")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got != 3.25 {
		t.Errorf("Parse: got %v, want 3.25", got)
	}
	if _, err := Float(0).Parse("nope"); err == nil {
		t.Error("Parse(\"nope\") expected an error")
	}
}

func ExampleFloat_String() {
	fmt.Println(Float(1).String())
	fmt.Println(Float(-0.5).String())
	// Output:
	// 1
	// -0.5
}
