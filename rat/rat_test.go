package rat

import "testing"

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(1, 3)

	if got := a.Add(b); !got.Equal(New(5, 6)) {
		t.Errorf("1/2 + 1/3 = %v, want 5/6", got)
	}
	if got := a.Sub(b); !got.Equal(New(1, 6)) {
		t.Errorf("1/2 - 1/3 = %v, want 1/6", got)
	}
	if got := a.Mul(b); !got.Equal(New(1, 6)) {
		t.Errorf("1/2 * 1/3 = %v, want 1/6", got)
	}
	if got := a.Div(b); !got.Equal(New(3, 2)) {
		t.Errorf("1/2 / 1/3 = %v, want 3/2", got)
	}
}

func TestZeroValueBehavesAsZero(t *testing.T) {
	var zero Rat
	if !zero.IsZero() {
		t.Errorf("bare Rat{} should be zero")
	}
	if got := zero.Add(New(3, 4)); !got.Equal(New(3, 4)) {
		t.Errorf("0 + 3/4 = %v, want 3/4", got)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic dividing by zero")
		}
	}()
	FromInt(1).Div(FromInt(0))
}

func TestString(t *testing.T) {
	if FromInt(3).String() != "3" {
		t.Errorf("FromInt(3).String() = %q, want 3", FromInt(3).String())
	}
	if New(3, 4).String() != "3/4" {
		t.Errorf("New(3,4).String() = %q, want 3/4", New(3, 4).String())
	}
}
