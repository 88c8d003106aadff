package poly

import (
	"testing"

	"github.com/corvid-labs/keyshare/rat"
)

func ints(xs ...int64) []rat.Rat {
	out := make([]rat.Rat, len(xs))
	for i, x := range xs {
		out[i] = rat.FromInt(x)
	}
	return out
}

func fromInts(xs ...int64) Poly[rat.Rat] {
	return New(ints(xs...))
}

func TestNewTrimsTrailingZeros(t *testing.T) {
	p := fromInts(1, 2, 0, 0)
	if got, want := len(p.Values()), 2; got != want {
		t.Errorf("len = %d, want %d", got, want)
	}
}

func TestNewEmptyIsZero(t *testing.T) {
	p := New([]rat.Rat{})
	if !p.IsZero() {
		t.Errorf("New([]) should be the zero polynomial")
	}
	if len(p.Values()) != 1 {
		t.Errorf("zero polynomial must have exactly one coefficient")
	}
}

func TestAddLengthAndValue(t *testing.T) {
	p := fromInts(3, 2, 1).Add(fromInts(4, 3, 2, 1))
	if got, want := len(p.Values()), 4; got != want {
		t.Errorf("len = %d, want %d", got, want)
	}
	if want := fromInts(7, 5, 3, 1); !p.Equal(want) {
		t.Errorf("p = %v, want %v", p, want)
	}
}

func TestAddZeroLeavesUnchanged(t *testing.T) {
	p1 := fromInts(0)
	p2 := fromInts(0, 1)
	if got := p1.Add(p2); !got.Equal(p2) {
		t.Errorf("got %v, want %v", got, p2)
	}
}

func TestSubLengthAndValue(t *testing.T) {
	p := fromInts(4, 2, 1).Sub(fromInts(4, 3, 2, 1))
	if want := fromInts(0, -1, -1, -1); !p.Equal(want) {
		t.Errorf("got %v, want %v", p, want)
	}
}

func TestAddThenSubIsSame(t *testing.T) {
	p := fromInts(4, 2, 1).Sub(fromInts(4, 3, 2, 1)).Add(fromInts(4, 3, 2, 1))
	if want := fromInts(4, 2, 1); !p.Equal(want) {
		t.Errorf("got %v, want %v", p, want)
	}
}

func TestMulLengthAndValue(t *testing.T) {
	p := fromInts(1, 2, 3).Mul(fromInts(1, 2, 3))
	if got, want := len(p.Values()), 5; got != want {
		t.Errorf("len = %d, want %d", got, want)
	}
	if want := fromInts(1, 4, 10, 12, 9); !p.Equal(want) {
		t.Errorf("got %v, want %v", p, want)
	}
}

// TestDivExact checks (x^3 - 2x^2 - 4) / (x - 3) over the rationals,
// i.e. [-4, 0, -2, 1] / [-3, 1], which yields q = [3, 1, 1], r = [5].
func TestDivExact(t *testing.T) {
	q, r := fromInts(-4, 0, -2, 1).Div(fromInts(-3, 1))
	if want := fromInts(3, 1, 1); !q.Equal(want) {
		t.Errorf("quotient = %v, want %v", q, want)
	}
	if want := fromInts(5); !r.Equal(want) {
		t.Errorf("remainder = %v, want %v", r, want)
	}
}

func TestDivByLongerPolyReturnsDividend(t *testing.T) {
	q, r := fromInts(4, 0, 0, 1).Div(fromInts(6, 0, 0, 0, 0, 0, 0, 1))
	if want := fromInts(0); !q.Equal(want) {
		t.Errorf("quotient = %v, want %v", q, want)
	}
	if want := fromInts(4, 0, 0, 1); !r.Equal(want) {
		t.Errorf("remainder = %v, want %v", r, want)
	}
}

func TestDivByEqualLength(t *testing.T) {
	// x^3 + 4 = (x^3 + 6) * 1 - 2
	q, r := fromInts(4, 0, 0, 1).Div(fromInts(6, 0, 0, 1))
	if want := fromInts(1); !q.Equal(want) {
		t.Errorf("quotient = %v, want %v", q, want)
	}
	if want := fromInts(-2); !r.Equal(want) {
		t.Errorf("remainder = %v, want %v", r, want)
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic dividing by the zero polynomial")
		}
	}()
	_, _ = fromInts(4, 0, 0, 1).Div(fromInts(0))
}

// TestDivSatisfiesIdentity checks that for non-zero b, a == q*b + r with
// deg(r) < deg(b).
func TestDivSatisfiesIdentity(t *testing.T) {
	a := fromInts(1, 0, -1, 0, 2, 1)
	b := fromInts(-1, 0, 0, 0, 1)
	q, r := a.Div(b)
	reconstructed := q.Mul(b).Add(r)
	if !reconstructed.Equal(a) {
		t.Errorf("q*b + r = %v, want %v", reconstructed, a)
	}
	if r.Degree() >= b.Degree() && !r.IsZero() {
		t.Errorf("deg(r) = %d should be < deg(b) = %d", r.Degree(), b.Degree())
	}
}

func TestDisplay(t *testing.T) {
	cases := []struct {
		coeffs []int64
		want   string
	}{
		{[]int64{1, 2, 3, 4}, "4x^3 + 3x^2 + 2x + 1"},
		{[]int64{0}, "0"},
		{[]int64{1, 2, 0, 4, 5}, "5x^4 + 4x^3 + 2x + 1"},
		{[]int64{0, 2, 3, 4}, "4x^3 + 3x^2 + 2x"},
	}
	for _, c := range cases {
		if got := fromInts(c.coeffs...).String(); got != c.want {
			t.Errorf("String(%v) = %q, want %q", c.coeffs, got, c.want)
		}
	}
}

func TestGoString(t *testing.T) {
	got := fromInts(1, 2, 3, 4).GoString()
	want := "4x^3 + 3x^2 + 2x^1 + 1x^0"
	if got != want {
		t.Errorf("GoString() = %q, want %q", got, want)
	}
}

func TestEvaluateHorner(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2, p(2) = 1 + 4 + 12 = 17
	p := fromInts(1, 2, 3)
	got := p.Evaluate(rat.FromInt(2))
	if !got.Equal(rat.FromInt(17)) {
		t.Errorf("p(2) = %v, want 17", got)
	}
}
