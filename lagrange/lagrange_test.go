package lagrange

import (
	"testing"

	"github.com/corvid-labs/keyshare/poly"
	"github.com/corvid-labs/keyshare/rat"
)

func TestInterpolateSimple(t *testing.T) {
	xs := []rat.Rat{rat.FromInt(0), rat.FromInt(5), rat.FromInt(10), rat.FromInt(15)}
	ys := []rat.Rat{rat.FromInt(1), rat.FromInt(5), rat.FromInt(2), rat.FromInt(10)}

	got, err := Interpolate(xs, ys)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}

	want := poly.New([]rat.Rat{
		rat.FromInt(1),
		rat.New(675, 250),
		rat.New(-125, 250),
		rat.New(6, 250),
	})
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestInterpolateReturnsInputPoints(t *testing.T) {
	xs := []rat.Rat{rat.FromInt(1), rat.FromInt(2), rat.FromInt(3)}
	ys := []rat.Rat{rat.FromInt(4), rat.FromInt(9), rat.FromInt(16)}

	got, err := Interpolate(xs, ys)
	if err != nil {
		t.Fatalf("Interpolate: %v", err)
	}
	for i, x := range xs {
		if v := got.Evaluate(x); !v.Equal(ys[i]) {
			t.Errorf("P(%v) = %v, want %v", x, v, ys[i])
		}
	}
}

func TestInterpolateLengthMismatch(t *testing.T) {
	_, err := Interpolate([]rat.Rat{rat.FromInt(0)}, []rat.Rat{})
	if err == nil {
		t.Fatalf("expected error for mismatched lengths")
	}
}
