package quaternion

import (
	"math"
	"math/rand"
	"testing"
)

func TestVectorArithmetic(t *testing.T) {

	a := NewVector(1, 2, 3)
	b := NewVector(4, -5, 6)

	for _, c := range []struct {
		name string
		got  Vector
		want Vector
	}{
		{"Add", a.Add(b), NewVector(5, -3, 9)},
		{"Sub", a.Sub(b), NewVector(-3, 7, -3)},
		{"Scale", a.Scale(2), NewVector(2, 4, 6)},
		{"Invert", a.Invert(), NewVector(-1, -2, -3)},
		{"Cross", a.Cross(b), NewVector(27, 6, -13)},
		{"CrossXY", VecX.Cross(VecY), VecZ},
	} {
		if c.got != c.want {
			t.Errorf("%s = %s, want %s", c.name, c.got, c.want)
		}
	}

	if a.Dot(b) != 12 {
		t.Errorf("Dot() = %v, want 12", a.Dot(b))
	}

	// The calling Vector is never modified.
	if a != NewVector(1, 2, 3) {
		t.Errorf("vector was modified to %s", a)
	}

}

func TestVectorMagnitude(t *testing.T) {

	v := NewVector(2, 3, 6)

	if v.Magnitude() != 7 || v.MagnitudeSquared() != 49 {
		t.Errorf("Magnitude() = %v, MagnitudeSquared() = %v", v.Magnitude(), v.MagnitudeSquared())
	}

	if u := v.Unit(); math.Abs(u.Magnitude()-1) > 1e-12 {
		t.Errorf("Unit() has magnitude %v", u.Magnitude())
	}

	// A zero Vector can't be normalized, so it's returned as-is.
	if u := NewVector(0, 0, 0).Unit(); u != (Vector{}) {
		t.Errorf("zero Unit() = %s", u)
	}

}

func TestVectorString(t *testing.T) {

	if got := NewVector(1, -2, 0).Invert().String(); got != "{-1, 2, -0}" {
		t.Errorf("Invert().String() = %q", got)
	}

	if got := NewVector(0.19999999999999996, 1, -1.4).String(); got != "{0.19999999999999996, 1, -1.4}" {
		t.Errorf("String() = %q", got)
	}

}

func BenchmarkAllocateVectorStructs(b *testing.B) {

	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		vecs := make([]Vector, 0, 100)
		vecs = append(vecs, Vector{0, 0, 0})
		_ = vecs
	}

}

func BenchmarkMathInternalVector(b *testing.B) {

	b.StopTimer()

	maxSize := 1200

	vecs := make([]Vector, 0, maxSize)

	for i := 0; i < maxSize; i++ {
		vecs = append(vecs, Vector{X: rand.Float64(), Y: rand.Float64(), Z: rand.Float64()})
	}

	b.ReportAllocs()
	b.StartTimer()

	// Main point of benchmarking
	for z := 0; z < b.N; z++ {
		for i := 0; i < maxSize-1; i++ {
			vecs[i] = vecs[i].Add(vecs[i+1]).Cross(vecs[i+1])
		}
	}

}
