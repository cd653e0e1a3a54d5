package quaternion

import (
	stderrors "errors"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestCheckedZeroNorm(t *testing.T) {

	zero := Quaternion{}

	if _, err := zero.CheckedInverse(); errors.Cause(err) != ErrZeroNorm {
		t.Errorf("CheckedInverse() error = %v, want ErrZeroNorm", err)
	}

	_, err := New(1, 2, 3, 4).CheckedDivide(zero)
	if errors.Cause(err) != ErrZeroNorm {
		t.Fatalf("CheckedDivide() error = %v, want ErrZeroNorm", err)
	}
	if !stderrors.Is(err, ErrZeroNorm) {
		t.Error("CheckedDivide() error should unwrap to ErrZeroNorm")
	}
	if !strings.Contains(err.Error(), "Quaternion(1, 2, 3, 4)") {
		t.Errorf("CheckedDivide() error %q should name the dividend", err)
	}

	if _, err := zero.CheckedNormalize(); !stderrors.Is(err, ErrZeroNorm) {
		t.Errorf("CheckedNormalize() error = %v, want ErrZeroNorm", err)
	}

}

func TestCheckedMatchesUnchecked(t *testing.T) {

	f := newQuaternionFuzzer()
	var p, q Quaternion

	for i := 0; i < fuzzIterations; i++ {
		f.Fuzz(&p)
		f.Fuzz(&q)

		inv, err := q.CheckedInverse()
		if err != nil || inv != q.Inverse() {
			t.Fatalf("CheckedInverse() = %s, %v; want %s", inv, err, q.Inverse())
		}

		div, err := p.CheckedDivide(q)
		if err != nil || div != p.Divide(q) {
			t.Fatalf("CheckedDivide() = %s, %v; want %s", div, err, p.Divide(q))
		}

		unit, err := q.CheckedNormalize()
		if err != nil || unit != q.Normalize() {
			t.Fatalf("CheckedNormalize() = %s, %v; want %s", unit, err, q.Normalize())
		}
	}

}
