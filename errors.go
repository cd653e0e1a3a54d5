package quaternion

import "github.com/pkg/errors"

// ErrZeroNorm is returned by the Checked functions when an operation needs to divide by the norm of a zero Quaternion.
var ErrZeroNorm = errors.New("quaternion has zero norm")

// CheckedInverse returns the inverse of the Quaternion, or an error wrapping ErrZeroNorm if the Quaternion is zero
// (where Inverse() would return NaNs and infinities).
func (quat Quaternion) CheckedInverse() (Quaternion, error) {
	if quat.IsZero() {
		return Quaternion{}, errors.Wrapf(ErrZeroNorm, "cannot invert %s", quat)
	}
	return quat.Inverse(), nil
}

// CheckedDivide divides the calling Quaternion by the other, or returns an error wrapping ErrZeroNorm if the divisor
// is zero.
func (quat Quaternion) CheckedDivide(other Quaternion) (Quaternion, error) {
	inv, err := other.CheckedInverse()
	if err != nil {
		return Quaternion{}, errors.Wrapf(err, "cannot divide %s", quat)
	}
	return quat.Multiply(inv), nil
}

// CheckedNormalize returns the Quaternion scaled to unit length, or an error wrapping ErrZeroNorm if it's zero.
func (quat Quaternion) CheckedNormalize() (Quaternion, error) {
	if quat.IsZero() {
		return Quaternion{}, errors.Wrapf(ErrZeroNorm, "cannot normalize %s", quat)
	}
	return quat.Normalize(), nil
}
