// Package quaternion is a small quaternion value type for representing 3D rotations, with its algebra (addition,
// Hamilton product, inversion, division, conjugation, normalization) and axis-angle conversion.
package quaternion

import (
	"math"

	"github.com/solarlune/quaternion/fmath"
)

// AxisEpsilon is the threshold ToAxisAngle() uses to decide that a quaternion's rotation axis is degenerate. When
// sqrt(1 - A²) falls below it, the rotation is (close to) zero and the axis can't be recovered reliably.
const AxisEpsilon = 1e-10

// Quaternion represents a quaternion, A + Bi + Cj + Dk. A is the scalar (real) part, while B, C, and D make up the
// vector (imaginary) part.
// Quaternions are values; functions that would modify the calling Quaternion return a modified copy instead, so
// method-chaining works like it does with Vectors, and a Quaternion is safe to share between goroutines.
// Any four real numbers make a valid Quaternion, but only unit Quaternions (a Norm() of 1) represent pure rotations.
type Quaternion struct {
	A float64 // The scalar part
	B float64 // The i coefficient
	C float64 // The j coefficient
	D float64 // The k coefficient
}

// New creates a new Quaternion out of the four coefficients given. No validation is performed.
func New(a, b, c, d float64) Quaternion {
	return Quaternion{A: a, B: b, C: c, D: d}
}

// Identity returns the multiplicative identity Quaternion, (1, 0, 0, 0); it represents no rotation.
func Identity() Quaternion {
	return Quaternion{A: 1}
}

// FromVector lifts the Vector given into a pure Quaternion, (0, x, y, z).
func FromVector(vec Vector) Quaternion {
	return Quaternion{B: vec.X, C: vec.Y, D: vec.Z}
}

// FromAxisAngle creates a Quaternion that rotates by angle radians around the axis given, using the half-angle encoding
// (cos(angle/2), axis * sin(angle/2)).
// The axis isn't normalized here; pass a unit Vector to get a unit Quaternion (and so a proper rotation).
func FromAxisAngle(axis Vector, angle float64) Quaternion {
	s, c := math.Sincos(angle / 2)
	return Quaternion{
		A: c,
		B: axis.X * s,
		C: axis.Y * s,
		D: axis.Z * s,
	}
}

// Add returns the component-wise sum of the calling Quaternion and the other Quaternion.
func (quat Quaternion) Add(other Quaternion) Quaternion {
	quat.A += other.A
	quat.B += other.B
	quat.C += other.C
	quat.D += other.D
	return quat
}

// Subtract returns the calling Quaternion, with the other Quaternion subtracted from it component-wise.
func (quat Quaternion) Subtract(other Quaternion) Quaternion {
	quat.A -= other.A
	quat.B -= other.B
	quat.C -= other.C
	quat.D -= other.D
	return quat
}

// Multiply returns the Hamilton product of the calling Quaternion and the other Quaternion (quat * other).
// Quaternion multiplication isn't commutative, so quat.Multiply(other) and other.Multiply(quat) generally differ.
func (quat Quaternion) Multiply(other Quaternion) Quaternion {
	return Quaternion{
		A: quat.A*other.A - quat.B*other.B - quat.C*other.C - quat.D*other.D,
		B: quat.A*other.B + quat.B*other.A + quat.C*other.D - quat.D*other.C,
		C: quat.A*other.C - quat.B*other.D + quat.C*other.A + quat.D*other.B,
		D: quat.A*other.D + quat.B*other.C - quat.C*other.B + quat.D*other.A,
	}
}

// Divide returns the calling Quaternion multiplied by the inverse of the other Quaternion (quat * other⁻¹).
// Like Inverse(), dividing by the zero Quaternion gives non-finite components; see CheckedDivide().
func (quat Quaternion) Divide(other Quaternion) Quaternion {
	return quat.Multiply(other.Inverse())
}

// Scale returns a copy of the Quaternion with each component multiplied by the scalar provided.
func (quat Quaternion) Scale(scalar float64) Quaternion {
	quat.A *= scalar
	quat.B *= scalar
	quat.C *= scalar
	quat.D *= scalar
	return quat
}

// Negate returns the Quaternion with all four components negated. The result represents the same rotation.
func (quat Quaternion) Negate() Quaternion {
	return quat.Scale(-1)
}

// Norm returns the length of the Quaternion, sqrt(A² + B² + C² + D²).
func (quat Quaternion) Norm() float64 {
	return math.Sqrt(quat.NormSquared())
}

// NormSquared returns the squared length of the Quaternion; this avoids the square root in Norm().
func (quat Quaternion) NormSquared() float64 {
	return quat.A*quat.A + quat.B*quat.B + quat.C*quat.C + quat.D*quat.D
}

// Dot returns the four-dimensional dot product of the two Quaternions.
func (quat Quaternion) Dot(other Quaternion) float64 {
	return quat.A*other.A + quat.B*other.B + quat.C*other.C + quat.D*other.D
}

// Conjugate returns the Quaternion with its vector part negated, (A, -B, -C, -D).
func (quat Quaternion) Conjugate() Quaternion {
	quat.B = -quat.B
	quat.C = -quat.C
	quat.D = -quat.D
	return quat
}

// Inverse returns the multiplicative inverse of the Quaternion, which is its conjugate divided by its squared norm.
// The zero Quaternion has no inverse; calling Inverse() on it gives non-finite (NaN / Inf) components rather than
// panicking. Use CheckedInverse() to get an error instead.
func (quat Quaternion) Inverse() Quaternion {
	n := quat.Norm()
	normSq := n * n
	return Quaternion{
		A: quat.A / normSq,
		B: -quat.B / normSq,
		C: -quat.C / normSq,
		D: -quat.D / normSq,
	}
}

// Normalize returns a copy of the Quaternion scaled to unit length. The zero Quaternion normalizes to NaNs; use
// CheckedNormalize() to get an error instead.
func (quat Quaternion) Normalize() Quaternion {
	n := quat.Norm()
	quat.A /= n
	quat.B /= n
	quat.C /= n
	quat.D /= n
	return quat
}

// Scalar returns the scalar (real) part of the Quaternion.
func (quat Quaternion) Scalar() float64 {
	return quat.A
}

// VectorPart returns the vector (imaginary) part of the Quaternion, (B, C, D), discarding the scalar part.
func (quat Quaternion) VectorPart() Vector {
	return Vector{X: quat.B, Y: quat.C, Z: quat.D}
}

// RotateVector rotates the given Vector by the rotation the Quaternion represents, returning a rotated copy of it.
// This is computed as quat * v * quat⁻¹, where v is lifted into a pure Quaternion first.
// For example, a Quaternion created with FromAxisAngle(VecY, math.Pi / 2) rotates {1, 0, 0} into {0, 0, -1}.
// The calling Quaternion should generally be a unit Quaternion; any other nonzero Quaternion rotates the same way,
// since the inverse cancels its scale out.
func (quat Quaternion) RotateVector(vec Vector) Vector {
	return quat.Multiply(FromVector(vec)).Multiply(quat.Inverse()).VectorPart()
}

// ToAxisAngle converts the Quaternion into the axis and angle (in radians) of the rotation it represents. The
// Quaternion should be a unit Quaternion.
// If the rotation is degenerate (the angle is close enough to 0 or 2π that sqrt(1 - A²) < AxisEpsilon), the axis
// can't be recovered, so an AxisAngle with an axis of {1, 0, 0} and an angle of 0 is returned.
func (quat Quaternion) ToAxisAngle() AxisAngle {
	return quat.ToAxisAngleEpsilon(AxisEpsilon)
}

// ToAxisAngleEpsilon works like ToAxisAngle(), but with the degenerate-axis threshold given instead of AxisEpsilon.
func (quat Quaternion) ToAxisAngleEpsilon(epsilon float64) AxisAngle {

	// A unit quaternion's scalar part can round past ±1; clamp it so those land on the degenerate branch.
	a := fmath.Clamp(quat.A, -1, 1)
	angle := 2 * math.Acos(a)
	s := math.Sqrt(math.Max(0, 1-a*a))

	if s < epsilon {
		return AxisAngle{Axis: VecX, Angle: 0}
	}

	return AxisAngle{
		Axis:  Vector{X: quat.B / s, Y: quat.C / s, Z: quat.D / s},
		Angle: angle,
	}

}

// IsZero returns true if all four components of the Quaternion are exactly 0.
func (quat Quaternion) IsZero() bool {
	return quat == Quaternion{}
}

// IsUnit returns true if the Quaternion's Norm() is within tolerance of 1.
func (quat Quaternion) IsUnit(tolerance float64) bool {
	return math.Abs(quat.Norm()-1) <= tolerance
}

// Equals returns true if the two Quaternions are equal within fmath.Epsilon.
func (quat Quaternion) Equals(other Quaternion) bool {
	return quat.ApproxEquals(other, fmath.Epsilon)
}

// ApproxEquals returns true if each component of the two Quaternions is within the tolerance provided.
func (quat Quaternion) ApproxEquals(other Quaternion, tolerance float64) bool {
	return fmath.ApproxEqual(quat.A, other.A, tolerance) &&
		fmath.ApproxEqual(quat.B, other.B, tolerance) &&
		fmath.ApproxEqual(quat.C, other.C, tolerance) &&
		fmath.ApproxEqual(quat.D, other.D, tolerance)
}

// String returns the Quaternion in the form "Quaternion(a, b, c, d)", using the shortest representation of each
// coefficient that round-trips. It's meant for debugging and logging, not for parsing.
func (quat Quaternion) String() string {
	return "Quaternion(" + formatFloat(quat.A) + ", " + formatFloat(quat.B) + ", " + formatFloat(quat.C) + ", " + formatFloat(quat.D) + ")"
}
