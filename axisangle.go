package quaternion

import "github.com/solarlune/quaternion/fmath"

// AxisAngle represents a rotation in radians around a given 3D axis. This being the case, an AxisAngle can easily also be
// stored in a Quaternion; it's separated here into a 3D Vector and angle for simplicity and readability.
type AxisAngle struct {
	Axis  Vector  // 3 dimensional axis for rotating
	Angle float64 // Rotation in radians
}

// NewAxisAngle creates a new AxisAngle out of the given 3D vector axis and angular rotation. The axis is stored as-is;
// it should be of unit length for the rotation to be meaningful.
func NewAxisAngle(axis Vector, angle float64) AxisAngle {
	return AxisAngle{
		Axis:  axis,
		Angle: angle,
	}
}

// ToQuaternion returns the Quaternion representing the AxisAngle's rotation.
func (aa AxisAngle) ToQuaternion() Quaternion {
	return FromAxisAngle(aa.Axis, aa.Angle)
}

// RotateVector rotates the given Vector by the axis and angle given, returning a rotated copy of it. For example, assuming the AxisAngle had an Axis
// of {0, 1, 0} (+Y, or "Up") and an Angle of pi / 2, axisAngle.RotateVector(Vector{1, 0, 0}) would return Vector{0, 0, -1}.
func (aa AxisAngle) RotateVector(vec Vector) Vector {
	return aa.ToQuaternion().RotateVector(vec)
}

// Degrees returns the AxisAngle's angle in degrees.
func (aa AxisAngle) Degrees() float64 {
	return fmath.ToDegrees(aa.Angle)
}

// Equals returns true if both the axis and angle of the two AxisAngles match within fmath.Epsilon.
func (aa AxisAngle) Equals(other AxisAngle) bool {
	return aa.Axis.Equals(other.Axis) && fmath.ApproxEqual(aa.Angle, other.Angle, fmath.Epsilon)
}

func (aa AxisAngle) String() string {
	return "AxisAngle(" + aa.Axis.String() + ", " + formatFloat(aa.Angle) + ")"
}
