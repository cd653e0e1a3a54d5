package quaternion

import (
	"math"
	"strconv"

	"github.com/solarlune/quaternion/fmath"
)

// VecX represents a unit vector along the X axis (right).
var VecX = NewVector(1, 0, 0)

// VecY represents a unit vector along the Y axis (up).
var VecY = NewVector(0, 1, 0)

// VecZ represents a unit vector along the Z axis (backwards, towards you).
var VecZ = NewVector(0, 0, 1)

// Vector represents a 3D Vector; it's what RotateVector() rotates, what VectorPart() returns, and what an AxisAngle
// uses for its axis.
// Any Vector functions that would modify the calling Vector return copies of the modified Vector instead, meaning you can
// do method-chaining easily.
type Vector struct {
	X float64 // The X (1st) component of the Vector
	Y float64 // The Y (2nd) component of the Vector
	Z float64 // The Z (3rd) component of the Vector
}

// NewVector creates a new Vector with the specified x, y, and z components.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Add returns a copy of the calling vector, added together with the other Vector provided.
func (vec Vector) Add(other Vector) Vector {
	vec.X += other.X
	vec.Y += other.Y
	vec.Z += other.Z
	return vec
}

// Sub returns a copy of the calling Vector, with the other Vector subtracted from it.
func (vec Vector) Sub(other Vector) Vector {
	vec.X -= other.X
	vec.Y -= other.Y
	vec.Z -= other.Z
	return vec
}

// Scale returns a copy of the Vector with each component multiplied by the scalar provided.
func (vec Vector) Scale(scalar float64) Vector {
	vec.X *= scalar
	vec.Y *= scalar
	vec.Z *= scalar
	return vec
}

// Cross returns a new Vector, indicating the cross product of the calling Vector and the provided Other Vector.
func (vec Vector) Cross(other Vector) Vector {

	ogVecY := vec.Y
	ogVecZ := vec.Z

	vec.Z = vec.X*other.Y - other.X*vec.Y
	vec.Y = ogVecZ*other.X - other.Z*vec.X
	vec.X = ogVecY*other.Z - other.Y*ogVecZ

	return vec

}

// Dot returns the dot product of the calling Vector and the other Vector.
func (vec Vector) Dot(other Vector) float64 {
	return vec.X*other.X + vec.Y*other.Y + vec.Z*other.Z
}

// Invert returns a copy of the Vector pointing the opposite way.
func (vec Vector) Invert() Vector {
	vec.X = -vec.X
	vec.Y = -vec.Y
	vec.Z = -vec.Z
	return vec
}

// Magnitude returns the length of the Vector.
func (vec Vector) Magnitude() float64 {
	return math.Sqrt(vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z)
}

// MagnitudeSquared returns the squared length of the Vector; this is faster than Magnitude() as it avoids using math.Sqrt().
func (vec Vector) MagnitudeSquared() float64 {
	return vec.X*vec.X + vec.Y*vec.Y + vec.Z*vec.Z
}

// Unit returns a copy of the Vector, normalized (set to be of unit length).
func (vec Vector) Unit() Vector {
	l := vec.Magnitude()
	if l < 1e-8 {
		// If it's 0, then don't modify the vector
		return vec
	}
	vec.X, vec.Y, vec.Z = vec.X/l, vec.Y/l, vec.Z/l
	return vec
}

// Equals returns true if the two Vectors are equal within fmath.Epsilon.
func (vec Vector) Equals(other Vector) bool {
	return vec.ApproxEquals(other, fmath.Epsilon)
}

// ApproxEquals returns true if each component of the two Vectors is within the tolerance provided.
func (vec Vector) ApproxEquals(other Vector, tolerance float64) bool {
	return fmath.ApproxEqual(vec.X, other.X, tolerance) &&
		fmath.ApproxEqual(vec.Y, other.Y, tolerance) &&
		fmath.ApproxEqual(vec.Z, other.Z, tolerance)
}

// String returns the Vector in the form "{x, y, z}".
func (vec Vector) String() string {
	return "{" + formatFloat(vec.X) + ", " + formatFloat(vec.Y) + ", " + formatFloat(vec.Z) + "}"
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
