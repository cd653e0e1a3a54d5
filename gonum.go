package quaternion

import gonumquat "gonum.org/v1/gonum/num/quat"

// FromNumber converts a gonum quat.Number into a Quaternion. Real maps to A, and Imag, Jmag, and Kmag map to B, C, and D.
func FromNumber(n gonumquat.Number) Quaternion {
	return Quaternion{A: n.Real, B: n.Imag, C: n.Jmag, D: n.Kmag}
}

// Number converts the Quaternion into a gonum quat.Number, for use with gonum's quaternion functions (Exp, Log, Pow, and so on).
func (quat Quaternion) Number() gonumquat.Number {
	return gonumquat.Number{Real: quat.A, Imag: quat.B, Jmag: quat.C, Kmag: quat.D}
}
