package quaternion

import "github.com/sirupsen/logrus"

// Fields returns the Quaternion's components as logrus.Fields, so it can be attached to a log entry with
// logger.WithFields(quat.Fields()).
func (quat Quaternion) Fields() logrus.Fields {
	return logrus.Fields{
		"a": quat.A,
		"b": quat.B,
		"c": quat.C,
		"d": quat.D,
	}
}

// Fields returns the Vector's components as logrus.Fields.
func (vec Vector) Fields() logrus.Fields {
	return logrus.Fields{
		"x": vec.X,
		"y": vec.Y,
		"z": vec.Z,
	}
}

// Fields returns the AxisAngle as logrus.Fields, with the axis flattened and the angle given in both radians and degrees.
func (aa AxisAngle) Fields() logrus.Fields {
	fields := aa.Axis.Fields()
	fields["angle"] = aa.Angle
	fields["degrees"] = aa.Degrees()
	return fields
}
