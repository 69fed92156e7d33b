package mjcf

import (
	"errors"
	"math"
	"strings"

	"mjcf-parser/internal/attr"
	"mjcf-parser/internal/geom"

	"github.com/go-gl/mathgl/mgl64"
)

// orientationAttrs are the mutually exclusive ways to give a rotation, in the
// order they are reported when more than one is present.
var orientationAttrs = [...]Attr{AttrQuat, AttrAxisangle, AttrEuler, AttrXyaxes, AttrZaxis}

var (
	unitX = mgl64.Vec3{1, 0, 0}
	unitY = mgl64.Vec3{0, 1, 0}
	unitZ = mgl64.Vec3{0, 0, 1}
)

// presentOrientations returns which orientation attributes are set on the node.
func presentOrientations(a attrSet) []Attr {
	var found []Attr
	for _, k := range orientationAttrs {
		if a.has(k) {
			found = append(found, k)
		}
	}
	return found
}

// resolveOrientation returns the unit quaternion for a geometry of the given kind.
// Planes always face +Z, so their orientation attributes are never read. For
// segment-like shapes placed by fromto, the segment direction wins over any explicit
// attribute; the conflict between explicit attributes is still rejected first.
func resolveOrientation(a attrSet, kind geom.Kind, seg *segment) (mgl64.Quat, error) {
	if kind == geom.KindPlane {
		return mgl64.QuatIdent(), nil
	}
	found := presentOrientations(a)
	if len(found) > 1 {
		names := make([]string, len(found))
		for i, k := range found {
			names[i] = k.String()
		}
		return mgl64.Quat{}, &Error{
			Kind:  MultipleOrientations,
			Tag:   TagGeom.String(),
			Value: strings.Join(names, ", "),
		}
	}
	if kind.SegmentLike() && seg != nil {
		return seg.orientation(), nil
	}
	if len(found) == 0 {
		return mgl64.QuatIdent(), nil
	}
	k := found[0]
	text, _ := a.get(k)
	q, err := parseOrientation(k, text)
	if err != nil {
		var aerr *attr.Error
		if errors.As(err, &aerr) {
			return mgl64.Quat{}, vectorError(TagGeom.String(), k, text, err)
		}
		return mgl64.Quat{}, err
	}
	return q, nil
}

func parseOrientation(k Attr, text string) (mgl64.Quat, error) {
	switch k {
	case AttrQuat:
		v, err := attr.Vec4(text)
		if err != nil {
			return mgl64.Quat{}, err
		}
		return fromQuat(v, text)
	case AttrAxisangle:
		v, err := attr.Vec4(text)
		if err != nil {
			return mgl64.Quat{}, err
		}
		return fromAxisAngle(v.Vec3(), v[3], text)
	case AttrEuler:
		v, err := attr.Vec3(text)
		if err != nil {
			return mgl64.Quat{}, err
		}
		return fromEuler(v, text)
	case AttrXyaxes:
		x, y, err := attr.Vec6(text)
		if err != nil {
			return mgl64.Quat{}, err
		}
		return fromXYAxes(x, y, text)
	case AttrZaxis:
		v, err := attr.Vec3(text)
		if err != nil {
			return mgl64.Quat{}, err
		}
		return fromZAxis(v, text)
	}
	return mgl64.QuatIdent(), nil
}

func degenerate(k Attr, text string) *Error {
	return &Error{Kind: DegenerateOrientation, Tag: TagGeom.String(), Attribute: k.String(), Value: text}
}

func finite(v ...float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}

// fromQuat normalizes a (w, x, y, z) quaternion.
func fromQuat(v mgl64.Vec4, text string) (mgl64.Quat, error) {
	q := mgl64.Quat{W: v[0], V: mgl64.Vec3{v[1], v[2], v[3]}}
	n := q.Len()
	if n == 0 || !finite(n) {
		return mgl64.Quat{}, degenerate(AttrQuat, text)
	}
	return q.Scale(1 / n), nil
}

// fromAxisAngle builds a rotation of deg degrees about axis.
func fromAxisAngle(axis mgl64.Vec3, deg float64, text string) (mgl64.Quat, error) {
	n := axis.Len()
	if n == 0 || !finite(n, deg) {
		return mgl64.Quat{}, degenerate(AttrAxisangle, text)
	}
	return mgl64.QuatRotate(mgl64.DegToRad(deg), axis.Mul(1/n)), nil
}

// fromEuler composes intrinsic rotations in degrees: about X, then the new Y,
// then the new Z. That is q = qx * qy * qz.
func fromEuler(v mgl64.Vec3, text string) (mgl64.Quat, error) {
	if !finite(v[0], v[1], v[2]) {
		return mgl64.Quat{}, degenerate(AttrEuler, text)
	}
	qx := mgl64.QuatRotate(mgl64.DegToRad(v[0]), unitX)
	qy := mgl64.QuatRotate(mgl64.DegToRad(v[1]), unitY)
	qz := mgl64.QuatRotate(mgl64.DegToRad(v[2]), unitZ)
	return qx.Mul(qy).Mul(qz).Normalize(), nil
}

// fromXYAxes builds the frame whose local X is x and local Y is y made orthogonal
// to x; local Z is their cross product.
func fromXYAxes(x, y mgl64.Vec3, text string) (mgl64.Quat, error) {
	xl, yl := x.Len(), y.Len()
	if xl == 0 || yl == 0 || !finite(xl, yl) {
		return mgl64.Quat{}, degenerate(AttrXyaxes, text)
	}
	x = x.Mul(1 / xl)
	y = y.Sub(x.Mul(x.Dot(y)))
	if y.Len() <= 1e-10*yl {
		return mgl64.Quat{}, degenerate(AttrXyaxes, text)
	}
	y = y.Normalize()
	z := x.Cross(y)
	return mgl64.Mat4ToQuat(mgl64.Mat3FromCols(x, y, z).Mat4()).Normalize(), nil
}

// fromZAxis returns the minimal rotation taking +Z onto v.
func fromZAxis(v mgl64.Vec3, text string) (mgl64.Quat, error) {
	n := v.Len()
	if n == 0 || !finite(n) {
		return mgl64.Quat{}, degenerate(AttrZaxis, text)
	}
	return minimalRotation(unitZ, v.Mul(1/n)), nil
}

// minimalRotation returns the shortest-arc rotation from unit vector from to unit
// vector to. Opposite vectors rotate half a turn about an axis perpendicular to from.
func minimalRotation(from, to mgl64.Vec3) mgl64.Quat {
	c := from.Dot(to)
	if c < -1+1e-12 {
		axis := unitX.Cross(from)
		if axis.Len() < 1e-6 {
			axis = unitY.Cross(from)
		}
		return mgl64.QuatRotate(math.Pi, axis.Normalize())
	}
	return mgl64.Quat{W: 1 + c, V: from.Cross(to)}.Normalize()
}
