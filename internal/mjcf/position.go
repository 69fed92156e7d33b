package mjcf

import (
	"mjcf-parser/internal/attr"
	"mjcf-parser/internal/geom"

	"github.com/go-gl/mathgl/mgl64"
)

// segment is a fromto placement: the geometry spans from a to b.
type segment struct {
	a, b mgl64.Vec3
}

func (s segment) midpoint() mgl64.Vec3 {
	return s.a.Add(s.b).Mul(0.5)
}

func (s segment) halfLength() float64 {
	return s.b.Sub(s.a).Len() / 2
}

// orientation aligns local +Z with a->b. A zero-length segment has no direction
// and keeps the identity.
func (s segment) orientation() mgl64.Quat {
	d := s.b.Sub(s.a)
	n := d.Len()
	if n == 0 {
		return mgl64.QuatIdent()
	}
	return minimalRotation(unitZ, d.Mul(1/n))
}

// resolvePosition returns the translation of a geometry and, for segment-like
// shapes placed with fromto, the segment itself. Only capsules and boxes read
// fromto; on other shapes it is left for the coverage audit.
func resolvePosition(a attrSet, kind geom.Kind) (mgl64.Vec3, *segment, error) {
	if kind.SegmentLike() {
		if text, ok := a.get(AttrFromto); ok {
			if a.has(AttrPos) {
				return mgl64.Vec3{}, nil, &Error{Kind: MultiplePositions, Tag: TagGeom.String(), Attribute: AttrFromto.String()}
			}
			p0, p1, err := attr.Vec6(text)
			if err != nil {
				return mgl64.Vec3{}, nil, vectorError(TagGeom.String(), AttrFromto, text, err)
			}
			seg := &segment{a: p0, b: p1}
			return seg.midpoint(), seg, nil
		}
	}
	text, ok := a.get(AttrPos)
	if !ok {
		return mgl64.Vec3{}, nil, nil
	}
	pos, err := attr.Vec3(text)
	if err != nil {
		return mgl64.Vec3{}, nil, vectorError(TagGeom.String(), AttrPos, text, err)
	}
	return pos, nil, nil
}
