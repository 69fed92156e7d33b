package mjcf

import (
	"math"
	"strconv"

	"mjcf-parser/internal/attr"
	"mjcf-parser/internal/diag"
	"mjcf-parser/internal/geom"

	"github.com/antchfx/xmlquery"
	"github.com/go-gl/mathgl/mgl64"
)

// geomTypes are the type values this parser can build.
var geomTypes = map[string]geom.Kind{
	"plane":   geom.KindPlane,
	"sphere":  geom.KindSphere,
	"capsule": geom.KindCapsule,
	"box":     geom.KindBox,
}

// unimplementedGeomTypes are valid in the format but not built.
var unimplementedGeomTypes = map[string]bool{
	"hfield":    true,
	"ellipsoid": true,
	"cylinder":  true,
	"mesh":      true,
}

// lookupGeomType maps the type attribute to a Kind. A missing type is a sphere.
func lookupGeomType(a attrSet) (geom.Kind, error) {
	t, ok := a.get(AttrType)
	if !ok {
		return geom.KindSphere, nil
	}
	if k, ok := geomTypes[t]; ok {
		return k, nil
	}
	if unimplementedGeomTypes[t] {
		return 0, &Error{Kind: UnsupportedGeometryType, Tag: TagGeom.String(), Attribute: AttrType.String(), Value: t}
	}
	return 0, &Error{Kind: InvalidGeometryType, Tag: TagGeom.String(), Attribute: AttrType.String(), Value: t}
}

// parseGeom resolves one geom element. index is the number of geometries already
// parsed in the enclosing model; an unnamed geometry takes the first free name from
// names at or after index.
func parseGeom(sink diag.Sink, n *xmlquery.Node, index int, names nameSet) (geom.Descriptor, error) {
	a := resolveAttrs(n)
	diag.Debug(sink, "Parsing geom tag", "index", index)

	kind, err := lookupGeomType(a)
	if err != nil {
		return geom.Descriptor{}, err
	}
	translation, seg, err := resolvePosition(a, kind)
	if err != nil {
		return geom.Descriptor{}, err
	}
	shape, err := buildShape(sink, a, kind, seg)
	if err != nil {
		return geom.Descriptor{}, err
	}
	orientation, err := resolveOrientation(a, kind, seg)
	if err != nil {
		return geom.Descriptor{}, err
	}

	d := geom.Descriptor{
		Shape:    shape,
		Pose:     geom.Pose{Translation: translation, Orientation: orientation},
		Material: geom.DefaultMaterial(),
	}
	if name, ok := a.get(AttrName); ok {
		d.Name = name
		d.Named = true
	} else {
		d.Name = names.synthesize(index)
	}
	audit(sink, a, auditContext{kind: kind, fromto: seg != nil, name: d.Name})
	return d, nil
}

// buildShape reads size for the given kind. Capsules placed by fromto take their
// half-length from the segment; size then carries the radius, optionally followed
// by a half-length that is ignored.
func buildShape(sink diag.Sink, a attrSet, kind geom.Kind, seg *segment) (geom.Shape, error) {
	if kind == geom.KindPlane {
		return geom.Plane{}, nil
	}
	text, ok := a.get(AttrSize)
	if !ok {
		return nil, &Error{Kind: RequiredAttributeMissing, Tag: TagGeom.String(), Attribute: AttrSize.String()}
	}

	switch kind {
	case geom.KindSphere:
		v, err := attr.Parse(text, 1)
		if err != nil {
			return nil, vectorError(TagGeom.String(), AttrSize, text, err)
		}
		if err := checkDimension(AttrSize, v[0]); err != nil {
			return nil, err
		}
		return geom.Sphere{Radius: v[0]}, nil

	case geom.KindCapsule:
		if seg != nil {
			v, err := attr.ParseRange(text, 1, 2)
			if err != nil {
				return nil, vectorError(TagGeom.String(), AttrSize, text, err)
			}
			if len(v) == 2 {
				diag.Debug(sink, "Capsule half-length from size overridden by fromto", "size", text)
			}
			halfLength := seg.halfLength()
			if err := checkDimension(AttrSize, v[0]); err != nil {
				return nil, err
			}
			if err := checkDimension(AttrFromto, halfLength); err != nil {
				return nil, err
			}
			return geom.Capsule{HalfLength: halfLength, Radius: v[0]}, nil
		}
		v, err := attr.Parse(text, 2)
		if err != nil {
			return nil, vectorError(TagGeom.String(), AttrSize, text, err)
		}
		if err := checkDimension(AttrSize, v...); err != nil {
			return nil, err
		}
		return geom.Capsule{Radius: v[0], HalfLength: v[1]}, nil

	case geom.KindBox:
		v, err := attr.Parse(text, 3)
		if err != nil {
			return nil, vectorError(TagGeom.String(), AttrSize, text, err)
		}
		if err := checkDimension(AttrSize, v...); err != nil {
			return nil, err
		}
		return geom.Box{HalfExtents: mgl64.Vec3{v[0], v[1], v[2]}}, nil
	}
	return nil, &Error{Kind: InvalidGeometryType, Tag: TagGeom.String(), Value: kind.String()}
}

// checkDimension rejects non-finite and non-positive sizes.
func checkDimension(a Attr, values ...float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return &Error{
				Kind:      InvalidDimension,
				Tag:       TagGeom.String(),
				Attribute: a.String(),
				Value:     strconv.FormatFloat(v, 'g', -1, 64),
			}
		}
	}
	return nil
}
