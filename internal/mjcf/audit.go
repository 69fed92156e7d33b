package mjcf

import (
	"mjcf-parser/internal/diag"
	"mjcf-parser/internal/geom"
)

// auditContext is what decides whether an attribute was consumed.
type auditContext struct {
	kind   geom.Kind
	fromto bool
	name   string
}

func always(auditContext) bool { return true }

func onPlane(c auditContext) bool { return c.kind == geom.KindPlane }

func notSegmentLike(c auditContext) bool { return !c.kind.SegmentLike() }

// orientationIgnored: planes never rotate and fromto fixes the axis of segment shapes.
func orientationIgnored(c auditContext) bool { return c.kind == geom.KindPlane || c.fromto }

// auditRules lists every geometry attribute the descriptor may not carry, with the
// condition under which its presence is reported.
var auditRules = []struct {
	attr        Attr
	unsupported func(auditContext) bool
}{
	{AttrClass, always},
	{AttrContype, always},
	{AttrConaffinity, always},
	{AttrCondim, always},
	{AttrGroup, always},
	{AttrPriority, always},
	{AttrMaterial, always},
	{AttrRGBA, always},
	{AttrFriction, always},
	{AttrMass, always},
	{AttrDensity, always},
	{AttrSolmix, always},
	{AttrSolref, always},
	{AttrSolimp, always},
	{AttrSolimpl, always},
	{AttrMargin, always},
	{AttrGap, always},
	{AttrHfield, always},
	{AttrMesh, always},
	{AttrFitscale, always},
	{AttrSize, onPlane},
	{AttrFromto, notSegmentLike},
	{AttrQuat, orientationIgnored},
	{AttrAxisangle, orientationIgnored},
	{AttrEuler, orientationIgnored},
	{AttrXyaxes, orientationIgnored},
	{AttrZaxis, orientationIgnored},
}

// audit emits one warning per present attribute that did not shape the descriptor,
// then one per attribute outside the format vocabulary. It never fails.
func audit(sink diag.Sink, a attrSet, c auditContext) {
	for _, r := range auditRules {
		if a.has(r.attr) && r.unsupported(c) {
			diag.Warn(sink, r.attr.String()+" attribute is currently unsupported",
				"attribute", r.attr.String(), "geom", c.name, "type", c.kind.String())
		}
	}
	for _, name := range a.unknown {
		diag.Warn(sink, "Ignoring unknown geom attribute",
			"attribute", name, "geom", c.name, "type", c.kind.String())
	}
}
