package mjcf

import "github.com/antchfx/xmlquery"

// Tag is an element name of the model format, resolved once when a node is visited.
type Tag int

const (
	TagUnknown Tag = iota
	TagMujoco
	TagWorldbody
	TagGeom
	TagBody
	TagSite
	TagCamera
	TagLight
	TagInertial
	TagJoint
	TagFreejoint

	// Top-level sections that are recognized but not parsed.
	TagCompiler
	TagOption
	TagSize
	TagVisual
	TagStatistic
	TagDefault
	TagCustom
	TagExtension
	TagAsset
	TagContact
	TagEquality
	TagTendon
	TagActuator
	TagSensor
	TagKeyframe
	TagInclude
)

var tagNames = [...]string{
	TagUnknown:   "",
	TagMujoco:    "mujoco",
	TagWorldbody: "worldbody",
	TagGeom:      "geom",
	TagBody:      "body",
	TagSite:      "site",
	TagCamera:    "camera",
	TagLight:     "light",
	TagInertial:  "inertial",
	TagJoint:     "joint",
	TagFreejoint: "freejoint",
	TagCompiler:  "compiler",
	TagOption:    "option",
	TagSize:      "size",
	TagVisual:    "visual",
	TagStatistic: "statistic",
	TagDefault:   "default",
	TagCustom:    "custom",
	TagExtension: "extension",
	TagAsset:     "asset",
	TagContact:   "contact",
	TagEquality:  "equality",
	TagTendon:    "tendon",
	TagActuator:  "actuator",
	TagSensor:    "sensor",
	TagKeyframe:  "keyframe",
	TagInclude:   "include",
}

var tagByName = func() map[string]Tag {
	m := make(map[string]Tag, len(tagNames))
	for t, name := range tagNames {
		if name != "" {
			m[name] = Tag(t)
		}
	}
	return m
}()

// LookupTag maps an element name to its Tag, or TagUnknown.
func LookupTag(name string) Tag {
	return tagByName[name]
}

func (t Tag) String() string {
	if t > TagUnknown && int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// isSection reports whether t is a top-level section that is skipped.
func (t Tag) isSection() bool {
	return t >= TagCompiler && t <= TagInclude
}

// Attr is a geometry attribute name of the model format.
type Attr int

const (
	AttrUnknown Attr = iota
	AttrName
	AttrClass
	AttrType
	AttrContype
	AttrConaffinity
	AttrCondim
	AttrGroup
	AttrPriority
	AttrSize
	AttrMaterial
	AttrRGBA
	AttrFriction
	AttrMass
	AttrDensity
	AttrSolmix
	AttrSolref
	AttrSolimp
	AttrSolimpl
	AttrMargin
	AttrGap
	AttrFromto
	AttrPos
	AttrQuat
	AttrAxisangle
	AttrXyaxes
	AttrZaxis
	AttrEuler
	AttrHfield
	AttrMesh
	AttrFitscale
)

var attrNames = [...]string{
	AttrUnknown:     "",
	AttrName:        "name",
	AttrClass:       "class",
	AttrType:        "type",
	AttrContype:     "contype",
	AttrConaffinity: "conaffinity",
	AttrCondim:      "condim",
	AttrGroup:       "group",
	AttrPriority:    "priority",
	AttrSize:        "size",
	AttrMaterial:    "material",
	AttrRGBA:        "rgba",
	AttrFriction:    "friction",
	AttrMass:        "mass",
	AttrDensity:     "density",
	AttrSolmix:      "solmix",
	AttrSolref:      "solref",
	AttrSolimp:      "solimp",
	AttrSolimpl:     "solimpl",
	AttrMargin:      "margin",
	AttrGap:         "gap",
	AttrFromto:      "fromto",
	AttrPos:         "pos",
	AttrQuat:        "quat",
	AttrAxisangle:   "axisangle",
	AttrXyaxes:      "xyaxes",
	AttrZaxis:       "zaxis",
	AttrEuler:       "euler",
	AttrHfield:      "hfield",
	AttrMesh:        "mesh",
	AttrFitscale:    "fitscale",
}

var attrByName = func() map[string]Attr {
	m := make(map[string]Attr, len(attrNames))
	for a, name := range attrNames {
		if name != "" {
			m[name] = Attr(a)
		}
	}
	return m
}()

// LookupAttr maps a geometry attribute name to its Attr, or AttrUnknown.
func LookupAttr(name string) Attr {
	return attrByName[name]
}

func (a Attr) String() string {
	if a > AttrUnknown && int(a) < len(attrNames) {
		return attrNames[a]
	}
	return "unknown"
}

// attrSet is a node's attributes keyed by Attr. Names outside the vocabulary are
// kept in document order so they can be reported.
type attrSet struct {
	values  map[Attr]string
	unknown []string
}

func resolveAttrs(n *xmlquery.Node) attrSet {
	s := attrSet{values: make(map[Attr]string, len(n.Attr))}
	for _, a := range n.Attr {
		name := attrName(a)
		if k := LookupAttr(name); k != AttrUnknown {
			s.values[k] = a.Value
			continue
		}
		s.unknown = append(s.unknown, name)
	}
	return s
}

func (s attrSet) get(k Attr) (string, bool) {
	v, ok := s.values[k]
	return v, ok
}

func (s attrSet) has(k Attr) bool {
	_, ok := s.values[k]
	return ok
}

func attrName(a xmlquery.Attr) string {
	if a.Name.Space != "" {
		return a.Name.Space + ":" + a.Name.Local
	}
	return a.Name.Local
}
