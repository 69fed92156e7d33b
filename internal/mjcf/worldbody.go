package mjcf

import (
	"mjcf-parser/internal/diag"
	"mjcf-parser/internal/geom"

	"github.com/antchfx/xmlquery"
)

// parseWorldbody validates a worldbody element and appends its geometries to geoms.
// inertial, joint and freejoint belong inside a body, so finding them directly under
// the worldbody fails the whole parse.
func parseWorldbody(sink diag.Sink, n *xmlquery.Node, geoms []geom.Descriptor, names nameSet) ([]geom.Descriptor, error) {
	diag.Debug(sink, "Parsing worldbody tag")
	if len(n.Attr) > 0 {
		return nil, &Error{Kind: WorldBodyHasAttributes, Tag: TagWorldbody.String(), Attribute: attrName(n.Attr[0])}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch tag := LookupTag(c.Data); tag {
		case TagInertial, TagJoint, TagFreejoint:
			return nil, &Error{Kind: WorldBodyInvalidChildren, Tag: TagWorldbody.String(), Value: tag.String()}
		case TagGeom:
			d, err := parseGeom(sink, c, len(geoms), names)
			if err != nil {
				return nil, err
			}
			geoms = append(geoms, d)
		case TagBody, TagSite, TagCamera, TagLight:
			diag.Debug(sink, "Skipping unimplemented tag", "tag", tag.String())
		default:
			diag.Warn(sink, "Ignoring unsupported tag", "tag", c.Data)
		}
	}
	return geoms, nil
}
