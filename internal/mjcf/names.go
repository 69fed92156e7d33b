package mjcf

import (
	"strconv"

	"github.com/antchfx/xmlquery"
)

// nameSet tracks geometry names used in one model. Explicit names are reserved before
// any geometry is built, so a synthesized name never equals a name given later in
// the document.
type nameSet map[string]bool

// reserveGeomNames collects the name attribute of every geom directly under a
// worldbody of root.
func reserveGeomNames(root *xmlquery.Node) nameSet {
	names := nameSet{}
	for wb := root.FirstChild; wb != nil; wb = wb.NextSibling {
		if wb.Type != xmlquery.ElementNode || LookupTag(wb.Data) != TagWorldbody {
			continue
		}
		for g := wb.FirstChild; g != nil; g = g.NextSibling {
			if g.Type != xmlquery.ElementNode || LookupTag(g.Data) != TagGeom {
				continue
			}
			for _, a := range g.Attr {
				if attrName(a) == AttrName.String() {
					names[a.Value] = true
				}
			}
		}
	}
	return names
}

// synthesize returns the decimal form of the smallest integer >= index that is not
// already used, and marks it used.
func (s nameSet) synthesize(index int) string {
	for ; ; index++ {
		name := strconv.Itoa(index)
		if !s[name] {
			s[name] = true
			return name
		}
	}
}
