// Package mjcf turns a MuJoCo-style XML model into engine-agnostic geometry
// descriptors. Only worldbody geometries are built; everything else in the format
// is either skipped with a diagnostic or rejected with an *Error.
//
// Parsing is synchronous and keeps no state between calls. Diagnostics go to the
// diag.Sink passed in and never affect the result.
package mjcf

import (
	"fmt"
	"io"
	"strings"

	"mjcf-parser/internal/diag"
	"mjcf-parser/internal/geom"

	"github.com/antchfx/xmlquery"
)

// DefaultModelName is used when the root has no model attribute.
const DefaultModelName = "MuJoCo Model"

// Model is a parsed scene: its display name and its geometries in document order.
type Model struct {
	Name  string
	Geoms []geom.Descriptor
}

// Geom returns the geometry with the given name.
func (m *Model) Geom(name string) (geom.Descriptor, bool) {
	for _, d := range m.Geoms {
		if d.Name == name {
			return d, true
		}
	}
	return geom.Descriptor{}, false
}

// ParseString parses a complete model document held in memory.
func ParseString(text string, sink diag.Sink) (*Model, error) {
	return Parse(strings.NewReader(text), sink)
}

// Parse reads a complete model document from r. The first structural or semantic
// violation aborts the parse; no partial model is returned.
//
// Elements are matched by local name only, so a namespace prefix is ignored:
// <x:mujoco xmlns:x="urn:a"> is accepted as the root. An element repeating an
// attribute is a MalformedDocument.
func Parse(r io.Reader, sink diag.Sink) (*Model, error) {
	if sink == nil {
		sink = diag.Discard
	}
	diag.Debug(sink, "Parsing XML string")
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, &Error{Kind: MalformedDocument, Err: err}
	}
	root, err := rootElement(doc)
	if err != nil {
		return nil, err
	}
	if err := checkUniqueAttrs(root); err != nil {
		return nil, err
	}
	if LookupTag(root.Data) != TagMujoco {
		return nil, &Error{Kind: MissingRequiredTag, Tag: TagMujoco.String(), Value: root.Data}
	}

	m := &Model{Name: DefaultModelName}
	names := reserveGeomNames(root)
	for _, a := range root.Attr {
		switch name := attrName(a); name {
		case "model":
			m.Name = a.Value
			diag.Debug(sink, "Changed model name", "model_name", m.Name)
		default:
			diag.Warn(sink, "Ignoring unknown mujoco attribute", "attribute", name)
		}
	}

	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		switch tag := LookupTag(c.Data); {
		case tag == TagWorldbody:
			if m.Geoms, err = parseWorldbody(sink, c, m.Geoms, names); err != nil {
				return nil, err
			}
		case tag.isSection():
			diag.Debug(sink, "Skipping unimplemented section", "tag", tag.String())
		default:
			diag.Warn(sink, "Ignoring unsupported tag", "tag", c.Data)
		}
	}
	return m, nil
}

// rootElement returns the single top-level element of doc.
func rootElement(doc *xmlquery.Node) (*xmlquery.Node, error) {
	var root *xmlquery.Node
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != xmlquery.ElementNode {
			continue
		}
		if root != nil {
			return nil, &Error{Kind: MalformedDocument, Value: "multiple root elements"}
		}
		root = c
	}
	if root == nil {
		return nil, &Error{Kind: MalformedDocument, Value: "no root element"}
	}
	return root, nil
}

// checkUniqueAttrs rejects the first element under n, n included, that names the
// same attribute twice. The XML decoder does not enforce this.
func checkUniqueAttrs(n *xmlquery.Node) error {
	if n.Type == xmlquery.ElementNode && len(n.Attr) > 1 {
		seen := make(map[string]bool, len(n.Attr))
		for _, a := range n.Attr {
			name := attrName(a)
			if seen[name] {
				return &Error{
					Kind:      MalformedDocument,
					Tag:       n.Data,
					Attribute: name,
					Value:     fmt.Sprintf("duplicate attribute %q on <%s>", name, n.Data),
				}
			}
			seen[name] = true
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := checkUniqueAttrs(c); err != nil {
			return err
		}
	}
	return nil
}
