package mjcf

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why a model could not be parsed.
type ErrorKind int

const (
	MalformedDocument ErrorKind = iota + 1
	MissingRequiredTag
	WorldBodyHasAttributes
	WorldBodyInvalidChildren
	InvalidGeometryType
	UnsupportedGeometryType
	RequiredAttributeMissing
	MultiplePositions
	MultipleOrientations
	AttributeVectorError
	DegenerateOrientation
	InvalidDimension
)

var kindNames = map[ErrorKind]string{
	MalformedDocument:        "malformed document",
	MissingRequiredTag:       "missing required tag",
	WorldBodyHasAttributes:   "worldbody tag has attributes",
	WorldBodyInvalidChildren: "worldbody has invalid children",
	InvalidGeometryType:      "invalid geom type",
	UnsupportedGeometryType:  "geom type is not currently supported",
	RequiredAttributeMissing: "required attribute missing",
	MultiplePositions:        "multiple positions specified",
	MultipleOrientations:     "multiple orientations specified",
	AttributeVectorError:     "bad attribute values",
	DegenerateOrientation:    "degenerate orientation",
	InvalidDimension:         "invalid dimension",
}

func (k ErrorKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is; each matches any *Error of the same kind.
var (
	ErrMalformedDocument        = &Error{Kind: MalformedDocument}
	ErrMissingRequiredTag       = &Error{Kind: MissingRequiredTag}
	ErrWorldBodyHasAttributes   = &Error{Kind: WorldBodyHasAttributes}
	ErrWorldBodyInvalidChildren = &Error{Kind: WorldBodyInvalidChildren}
	ErrInvalidGeometryType      = &Error{Kind: InvalidGeometryType}
	ErrUnsupportedGeometryType  = &Error{Kind: UnsupportedGeometryType}
	ErrRequiredAttributeMissing = &Error{Kind: RequiredAttributeMissing}
	ErrMultiplePositions        = &Error{Kind: MultiplePositions}
	ErrMultipleOrientations     = &Error{Kind: MultipleOrientations}
	ErrAttributeVector          = &Error{Kind: AttributeVectorError}
	ErrDegenerateOrientation    = &Error{Kind: DegenerateOrientation}
	ErrInvalidDimension         = &Error{Kind: InvalidDimension}
)

// Error is the single error type returned by model parsing. Tag and Attribute name
// the element and attribute involved; Value is the offending text (a geometry type,
// a tag name, or a raw attribute value). Err is the underlying cause, if any.
type Error struct {
	Kind      ErrorKind
	Tag       string
	Attribute string
	Value     string
	Err       error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	switch e.Kind {
	case MissingRequiredTag:
		msg += " " + e.Tag
	case InvalidGeometryType, UnsupportedGeometryType:
		msg += fmt.Sprintf(" %q", e.Value)
	case RequiredAttributeMissing:
		msg += fmt.Sprintf(" %q", e.Attribute)
	case WorldBodyInvalidChildren, MalformedDocument:
		if e.Value != "" {
			msg += ": " + e.Value
		}
	case AttributeVectorError, InvalidDimension, DegenerateOrientation, MultipleOrientations:
		if e.Attribute != "" {
			msg += fmt.Sprintf(" in %q", e.Attribute)
		}
		if e.Value != "" {
			msg += fmt.Sprintf(" (%s)", e.Value)
		}
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind only.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

func vectorError(tag string, a Attr, text string, err error) *Error {
	return &Error{Kind: AttributeVectorError, Tag: tag, Attribute: a.String(), Value: text, Err: err}
}
