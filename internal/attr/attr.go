package attr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrorKind classifies a malformed numeric attribute payload.
type ErrorKind int

const (
	TooFewValues ErrorKind = iota + 1
	TooManyValues
	ValueParseFailure
)

func (k ErrorKind) String() string {
	switch k {
	case TooFewValues:
		return "too few values"
	case TooManyValues:
		return "too many values"
	case ValueParseFailure:
		return "value parse failure"
	}
	return "unknown"
}

// Sentinels for errors.Is. Each matches any *Error of the same kind.
var (
	ErrTooFewValues  = &Error{Kind: TooFewValues}
	ErrTooManyValues = &Error{Kind: TooManyValues}
	ErrValueParse    = &Error{Kind: ValueParseFailure}
)

// Error describes why a whitespace-separated attribute could not become a vector.
// Want/Got are token counts; Token and Position (zero-based) identify the bad token
// for ValueParseFailure.
type Error struct {
	Kind     ErrorKind
	Want     string
	Got      int
	Token    string
	Position int
	Err      error
}

func (e *Error) Error() string {
	switch e.Kind {
	case TooFewValues, TooManyValues:
		return fmt.Sprintf("%s: want %s, got %d", e.Kind, e.Want, e.Got)
	case ValueParseFailure:
		return fmt.Sprintf("%s: token %q at position %d", e.Kind, e.Token, e.Position)
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches another *Error by kind only, so the package sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Parse splits text on whitespace and parses exactly k floats. Fewer or more tokens
// is an error; values are never padded or truncated.
func Parse(text string, k int) ([]float64, error) {
	return ParseRange(text, k, k)
}

// ParseRange is like Parse but accepts any token count in [lo, hi].
func ParseRange(text string, lo, hi int) ([]float64, error) {
	fields := strings.Fields(text)
	switch {
	case len(fields) < lo:
		return nil, &Error{Kind: TooFewValues, Want: arity(lo, hi), Got: len(fields)}
	case len(fields) > hi:
		return nil, &Error{Kind: TooManyValues, Want: arity(lo, hi), Got: len(fields)}
	}
	out := make([]float64, len(fields))
	for i, tok := range fields {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, &Error{Kind: ValueParseFailure, Token: tok, Position: i, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

func arity(lo, hi int) string {
	if lo == hi {
		return strconv.Itoa(lo)
	}
	return fmt.Sprintf("%d to %d", lo, hi)
}

// Vec3 parses exactly three values.
func Vec3(text string) (mgl64.Vec3, error) {
	v, err := Parse(text, 3)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, nil
}

// Vec4 parses exactly four values.
func Vec4(text string) (mgl64.Vec4, error) {
	v, err := Parse(text, 4)
	if err != nil {
		return mgl64.Vec4{}, err
	}
	return mgl64.Vec4{v[0], v[1], v[2], v[3]}, nil
}

// Vec6 parses exactly six values and returns them as two consecutive 3-vectors,
// e.g. the endpoints of a segment.
func Vec6(text string) (a, b mgl64.Vec3, err error) {
	v, err := Parse(text, 6)
	if err != nil {
		return a, b, err
	}
	return mgl64.Vec3{v[0], v[1], v[2]}, mgl64.Vec3{v[3], v[4], v[5]}, nil
}
