package theme

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	ErrThemeNotFound       = errors.New("theme not found")
	ErrUnknownAppearance   = errors.New("unknown appearance")
	ErrSyntaxThemeNotFound = errors.New("syntax theme not found")
)

// ParseErrorKind identifies why a document could not be decoded.
type ParseErrorKind string

// Parse error kinds.
const (
	InvalidColorLiteral ParseErrorKind = "invalid_color_literal"
	MalformedDocument   ParseErrorKind = "malformed_document"
)

// ParseError describes a failure to decode a color literal or a refinement document.
type ParseError struct {
	Kind  ParseErrorKind
	Slot  string // Slot whose value failed to decode, if known
	Value string // Offending literal for InvalidColorLiteral
	Err   error  // Underlying decoder error, if any
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidColorLiteral:
		if e.Slot != "" {
			return fmt.Sprintf("slot %q: invalid color literal %q", e.Slot, e.Value)
		}
		return fmt.Sprintf("invalid color literal %q", e.Value)
	case MalformedDocument:
		if e.Err != nil {
			return "malformed document: " + e.Err.Error()
		}
		return "malformed document: expected a JSON object"
	default:
		return fmt.Sprintf("parse error: %v", e.Err)
	}
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is a *ParseError of the given kind.
func IsParseError(err error, kind ParseErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}
