package richtext

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a DecodeError.
type ErrorKind uint8

const (
	// KindUnexpectedShape: the value is a boolean, a number or otherwise
	// not one of the accepted shapes.
	KindUnexpectedShape ErrorKind = iota + 1
	// KindNonStringElement: an array holds something other than strings.
	KindNonStringElement
	// KindMarkupSyntax: the markup parser rejected the text.
	KindMarkupSyntax
	// KindLegacyFormat: the legacy decoder rejected the object.
	KindLegacyFormat
	// KindUnsupportedOperation: encoding was requested.
	KindUnsupportedOperation
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case KindUnexpectedShape:
		return "UnexpectedShape"
	case KindNonStringElement:
		return "NonStringElement"
	case KindMarkupSyntax:
		return "MarkupSyntaxError"
	case KindLegacyFormat:
		return "LegacyFormatError"
	case KindUnsupportedOperation:
		return "UnsupportedOperation"
	default:
		return "Unknown"
	}
}

// ErrUnsupportedOperation matches every KindUnsupportedOperation error
// with errors.Is.
var ErrUnsupportedOperation = errors.New("richtext: encoding is not supported")

// DecodeError reports why a rich-text value could not be decoded.
//
// Path locates the value: a JSON Pointer for JSON input ("" is the whole
// document) or "line:column" for YAML input.
type DecodeError struct {
	Kind  ErrorKind
	Path  string
	Shape Shape  // shape of the offending value
	Found string // token that was found, e.g. "true" or "number"
	Err   error  // delegate error for markup and legacy failures
}

func (e *DecodeError) Error() string {
	switch e.Kind {
	case KindUnexpectedShape:
		return fmt.Sprintf("richtext: expected string, array, object or null at %s but found %s", displayPath(e.Path), e.Found)
	case KindNonStringElement:
		return fmt.Sprintf("richtext: array element at %s is %s, want string", displayPath(e.Path), e.Found)
	case KindMarkupSyntax:
		return fmt.Sprintf("richtext: markup at %s: %v", displayPath(e.Path), e.Err)
	case KindLegacyFormat:
		return fmt.Sprintf("richtext: object at %s: %v", displayPath(e.Path), e.Err)
	case KindUnsupportedOperation:
		return ErrUnsupportedOperation.Error()
	default:
		return fmt.Sprintf("richtext: decode failed at %s", displayPath(e.Path))
	}
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrUnsupportedOperation and e has that kind.
func (e *DecodeError) Is(target error) bool {
	return target == ErrUnsupportedOperation && e.Kind == KindUnsupportedOperation
}

func displayPath(path string) string {
	if path == "" {
		return "<root>"
	}
	return path
}

func unsupported() error {
	return &DecodeError{Kind: KindUnsupportedOperation}
}
