package attr

import (
	"errors"
	"fmt"
)

// Attribute errors
var (
	// ErrMalformedAttribute matches every *MalformedError.
	ErrMalformedAttribute   = errors.New("attr: malformed attribute")
	ErrUnknownAttributeType = errors.New("attr: unknown attribute type")
	ErrAttributeNotFound    = errors.New("attr: attribute not found")
	ErrInvalidAttribute     = errors.New("attr: invalid attribute value")
	ErrDuplicateType        = errors.New("attr: type already registered")

	ErrNotEXR             = errors.New("attr: not an OpenEXR file")
	ErrUnsupportedVersion = errors.New("attr: unsupported file version")
)

// MalformedError reports an attribute whose framing or body is inconsistent,
// such as a fixed-width kind framed with the wrong size.
type MalformedError struct {
	Name   string // attribute name, empty when not yet known
	Type   string // type tag
	Size   int    // declared body size
	Reason string
}

func (e *MalformedError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("attr: malformed %s attribute (size %d): %s", e.Type, e.Size, e.Reason)
	}
	return fmt.Sprintf("attr: malformed %s attribute %q (size %d): %s", e.Type, e.Name, e.Size, e.Reason)
}

// Is reports whether target is ErrMalformedAttribute.
func (e *MalformedError) Is(target error) bool {
	return target == ErrMalformedAttribute
}

// StreamError reports a failure of the underlying stream while reading or
// writing an attribute.
type StreamError struct {
	Op   string // "read" or "write"
	Name string // attribute name, empty for header-level framing
	Err  error
}

func (e *StreamError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("attr: %s header: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("attr: %s %s: %v", e.Op, e.Name, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

func malformed(typeName string, size int, format string, args ...interface{}) *MalformedError {
	return &MalformedError{Type: typeName, Size: size, Reason: fmt.Sprintf(format, args...)}
}

// checkSize rejects a declared size that differs from a fixed body width.
func checkSize(typeName string, size, want int) error {
	if size != want {
		return malformed(typeName, size, "expected %d bytes", want)
	}
	return nil
}
