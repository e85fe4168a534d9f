// Package attr reads and writes OpenEXR header attributes.
//
// An attribute is a named, typed value. On the wire it is framed as its
// name, its type tag, a 32-bit byte count and a body whose encoding is
// owned by the value's kind. The byte count lets a reader skip kinds it
// does not recognize, which is how newer files stay readable by older code.
//
// Every kind implements Value. A Registry maps type tags to factories and
// drives decoding when a Header is read:
//
//	reg := attr.StandardRegistry()
//	h, err := attr.ReadHeader(attr.NewDecoder(r), &attr.ReadOptions{Registry: reg})
//
// All multi-byte values are little-endian.
package attr

import (
	"bytes"
	"fmt"
	"io"
	"reflect"

	"github.com/mrjoshuak/go-exrattr/internal/xdr"
)

// Encoder and Decoder are the little-endian primitive streams that
// attribute bodies are written to and read from. Both report their
// position so framing code can check how many bytes a body used.
type (
	Encoder = xdr.Encoder
	Decoder = xdr.Decoder
)

// NewDecoder returns a Decoder reading from r. Reads are unbuffered.
func NewDecoder(r io.Reader) Decoder {
	return xdr.NewStreamReader(r)
}

// NewBytesDecoder returns a Decoder over an in-memory buffer.
func NewBytesDecoder(b []byte) Decoder {
	return xdr.NewReader(b)
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) Encoder {
	return xdr.NewStreamWriter(w)
}

// Standard attribute types
const (
	AttrTypeBox2i          = "box2i"
	AttrTypeBox2f          = "box2f"
	AttrTypeBytes          = "bytes"
	AttrTypeChlist         = "chlist"
	AttrTypeChromaticities = "chromaticities"
	AttrTypeCompression    = "compression"
	AttrTypeDeepImageState = "deepImageState"
	AttrTypeDouble         = "double"
	AttrTypeEnvmap         = "envmap"
	AttrTypeFloat          = "float"
	AttrTypeFloatVector    = "floatvector"
	AttrTypeIDManifest     = "idmanifest"
	AttrTypeInt            = "int"
	AttrTypeKeycode        = "keycode"
	AttrTypeLineOrder      = "lineOrder"
	AttrTypeM33d           = "m33d"
	AttrTypeM33f           = "m33f"
	AttrTypeM44d           = "m44d"
	AttrTypeM44f           = "m44f"
	AttrTypePreview        = "preview"
	AttrTypeRational       = "rational"
	AttrTypeString         = "string"
	AttrTypeStringVector   = "stringvector"
	AttrTypeTileDesc       = "tiledesc"
	AttrTypeTimecode       = "timecode"
	AttrTypeV2d            = "v2d"
	AttrTypeV2f            = "v2f"
	AttrTypeV2i            = "v2i"
	AttrTypeV3d            = "v3d"
	AttrTypeV3f            = "v3f"
	AttrTypeV3i            = "v3i"
)

// Value is implemented by every attribute kind.
//
// TypeName is the kind's type tag. It is part of the file format and never
// changes.
//
// WriteValueTo writes the body only: no name, tag, size or terminator.
// The number of bytes it writes is the size recorded in the framing.
//
// ReadValueFrom replaces the value with the body read from r. size is the
// declared body length; fixed-width kinds return a *MalformedError when it
// does not match. Exactly size bytes must be consumed.
//
// version is the file's version field. None of the built-in kinds change
// their encoding with it.
type Value interface {
	TypeName() string
	WriteValueTo(w Encoder, version Version) error
	ReadValueFrom(r Decoder, size int, version Version) error
}

// Factory returns a new zero value of one kind, ready for ReadValueFrom.
type Factory func() Value

// Attribute represents a single header attribute.
type Attribute struct {
	Name  string
	Value Value
}

// New returns an attribute with the given name and value.
func New(name string, v Value) *Attribute {
	return &Attribute{Name: name, Value: v}
}

// Type returns the attribute's type tag, or "" if it has no value.
func (a *Attribute) Type() string {
	if a.Value == nil {
		return ""
	}
	return a.Value.TypeName()
}

// valuePtr constrains P to a pointer to T that implements Value, so that
// Lookup and Put can work with plain value types such as Box2i.
type valuePtr[T any] interface {
	*T
	Value
}

// Lookup returns the value of the named attribute when it exists and
// holds kind T.
//
//	dw, ok := attr.Lookup[attr.Box2i](h, "dataWindow")
func Lookup[T any, P valuePtr[T]](h *Header, name string) (T, bool) {
	var zero T
	a := h.Get(name)
	if a == nil {
		return zero, false
	}
	p, ok := a.Value.(P)
	if !ok || p == nil {
		return zero, false
	}
	return *p, true
}

// Clone returns a deep copy of v made by writing its body and reading it
// into a new value of the same kind. v must be a non-nil pointer.
func Clone(v Value) (Value, error) {
	if o, ok := v.(*Opaque); ok {
		return &Opaque{Type: o.Type, Data: bytes.Clone(o.Data)}, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return nil, fmt.Errorf("%w: cannot clone %T", ErrInvalidAttribute, v)
	}

	const version = DefaultVersion | FlagLongNames
	w := xdr.NewBufferWriter(64)
	if err := v.WriteValueTo(w, version); err != nil {
		return nil, err
	}
	out := reflect.New(rv.Type().Elem()).Interface().(Value)
	if err := out.ReadValueFrom(xdr.NewReader(w.Bytes()), len(w.Bytes()), version); err != nil {
		return nil, err
	}
	return out, nil
}

// Put stores v under name, replacing any existing attribute.
func Put[T any, P valuePtr[T]](h *Header, name string, v T) {
	h.Set(New(name, P(&v)))
}
