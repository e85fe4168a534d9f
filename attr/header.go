package attr

import (
	"errors"
	"fmt"
	"math"

	"github.com/mrjoshuak/go-exrattr/internal/xdr"
)

// DefaultMaxAttributeSize is the largest body ReadHeader accepts unless
// ReadOptions says otherwise.
const DefaultMaxAttributeSize = 64 << 20

// Header is an ordered collection of uniquely named attributes.
//
// A Header is not safe for concurrent use. Share it between goroutines
// only after all writes to it have completed.
type Header struct {
	attrs []*Attribute
	index map[string]int
}

// NewHeader creates an empty header.
func NewHeader() *Header {
	return &Header{index: make(map[string]int)}
}

// Len returns the number of attributes.
func (h *Header) Len() int {
	return len(h.attrs)
}

// Set adds an attribute, replacing any attribute with the same name in
// place.
func (h *Header) Set(a *Attribute) {
	if i, ok := h.index[a.Name]; ok {
		h.attrs[i] = a
		return
	}
	h.index[a.Name] = len(h.attrs)
	h.attrs = append(h.attrs, a)
}

// Get returns the named attribute, or nil.
func (h *Header) Get(name string) *Attribute {
	if i, ok := h.index[name]; ok {
		return h.attrs[i]
	}
	return nil
}

// Has reports whether the named attribute exists.
func (h *Header) Has(name string) bool {
	_, ok := h.index[name]
	return ok
}

// Remove deletes the named attribute, if present.
func (h *Header) Remove(name string) {
	i, ok := h.index[name]
	if !ok {
		return
	}
	h.attrs = append(h.attrs[:i], h.attrs[i+1:]...)
	delete(h.index, name)
	for j := i; j < len(h.attrs); j++ {
		h.index[h.attrs[j].Name] = j
	}
}

// Attributes returns the attributes in insertion order.
func (h *Header) Attributes() []*Attribute {
	return append([]*Attribute(nil), h.attrs...)
}

// ReadOptions configures ReadHeader. A nil *ReadOptions uses the defaults.
type ReadOptions struct {
	// Registry selects decoders by type tag. Nil means StandardRegistry().
	Registry *Registry

	// Version is the file's version field, passed to every decoder.
	// Zero means DefaultVersion.
	Version Version

	// KeepUnknown stores attributes of unregistered types as *Opaque
	// instead of skipping them.
	KeepUnknown bool

	// MaxAttributeSize rejects larger bodies as malformed.
	// Zero means DefaultMaxAttributeSize.
	MaxAttributeSize int

	// OnSkip, if set, is called for every attribute whose type is not
	// registered, before its body is skipped or kept.
	OnSkip func(name, typeName string, size int)
}

func (o *ReadOptions) withDefaults() ReadOptions {
	var out ReadOptions
	if o != nil {
		out = *o
	}
	if out.Registry == nil {
		out.Registry = StandardRegistry()
	}
	if out.Version == 0 {
		out.Version = DefaultVersion
	}
	if out.MaxAttributeSize <= 0 {
		out.MaxAttributeSize = DefaultMaxAttributeSize
	}
	return out
}

// WriteOptions configures WriteHeader. A nil *WriteOptions uses the defaults.
type WriteOptions struct {
	// Version is passed to every encoder and limits name lengths.
	// Zero means DefaultVersion.
	Version Version
}

func (o *WriteOptions) version() Version {
	if o == nil || o.Version == 0 {
		return DefaultVersion
	}
	return o.Version
}

// ReadHeader reads attributes until the terminating empty name.
//
// For each attribute it reads the name, the type tag and the body size.
// A registered type is decoded from exactly size bytes; a decoder that
// leaves bytes unread yields a *MalformedError. An unregistered type is
// skipped, or kept as *Opaque when opts.KeepUnknown is set, so unknown
// kinds are never fatal.
//
// Failures of r are returned as *StreamError.
func ReadHeader(r Decoder, opts *ReadOptions) (*Header, error) {
	o := opts.withDefaults()
	h := NewHeader()
	maxName := o.Version.MaxNameLength()

	for {
		name, err := r.ReadString(maxName)
		if err != nil {
			return nil, nameError(err, "", "attribute name", maxName)
		}
		if name == "" {
			return h, nil
		}
		a, err := readAttribute(r, name, &o)
		if err != nil {
			return nil, err
		}
		if a == nil {
			continue
		}
		if prev := h.Get(name); prev != nil && prev.Type() != a.Type() {
			return nil, &MalformedError{Name: name, Type: a.Type(),
				Reason: fmt.Sprintf("already defined with type %s", prev.Type())}
		}
		h.Set(a)
	}
}

// readAttribute reads one attribute after its name. It returns nil for a
// skipped attribute.
func readAttribute(r Decoder, name string, o *ReadOptions) (*Attribute, error) {
	maxName := o.Version.MaxNameLength()
	typeName, err := r.ReadString(maxName)
	if err != nil {
		return nil, nameError(err, name, "type name", maxName)
	}
	if typeName == "" {
		return nil, &MalformedError{Name: name, Reason: "empty type name"}
	}
	size32, err := r.ReadUint32()
	if err != nil {
		return nil, &StreamError{Op: "read", Name: name, Err: err}
	}
	if int64(size32) > int64(o.MaxAttributeSize) {
		return nil, &MalformedError{Name: name, Type: typeName, Size: int(min(size32, math.MaxInt32)),
			Reason: fmt.Sprintf("exceeds limit of %d bytes", o.MaxAttributeSize)}
	}
	size := int(size32)

	v, known := o.Registry.New(typeName)
	if !known {
		if o.OnSkip != nil {
			o.OnSkip(name, typeName, size)
		}
		if !o.KeepUnknown {
			if err := r.Skip(size); err != nil {
				return nil, &StreamError{Op: "read", Name: name, Err: err}
			}
			return nil, nil
		}
		v = &Opaque{Type: typeName}
	}

	body, err := r.ReadBytes(size)
	if err != nil {
		return nil, &StreamError{Op: "read", Name: name, Err: err}
	}
	br := xdr.NewReader(body)
	if err := v.ReadValueFrom(br, size, o.Version); err != nil {
		return nil, decodeError(err, name, typeName, size)
	}
	if br.Len() != 0 {
		return nil, &MalformedError{Name: name, Type: typeName, Size: size,
			Reason: fmt.Sprintf("decoder consumed %d of %d bytes", br.Pos(), size)}
	}
	return &Attribute{Name: name, Value: v}, nil
}

// nameError classifies a failed null-terminated read.
func nameError(err error, name, what string, max int) error {
	if errors.Is(err, xdr.ErrStringTooLong) {
		return &MalformedError{Name: name, Reason: fmt.Sprintf("%s longer than %d bytes", what, max)}
	}
	return &StreamError{Op: "read", Name: name, Err: err}
}

// decodeError attaches the attribute name to a decoder failure. The body
// was already in memory, so running out of bytes means the declared size
// is too small for the content.
func decodeError(err error, name, typeName string, size int) error {
	var me *MalformedError
	if errors.As(err, &me) {
		me.Name = name
		return me
	}
	switch {
	case errors.Is(err, xdr.ErrShortBuffer):
		return &MalformedError{Name: name, Type: typeName, Size: size, Reason: "body ends early"}
	case errors.Is(err, xdr.ErrStringTooLong), errors.Is(err, xdr.ErrNegativeSize):
		return &MalformedError{Name: name, Type: typeName, Size: size, Reason: err.Error()}
	}
	return fmt.Errorf("attr: decode %s: %w", name, err)
}

// WriteHeader writes every attribute of h in order, then the terminating
// null byte. Each body is encoded into a scratch buffer first so the
// recorded size always equals the bytes that follow it.
//
// Failures of w are returned as *StreamError.
func WriteHeader(w Encoder, h *Header, opts *WriteOptions) error {
	version := opts.version()
	scratch := xdr.NewBufferWriter(256)
	for _, a := range h.attrs {
		scratch.Reset()
		if err := writeAttribute(w, scratch, a, version); err != nil {
			return err
		}
	}
	if err := w.WriteByte(0); err != nil {
		return &StreamError{Op: "write", Err: err}
	}
	return nil
}

func writeAttribute(w Encoder, scratch *xdr.BufferWriter, a *Attribute, version Version) error {
	if a.Value == nil {
		return fmt.Errorf("%w: %s has no value", ErrInvalidAttribute, a.Name)
	}
	typeName := a.Value.TypeName()
	if err := checkName(a.Name, typeName, version); err != nil {
		return err
	}
	if err := a.Value.WriteValueTo(scratch, version); err != nil {
		return fmt.Errorf("attr: encode %s: %w", a.Name, err)
	}
	if int64(scratch.Len()) > math.MaxInt32 {
		return fmt.Errorf("%w: %s body of %d bytes is too large", ErrInvalidAttribute, a.Name, scratch.Len())
	}

	err := w.WriteString(a.Name)
	if err == nil {
		err = w.WriteString(typeName)
	}
	if err == nil {
		err = w.WriteUint32(uint32(scratch.Len()))
	}
	if err == nil {
		err = w.WriteBytes(scratch.Bytes())
	}
	if err != nil {
		return &StreamError{Op: "write", Name: a.Name, Err: err}
	}
	return nil
}

// checkName validates an attribute name and type tag for version.
func checkName(name, typeName string, version Version) error {
	max := version.MaxNameLength()
	switch {
	case name == "":
		return fmt.Errorf("%w: empty attribute name", ErrInvalidAttribute)
	case typeName == "":
		return fmt.Errorf("%w: %s has an empty type name", ErrInvalidAttribute, name)
	case len(name) > max:
		return fmt.Errorf("%w: name %q longer than %d bytes", ErrInvalidAttribute, name, max)
	case len(typeName) > max:
		return fmt.Errorf("%w: type %q longer than %d bytes", ErrInvalidAttribute, typeName, max)
	}
	for i := 0; i < len(name); i++ {
		if name[i] == 0 {
			return fmt.Errorf("%w: name %q contains a null byte", ErrInvalidAttribute, name)
		}
	}
	for i := 0; i < len(typeName); i++ {
		if typeName[i] == 0 {
			return fmt.Errorf("%w: type %q contains a null byte", ErrInvalidAttribute, typeName)
		}
	}
	return nil
}
