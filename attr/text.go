package attr

// String is an attribute holding 8-bit character data. The body is the
// raw bytes with no length prefix and no terminator; the length comes
// from the attribute's framing.
type String string

func (*String) TypeName() string { return AttrTypeString }

// WriteValueTo writes the characters as a single block.
func (s *String) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteBytes([]byte(*s))
}

// ReadValueFrom reads exactly size bytes.
func (s *String) ReadValueFrom(r Decoder, size int, _ Version) error {
	b, err := r.ReadBytes(size)
	if err != nil {
		return err
	}
	*s = String(b)
	return nil
}

// StringVector is a list of strings, each stored as an int32 length
// followed by its bytes. The list runs to the end of the body.
type StringVector []string

func (*StringVector) TypeName() string { return AttrTypeStringVector }

func (sv *StringVector) WriteValueTo(w Encoder, _ Version) error {
	for _, s := range *sv {
		if err := w.WriteInt32(int32(len(s))); err != nil {
			return err
		}
		if err := w.WriteBytes([]byte(s)); err != nil {
			return err
		}
	}
	return nil
}

func (sv *StringVector) ReadValueFrom(r Decoder, size int, _ Version) error {
	out := StringVector{}
	for read := 0; read < size; {
		if size-read < 4 {
			return malformed(AttrTypeStringVector, size, "%d trailing bytes", size-read)
		}
		n, err := r.ReadInt32()
		if err != nil {
			return err
		}
		read += 4
		if n < 0 || int(n) > size-read {
			return malformed(AttrTypeStringVector, size, "element length %d out of range", n)
		}
		b, err := r.ReadBytes(int(n))
		if err != nil {
			return err
		}
		read += int(n)
		out = append(out, string(b))
	}
	*sv = out
	return nil
}

// FloatVector is a list of float32 values filling the whole body.
type FloatVector []float32

func (*FloatVector) TypeName() string { return AttrTypeFloatVector }

func (fv *FloatVector) WriteValueTo(w Encoder, _ Version) error {
	return writeFloat32s(w, (*fv)...)
}

func (fv *FloatVector) ReadValueFrom(r Decoder, size int, _ Version) error {
	if size%4 != 0 {
		return malformed(AttrTypeFloatVector, size, "size is not a multiple of 4")
	}
	out := make(FloatVector, size/4)
	for i := range out {
		if err := readFloat32s(r, &out[i]); err != nil {
			return err
		}
	}
	*fv = out
	return nil
}

// Bytes is the "bytes" kind: an arbitrary blob with a type hint naming
// its content. The body is the uint32 hint length, the hint and then the
// data, which runs to the end of the body.
type Bytes struct {
	TypeHint string
	Data     []byte
}

func (*Bytes) TypeName() string { return AttrTypeBytes }

func (b *Bytes) WriteValueTo(w Encoder, _ Version) error {
	if err := w.WriteUint32(uint32(len(b.TypeHint))); err != nil {
		return err
	}
	if err := w.WriteBytes([]byte(b.TypeHint)); err != nil {
		return err
	}
	return w.WriteBytes(b.Data)
}

func (b *Bytes) ReadValueFrom(r Decoder, size int, _ Version) error {
	if size < 4 {
		return malformed(AttrTypeBytes, size, "shorter than the 4-byte hint length")
	}
	n, err := r.ReadUint32()
	if err != nil {
		return err
	}
	if uint64(n) > uint64(size-4) {
		return malformed(AttrTypeBytes, size, "type hint of %d bytes overruns the body", n)
	}
	hint, err := r.ReadBytes(int(n))
	if err != nil {
		return err
	}
	data, err := r.ReadBytes(size - 4 - int(n))
	if err != nil {
		return err
	}
	*b = Bytes{TypeHint: string(hint), Data: data}
	return nil
}

// Preview is a small 8-bit RGBA thumbnail stored in the header.
type Preview struct {
	Width  uint32
	Height uint32
	Pixels []byte // RGBA, length Width*Height*4
}

func (*Preview) TypeName() string { return AttrTypePreview }

func (p *Preview) WriteValueTo(w Encoder, _ Version) error {
	if uint64(len(p.Pixels)) != uint64(p.Width)*uint64(p.Height)*4 {
		return ErrInvalidAttribute
	}
	if err := w.WriteUint32(p.Width); err != nil {
		return err
	}
	if err := w.WriteUint32(p.Height); err != nil {
		return err
	}
	return w.WriteBytes(p.Pixels)
}

func (p *Preview) ReadValueFrom(r Decoder, size int, _ Version) error {
	if size < 8 {
		return malformed(AttrTypePreview, size, "shorter than the 8-byte dimensions")
	}
	width, err := r.ReadUint32()
	if err != nil {
		return err
	}
	height, err := r.ReadUint32()
	if err != nil {
		return err
	}
	if uint64(width)*uint64(height)*4 != uint64(size-8) {
		return malformed(AttrTypePreview, size, "%dx%d pixels do not fill the body", width, height)
	}
	pixels, err := r.ReadBytes(size - 8)
	if err != nil {
		return err
	}
	*p = Preview{Width: width, Height: height, Pixels: pixels}
	return nil
}

// Opaque holds the raw body of an attribute whose type is not registered.
// It writes the body back unchanged under its original type tag, so
// unknown attributes survive a read-modify-write cycle.
type Opaque struct {
	Type string
	Data []byte
}

// TypeName returns the original type tag.
func (o *Opaque) TypeName() string { return o.Type }

func (o *Opaque) WriteValueTo(w Encoder, _ Version) error {
	return w.WriteBytes(o.Data)
}

func (o *Opaque) ReadValueFrom(r Decoder, size int, _ Version) error {
	b, err := r.ReadBytes(size)
	if err != nil {
		return err
	}
	o.Data = b
	return nil
}
