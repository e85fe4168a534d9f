package attr

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/mrjoshuak/go-exrattr/internal/xdr"
)

// FileHeaders is the prologue of an OpenEXR file: the version field and
// one header per part.
type FileHeaders struct {
	Version Version
	Headers []*Header
}

// WireVersion returns the version field WriteFileHeaders emits. It adds
// FlagMultiPart for more than one part and FlagLongNames when any name or
// type tag is longer than ShortNameLength.
func (fh *FileHeaders) WireVersion() Version {
	v := fh.Version
	if v == 0 {
		v = DefaultVersion
	}
	if len(fh.Headers) > 1 {
		v |= FlagMultiPart
	}
	for _, h := range fh.Headers {
		for _, a := range h.attrs {
			if len(a.Name) > ShortNameLength || len(a.Type()) > ShortNameLength {
				v |= FlagLongNames
			}
		}
	}
	return v
}

// ReadFileHeaders reads the magic number, the version field and every
// part header from r. It stops after the last header, so r is left at the
// start of the offset tables.
//
// The version read from the file overrides opts.Version.
func ReadFileHeaders(r io.Reader, opts *ReadOptions) (*FileHeaders, error) {
	sr := xdr.NewStreamReader(r)

	var magic [4]byte
	if err := sr.ReadBytesInto(magic[:]); err != nil {
		if errors.Is(err, xdr.ErrShortBuffer) {
			return nil, ErrNotEXR
		}
		return nil, &StreamError{Op: "read", Err: err}
	}
	if !bytes.Equal(magic[:], MagicNumber) {
		return nil, ErrNotEXR
	}
	raw, err := sr.ReadUint32()
	if err != nil {
		return nil, &StreamError{Op: "read", Err: err}
	}
	version := Version(raw)
	if version.Number() != FormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version.Number())
	}

	o := opts.withDefaults()
	o.Version = version
	fh := &FileHeaders{Version: version}

	if !version.IsMultiPart() {
		h, err := ReadHeader(sr, &o)
		if err != nil {
			return nil, err
		}
		fh.Headers = []*Header{h}
		return fh, nil
	}

	// An empty header ends the part list.
	for {
		h, err := ReadHeader(sr, &o)
		if err != nil {
			return nil, fmt.Errorf("attr: part %d: %w", len(fh.Headers), err)
		}
		if h.Len() == 0 {
			break
		}
		fh.Headers = append(fh.Headers, h)
	}
	if len(fh.Headers) == 0 {
		return nil, &MalformedError{Reason: "multipart file has no parts"}
	}
	return fh, nil
}

// WriteFileHeaders writes the magic number, fh.WireVersion() and every
// header. A multipart file is closed with an extra null byte.
func WriteFileHeaders(w io.Writer, fh *FileHeaders) error {
	if len(fh.Headers) == 0 {
		return fmt.Errorf("%w: no headers", ErrInvalidAttribute)
	}
	version := fh.WireVersion()
	sw := xdr.NewStreamWriter(w)

	if err := sw.WriteBytes(MagicNumber); err != nil {
		return &StreamError{Op: "write", Err: err}
	}
	if err := sw.WriteUint32(uint32(version)); err != nil {
		return &StreamError{Op: "write", Err: err}
	}
	opts := &WriteOptions{Version: version}
	for i, h := range fh.Headers {
		if version.IsMultiPart() && h.Len() == 0 {
			return fmt.Errorf("%w: part %d is empty", ErrInvalidAttribute, i)
		}
		if err := WriteHeader(sw, h, opts); err != nil {
			return err
		}
	}
	if version.IsMultiPart() {
		if err := sw.WriteByte(0); err != nil {
			return &StreamError{Op: "write", Err: err}
		}
	}
	return nil
}
