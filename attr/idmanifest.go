package attr

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
)

// maxManifestSize bounds the inflated size of an ID manifest.
const maxManifestSize = 1 << 30

// IDManifest is the "idmanifest" kind: an object-ID manifest stored as a
// zlib stream. The body is the int32 inflated length followed by the
// compressed bytes, which run to the end of the body.
//
// The manifest text itself is opaque here; Compress and Decompress convert
// between the stored form and the raw manifest bytes.
type IDManifest struct {
	UncompressedSize int32
	Data             []byte
}

// CompressIDManifest deflates raw into a manifest value.
func CompressIDManifest(raw []byte) (*IDManifest, error) {
	if len(raw) > maxManifestSize {
		return nil, fmt.Errorf("%w: manifest of %d bytes is too large", ErrInvalidAttribute, len(raw))
	}
	var buf bytes.Buffer
	zw, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(raw); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return &IDManifest{UncompressedSize: int32(len(raw)), Data: buf.Bytes()}, nil
}

// Decompress inflates the manifest and checks its length against
// UncompressedSize.
func (m *IDManifest) Decompress() ([]byte, error) {
	if m.UncompressedSize < 0 {
		return nil, fmt.Errorf("%w: negative manifest size %d", ErrInvalidAttribute, m.UncompressedSize)
	}
	if m.UncompressedSize > maxManifestSize {
		return nil, fmt.Errorf("%w: manifest of %d bytes is too large", ErrInvalidAttribute, m.UncompressedSize)
	}
	zr, err := zlib.NewReader(bytes.NewReader(m.Data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAttribute, err)
	}
	defer zr.Close()

	// Read one byte past the declared size so an oversized stream is caught
	// without inflating all of it.
	raw, err := io.ReadAll(io.LimitReader(zr, int64(m.UncompressedSize)+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAttribute, err)
	}
	if len(raw) != int(m.UncompressedSize) {
		return nil, fmt.Errorf("%w: manifest inflated to %d bytes, header says %d",
			ErrInvalidAttribute, len(raw), m.UncompressedSize)
	}
	return raw, nil
}

func (*IDManifest) TypeName() string { return AttrTypeIDManifest }

func (m *IDManifest) WriteValueTo(w Encoder, _ Version) error {
	if err := w.WriteInt32(m.UncompressedSize); err != nil {
		return err
	}
	return w.WriteBytes(m.Data)
}

func (m *IDManifest) ReadValueFrom(r Decoder, size int, _ Version) error {
	if size < 4 {
		return malformed(AttrTypeIDManifest, size, "shorter than the 4-byte length")
	}
	n, err := r.ReadInt32()
	if err != nil {
		return err
	}
	data, err := r.ReadBytes(size - 4)
	if err != nil {
		return err
	}
	*m = IDManifest{UncompressedSize: n, Data: data}
	return nil
}
