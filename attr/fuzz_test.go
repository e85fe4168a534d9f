package attr

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mrjoshuak/go-exrattr/internal/xdr"
)

func FuzzReadHeader(f *testing.F) {
	w := xdr.NewBufferWriter(256)
	if err := WriteHeader(w, NewScanlineHeader(16, 16), nil); err != nil {
		f.Fatal(err)
	}
	f.Add(w.Bytes())
	f.Add([]byte{0})
	f.Add([]byte{'a', 0, 'b', 0, 0xff, 0xff, 0xff, 0xff})
	f.Add([]byte("x\x00chlist\x00\x03\x00\x00\x00R\x00\x01"))

	f.Fuzz(func(t *testing.T, data []byte) {
		h, err := ReadHeader(xdr.NewReader(data), &ReadOptions{KeepUnknown: true, MaxAttributeSize: 1 << 16})
		if err != nil {
			var me *MalformedError
			var se *StreamError
			if !errors.As(err, &me) && !errors.As(err, &se) {
				t.Fatalf("unclassified error: %v", err)
			}
			return
		}

		// Whatever parsed must survive a write and read back identically.
		out := xdr.NewBufferWriter(len(data))
		if err := WriteHeader(out, h, nil); err != nil {
			return
		}
		h2, err := ReadHeader(xdr.NewReader(out.Bytes()), &ReadOptions{KeepUnknown: true, MaxAttributeSize: 1 << 16})
		if err != nil {
			t.Fatalf("re-read failed: %v", err)
		}
		out2 := xdr.NewBufferWriter(out.Len())
		if err := WriteHeader(out2, h2, nil); err != nil {
			t.Fatalf("re-write failed: %v", err)
		}
		if !bytes.Equal(out.Bytes(), out2.Bytes()) {
			t.Fatal("header bytes changed after a second round trip")
		}
	})
}

func FuzzReadFileHeaders(f *testing.F) {
	var buf bytes.Buffer
	if err := WriteFileHeaders(&buf, &FileHeaders{Headers: []*Header{NewScanlineHeader(4, 4)}}); err != nil {
		f.Fatal(err)
	}
	f.Add(buf.Bytes())
	f.Add([]byte{0x76, 0x2f, 0x31, 0x01, 2, 0x10, 0, 0, 0})

	f.Fuzz(func(t *testing.T, data []byte) {
		_, _ = ReadFileHeaders(bytes.NewReader(data), &ReadOptions{MaxAttributeSize: 1 << 16})
	})
}
