package xdr

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

// FuzzReadString checks the null-terminated string readers against each
// other for every input and length limit.
func FuzzReadString(f *testing.F) {
	f.Add([]byte("hello\x00"), 31)
	f.Add([]byte("\x00"), 0)
	f.Add([]byte("test\x00more\x00"), 4)
	f.Add([]byte("toolong\x00"), 3)
	f.Add([]byte{}, 255)
	f.Add(bytes.Repeat([]byte{'A'}, 300), 255)

	f.Fuzz(func(t *testing.T, data []byte, limit int) {
		limit &= 0xffff
		r := NewReader(data)
		s, err := r.ReadString(limit)
		if err != nil {
			if !errors.Is(err, ErrStringTooLong) && !errors.Is(err, ErrShortBuffer) {
				t.Fatalf("unexpected error %v", err)
			}
			if r.Pos() != 0 {
				t.Errorf("failed ReadString moved position to %d", r.Pos())
			}
		} else {
			if len(s) > limit {
				t.Errorf("string of %d bytes exceeds limit %d", len(s), limit)
			}
			if bytes.IndexByte([]byte(s), 0) >= 0 {
				t.Errorf("string %q contains a null byte", s)
			}
			if r.Pos() != int64(len(s)+1) {
				t.Errorf("Pos() = %d, want %d", r.Pos(), len(s)+1)
			}
		}

		sr := NewStreamReader(bytes.NewReader(data))
		ss, serr := sr.ReadString(limit)
		if (err == nil) != (serr == nil) || ss != s {
			t.Errorf("stream reader gave (%q, %v), slice reader (%q, %v)", ss, serr, s, err)
		}
		if err != nil && !errors.Is(serr, err) {
			t.Errorf("stream error %v, slice error %v", serr, err)
		}
	})
}

// FuzzReaderInts reads every integer width from the same input.
func FuzzReaderInts(f *testing.F) {
	f.Add([]byte{0x00, 0x00, 0x00, 0x00})
	f.Add([]byte{0xff, 0xff, 0xff, 0xff})
	f.Add([]byte{0x00, 0x00, 0x00, 0x80})
	f.Add([]byte{1, 2, 3, 4, 5, 6, 7, 8})

	f.Fuzz(func(t *testing.T, data []byte) {
		r := NewReader(data)
		reads := []func() error{
			func() error { _, err := r.ReadInt8(); return err },
			func() error { _, err := r.ReadUint16(); return err },
			func() error { _, err := r.ReadInt16(); return err },
			func() error { _, err := r.ReadUint32(); return err },
			func() error { _, err := r.ReadInt32(); return err },
			func() error { _, err := r.ReadUint64(); return err },
			func() error { _, err := r.ReadInt64(); return err },
			func() error { _, err := r.ReadFloat32(); return err },
			func() error { _, err := r.ReadFloat64(); return err },
		}
		widths := []int{1, 2, 2, 4, 4, 8, 8, 4, 8}
		for i, read := range reads {
			r.Reset()
			err := read()
			if len(data) < widths[i] {
				if !errors.Is(err, io.ErrUnexpectedEOF) {
					t.Errorf("read %d of %d-byte input: err = %v", widths[i], len(data), err)
				}
				if r.Pos() != 0 {
					t.Errorf("short read moved position to %d", r.Pos())
				}
				continue
			}
			if err != nil || r.Pos() != int64(widths[i]) {
				t.Errorf("read %d bytes: Pos() = %d, err = %v", widths[i], r.Pos(), err)
			}
		}
	})
}

// FuzzReaderSkipSub checks Skip and Sub keep the position inside the input.
func FuzzReaderSkipSub(f *testing.F) {
	f.Add([]byte{1, 2, 3, 4}, 0, 2)
	f.Add([]byte{1, 2, 3, 4}, 4, 0)
	f.Add([]byte{1, 2, 3, 4}, -1, 10)
	f.Add([]byte{}, 0, 1)

	f.Fuzz(func(t *testing.T, data []byte, skip, sub int) {
		r := NewReader(data)
		if err := r.Skip(skip); err != nil {
			if r.Pos() != 0 {
				t.Errorf("failed Skip(%d) moved position to %d", skip, r.Pos())
			}
		} else if r.Pos() != int64(skip) {
			t.Errorf("Skip(%d): Pos() = %d", skip, r.Pos())
		}

		before, left := r.Pos(), r.Len()
		s, err := r.Sub(sub)
		if err != nil {
			if r.Pos() != before {
				t.Errorf("failed Sub(%d) moved position", sub)
			}
			return
		}
		if s.Len() != sub || r.Len() != left-sub {
			t.Errorf("Sub(%d): sub Len() = %d, parent Len() = %d of %d", sub, s.Len(), r.Len(), left)
		}
		if _, err := s.ReadBytes(sub + 1); err == nil {
			t.Error("sub-reader read past its bound")
		}
	})
}

// FuzzBufferWriterRoundTrip writes values with BufferWriter and reads them
// back with Reader.
func FuzzBufferWriterRoundTrip(f *testing.F) {
	f.Add(int32(0), uint32(0), float32(0), float64(0), "test")
	f.Add(int32(-1), uint32(0xffffffff), float32(1.5), float64(-2.5), "")
	f.Add(int32(math.MaxInt32), uint32(0), float32(math.NaN()), math.Inf(-1), "hello\x00world")

	f.Fuzz(func(t *testing.T, i32 int32, u32 uint32, f32 float32, f64 float64, str string) {
		str = string(bytes.ReplaceAll([]byte(str), []byte{0}, nil))

		w := NewBufferWriter(64)
		w.WriteInt32(i32)
		w.WriteUint32(u32)
		w.WriteFloat32(f32)
		w.WriteFloat64(f64)
		w.WriteString(str)
		if w.Pos() != int64(20+len(str)+1) {
			t.Fatalf("Pos() = %d, want %d", w.Pos(), 20+len(str)+1)
		}

		checkValues(t, NewReader(w.Bytes()), i32, u32, f32, f64, str)
	})
}

// FuzzStreamRoundTrip writes values with StreamWriter and reads them back
// with StreamReader, then checks both streams agree with the slice codecs.
func FuzzStreamRoundTrip(f *testing.F) {
	f.Add(int32(7), uint32(1), float32(-0.0), float64(1e300), "name", 3)
	f.Add(int32(-9), uint32(0x80000000), float32(math.Inf(1)), float64(0), "", 0)

	f.Fuzz(func(t *testing.T, i32 int32, u32 uint32, f32 float32, f64 float64, str string, skip int) {
		str = string(bytes.ReplaceAll([]byte(str), []byte{0}, nil))

		var buf bytes.Buffer
		sw := NewStreamWriter(&buf)
		sw.WriteInt32(i32)
		sw.WriteUint32(u32)
		sw.WriteFloat32(f32)
		sw.WriteFloat64(f64)
		sw.WriteString(str)

		bw := NewBufferWriter(64)
		bw.WriteInt32(i32)
		bw.WriteUint32(u32)
		bw.WriteFloat32(f32)
		bw.WriteFloat64(f64)
		bw.WriteString(str)
		if !bytes.Equal(buf.Bytes(), bw.Bytes()) || sw.Pos() != bw.Pos() {
			t.Fatalf("stream and buffer writers disagree")
		}

		data := buf.Bytes()
		checkValues(t, NewStreamReader(bytes.NewReader(data)), i32, u32, f32, f64, str)

		// Skip over a seeking source and over a plain reader.
		skip &= 0xffff
		for _, src := range []io.Reader{bytes.NewReader(data), io.MultiReader(bytes.NewReader(data))} {
			sr := NewStreamReader(src)
			err := sr.Skip(skip)
			if skip > len(data) {
				if !errors.Is(err, io.ErrUnexpectedEOF) {
					t.Errorf("Skip(%d) of %d bytes: err = %v", skip, len(data), err)
				}
				continue
			}
			if err != nil || sr.Pos() != int64(skip) {
				t.Errorf("Skip(%d): Pos() = %d, err = %v", skip, sr.Pos(), err)
			}
		}
	})
}

func checkValues(t *testing.T, r Decoder, i32 int32, u32 uint32, f32 float32, f64 float64, str string) {
	t.Helper()
	gi32, err := r.ReadInt32()
	if err != nil || gi32 != i32 {
		t.Errorf("ReadInt32() = %d, %v, want %d", gi32, err, i32)
	}
	gu32, err := r.ReadUint32()
	if err != nil || gu32 != u32 {
		t.Errorf("ReadUint32() = %d, %v, want %d", gu32, err, u32)
	}
	gf32, err := r.ReadFloat32()
	if err != nil || math.Float32bits(gf32) != math.Float32bits(f32) {
		t.Errorf("ReadFloat32() = %v, %v, want %v", gf32, err, f32)
	}
	gf64, err := r.ReadFloat64()
	if err != nil || math.Float64bits(gf64) != math.Float64bits(f64) {
		t.Errorf("ReadFloat64() = %v, %v, want %v", gf64, err, f64)
	}
	gs, err := r.ReadString(len(str))
	if err != nil || gs != str {
		t.Errorf("ReadString() = %q, %v, want %q", gs, err, str)
	}
}
