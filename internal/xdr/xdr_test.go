package xdr

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"
)

func TestReaderBasic(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	r := NewReader(data)

	if r.Len() != 8 {
		t.Errorf("Len() = %d, want 8", r.Len())
	}
	if r.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", r.Pos())
	}

	b, err := r.ReadByte()
	if err != nil {
		t.Errorf("ReadByte() error = %v", err)
	}
	if b != 0x01 {
		t.Errorf("ReadByte() = %d, want 1", b)
	}
	if r.Pos() != 1 {
		t.Errorf("Pos() after ReadByte = %d, want 1", r.Pos())
	}

	r.Reset()
	if r.Pos() != 0 || r.Len() != 8 {
		t.Errorf("after Reset Pos=%d Len=%d, want 0 and 8", r.Pos(), r.Len())
	}
}

func TestReaderIntegers(t *testing.T) {
	data := []byte{
		0x34, 0x12, // uint16: 0x1234
		0x78, 0x56, 0x34, 0x12, // uint32: 0x12345678
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01, // uint64: 0x0123456789ABCDEF
	}
	r := NewReader(data)

	u16, err := r.ReadUint16()
	if err != nil {
		t.Fatalf("ReadUint16() error = %v", err)
	}
	if u16 != 0x1234 {
		t.Errorf("ReadUint16() = 0x%04X, want 0x1234", u16)
	}

	u32, err := r.ReadUint32()
	if err != nil {
		t.Fatalf("ReadUint32() error = %v", err)
	}
	if u32 != 0x12345678 {
		t.Errorf("ReadUint32() = 0x%08X, want 0x12345678", u32)
	}

	u64, err := r.ReadUint64()
	if err != nil {
		t.Fatalf("ReadUint64() error = %v", err)
	}
	if u64 != 0x0123456789ABCDEF {
		t.Errorf("ReadUint64() = 0x%016X, want 0x0123456789ABCDEF", u64)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestReaderSignedIntegers(t *testing.T) {
	data := []byte{
		0xFF,       // int8: -1
		0xFE, 0xFF, // int16: -2
		0xFD, 0xFF, 0xFF, 0xFF, // int32: -3
		0xFC, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, // int64: -4
	}
	r := NewReader(data)

	i8, _ := r.ReadInt8()
	if i8 != -1 {
		t.Errorf("ReadInt8() = %d, want -1", i8)
	}
	i16, _ := r.ReadInt16()
	if i16 != -2 {
		t.Errorf("ReadInt16() = %d, want -2", i16)
	}
	i32, _ := r.ReadInt32()
	if i32 != -3 {
		t.Errorf("ReadInt32() = %d, want -3", i32)
	}
	i64, _ := r.ReadInt64()
	if i64 != -4 {
		t.Errorf("ReadInt64() = %d, want -4", i64)
	}
}

func TestReaderFloats(t *testing.T) {
	buf := make([]byte, 12)
	ByteOrder.PutUint32(buf[0:4], math.Float32bits(3.14))
	ByteOrder.PutUint64(buf[4:12], math.Float64bits(2.71828))

	r := NewReader(buf)

	f32, err := r.ReadFloat32()
	if err != nil {
		t.Fatalf("ReadFloat32() error = %v", err)
	}
	if f32 != 3.14 {
		t.Errorf("ReadFloat32() = %v, want 3.14", f32)
	}

	f64, err := r.ReadFloat64()
	if err != nil {
		t.Fatalf("ReadFloat64() error = %v", err)
	}
	if f64 != 2.71828 {
		t.Errorf("ReadFloat64() = %v, want 2.71828", f64)
	}
}

func TestReaderString(t *testing.T) {
	r := NewReader([]byte("hello\x00world\x00\x00"))

	s, err := r.ReadString(31)
	if err != nil || s != "hello" {
		t.Fatalf("ReadString() = %q, %v, want hello", s, err)
	}
	s, err = r.ReadString(31)
	if err != nil || s != "world" {
		t.Fatalf("ReadString() = %q, %v, want world", s, err)
	}
	s, err = r.ReadString(31)
	if err != nil || s != "" {
		t.Fatalf("ReadString() = %q, %v, want empty", s, err)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestReaderStringLimit(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		max     int
		want    string
		wantErr error
	}{
		{"exactly max", "abcd\x00", 4, "abcd", nil},
		{"one over max", "abcde\x00", 4, "", ErrStringTooLong},
		{"unterminated", "abc", 31, "", ErrShortBuffer},
		{"empty input", "", 31, "", ErrShortBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader([]byte(tt.data))
			got, err := r.ReadString(tt.max)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ReadString() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ReadString() = %q, want %q", got, tt.want)
			}
			if err != nil && r.Pos() != 0 {
				t.Errorf("Pos() after failure = %d, want 0", r.Pos())
			}

			sr := NewStreamReader(bytes.NewReader([]byte(tt.data)))
			got, err = sr.ReadString(tt.max)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("StreamReader.ReadString() error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("StreamReader.ReadString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReaderBytes(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	r := NewReader(data)

	b, err := r.ReadBytes(3)
	if err != nil {
		t.Fatalf("ReadBytes() error = %v", err)
	}
	if !bytes.Equal(b, []byte{1, 2, 3}) {
		t.Errorf("ReadBytes() = %v, want [1 2 3]", b)
	}

	// The returned slice must not alias the input.
	b[0] = 99
	if data[0] != 1 {
		t.Error("ReadBytes() result aliases the input")
	}

	dst := make([]byte, 3)
	if err := r.ReadBytesInto(dst); err != nil {
		t.Fatalf("ReadBytesInto() error = %v", err)
	}
	if !bytes.Equal(dst, []byte{4, 5, 6}) {
		t.Errorf("ReadBytesInto() = %v, want [4 5 6]", dst)
	}
}

func TestReaderSub(t *testing.T) {
	r := NewReader([]byte{1, 2, 3, 4, 5})
	if err := r.Skip(1); err != nil {
		t.Fatal(err)
	}

	sub, err := r.Sub(3)
	if err != nil {
		t.Fatalf("Sub() error = %v", err)
	}
	if r.Pos() != 4 {
		t.Errorf("parent Pos() = %d, want 4", r.Pos())
	}
	if sub.Len() != 3 {
		t.Errorf("sub Len() = %d, want 3", sub.Len())
	}
	if _, err := sub.ReadUint32(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("sub ReadUint32() error = %v, want ErrShortBuffer", err)
	}
	if _, err := r.Sub(2); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Sub past end error = %v, want ErrShortBuffer", err)
	}
	if _, err := r.Sub(-1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("Sub(-1) error = %v, want ErrNegativeSize", err)
	}
}

func TestReaderErrors(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})

	if _, err := r.ReadUint32(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("ReadUint32 on short data: error = %v, want ErrShortBuffer", err)
	}
	if r.Pos() != 0 {
		t.Errorf("Pos() after failed read = %d, want 0", r.Pos())
	}
	if _, err := r.ReadBytes(-1); !errors.Is(err, ErrNegativeSize) {
		t.Errorf("ReadBytes(-1) error = %v, want ErrNegativeSize", err)
	}
	if err := r.Skip(4); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("Skip(4) error = %v, want ErrShortBuffer", err)
	}
	if !errors.Is(ErrShortBuffer, io.ErrUnexpectedEOF) {
		t.Error("ErrShortBuffer should wrap io.ErrUnexpectedEOF")
	}
}

func TestBufferWriter(t *testing.T) {
	w := NewBufferWriter(4)

	_ = w.WriteUint16(0x1234)
	_ = w.WriteUint32(0x12345678)
	_ = w.WriteInt32(-1)
	_ = w.WriteString("ab")

	want := []byte{
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xFF, 0xFF, 0xFF, 0xFF,
		'a', 'b', 0,
	}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("Bytes() = % x, want % x", w.Bytes(), want)
	}
	if w.Pos() != int64(len(want)) || w.Len() != len(want) {
		t.Errorf("Pos()=%d Len()=%d, want %d", w.Pos(), w.Len(), len(want))
	}

	w.Reset()
	if w.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", w.Len())
	}
}

func TestStreamReader(t *testing.T) {
	data := []byte{
		0x01,
		0x34, 0x12,
		0x78, 0x56, 0x34, 0x12,
		0xEF, 0xCD, 0xAB, 0x89, 0x67, 0x45, 0x23, 0x01,
	}
	r := NewStreamReader(bytes.NewReader(data))

	if b, err := r.ReadByte(); err != nil || b != 0x01 {
		t.Fatalf("ReadByte() = %d, %v", b, err)
	}
	if v, err := r.ReadUint16(); err != nil || v != 0x1234 {
		t.Fatalf("ReadUint16() = 0x%X, %v", v, err)
	}
	if v, err := r.ReadUint32(); err != nil || v != 0x12345678 {
		t.Fatalf("ReadUint32() = 0x%X, %v", v, err)
	}
	if v, err := r.ReadUint64(); err != nil || v != 0x0123456789ABCDEF {
		t.Fatalf("ReadUint64() = 0x%X, %v", v, err)
	}
	if r.Pos() != int64(len(data)) {
		t.Errorf("Pos() = %d, want %d", r.Pos(), len(data))
	}
	if _, err := r.ReadByte(); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("ReadByte() at EOF error = %v, want ErrShortBuffer", err)
	}
}

// onlyReader hides any Seek method of the wrapped reader.
type onlyReader struct{ r io.Reader }

func (o onlyReader) Read(p []byte) (int, error) { return o.r.Read(p) }

func TestStreamReaderSkip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}

	sources := map[string]func() io.Reader{
		"seeker":     func() io.Reader { return bytes.NewReader(data) },
		"sequential": func() io.Reader { return onlyReader{bytes.NewReader(data)} },
	}

	for name, src := range sources {
		t.Run(name, func(t *testing.T) {
			r := NewStreamReader(src())
			if err := r.Skip(5); err != nil {
				t.Fatalf("Skip(5) error = %v", err)
			}
			if r.Pos() != 5 {
				t.Errorf("Pos() = %d, want 5", r.Pos())
			}
			b, err := r.ReadByte()
			if err != nil || b != 6 {
				t.Fatalf("ReadByte() = %d, %v, want 6", b, err)
			}
			if err := r.Skip(3); !errors.Is(err, ErrShortBuffer) {
				t.Errorf("Skip past end error = %v, want ErrShortBuffer", err)
			}
			if err := r.Skip(-1); !errors.Is(err, ErrNegativeSize) {
				t.Errorf("Skip(-1) error = %v, want ErrNegativeSize", err)
			}
		})
	}
}

func TestStreamReaderSkipShortSeeker(t *testing.T) {
	src := bytes.NewReader([]byte{1, 2, 3, 4})
	r := NewStreamReader(src)
	if _, err := r.ReadByte(); err != nil {
		t.Fatal(err)
	}
	if err := r.Skip(10); !errors.Is(err, ErrShortBuffer) {
		t.Fatalf("Skip(10) error = %v, want ErrShortBuffer", err)
	}
	if r.Pos() != 1 {
		t.Errorf("Pos() = %d, want 1", r.Pos())
	}
	if off, _ := src.Seek(0, io.SeekCurrent); off != 1 {
		t.Errorf("source offset = %d, want 1", off)
	}
	b, err := r.ReadByte()
	if err != nil || b != 2 {
		t.Errorf("ReadByte() after failed Skip = %d, %v, want 2", b, err)
	}
}

type failWriter struct{ after int }

func (f *failWriter) Write(p []byte) (int, error) {
	if f.after <= 0 {
		return 0, errors.New("disk full")
	}
	f.after--
	return len(p), nil
}

func TestStreamWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewStreamWriter(&buf)

	_ = w.WriteUint8(0xAB)
	_ = w.WriteInt16(-2)
	_ = w.WriteUint32(0x12345678)
	_ = w.WriteFloat32(1.0)
	_ = w.WriteInt64(-4)
	_ = w.WriteString("x")

	want := []byte{
		0xAB,
		0xFE, 0xFF,
		0x78, 0x56, 0x34, 0x12,
		0x00, 0x00, 0x80, 0x3F,
		0xFC, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF,
		'x', 0,
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("written = % x, want % x", buf.Bytes(), want)
	}
	if w.Pos() != int64(len(want)) {
		t.Errorf("Pos() = %d, want %d", w.Pos(), len(want))
	}

	fw := NewStreamWriter(&failWriter{after: 1})
	if err := fw.WriteUint32(1); err != nil {
		t.Fatalf("first write error = %v", err)
	}
	if err := fw.WriteUint32(2); err == nil {
		t.Error("second write should fail")
	}
}

func TestRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	sw := NewStreamWriter(&buf)
	bw := NewBufferWriter(64)

	for _, w := range []Encoder{sw, bw} {
		_ = w.WriteInt8(-5)
		_ = w.WriteUint16(65535)
		_ = w.WriteInt32(math.MinInt32)
		_ = w.WriteUint64(math.MaxUint64)
		_ = w.WriteFloat32(float32(math.Inf(-1)))
		_ = w.WriteFloat64(math.Pi)
		_ = w.WriteBytes([]byte{9, 8, 7})
		_ = w.WriteString("name")
	}
	if !bytes.Equal(buf.Bytes(), bw.Bytes()) {
		t.Fatal("StreamWriter and BufferWriter output differ")
	}

	for _, r := range []Decoder{NewReader(bw.Bytes()), NewStreamReader(&buf)} {
		if v, _ := r.ReadInt8(); v != -5 {
			t.Errorf("ReadInt8() = %d", v)
		}
		if v, _ := r.ReadUint16(); v != 65535 {
			t.Errorf("ReadUint16() = %d", v)
		}
		if v, _ := r.ReadInt32(); v != math.MinInt32 {
			t.Errorf("ReadInt32() = %d", v)
		}
		if v, _ := r.ReadUint64(); v != math.MaxUint64 {
			t.Errorf("ReadUint64() = %d", v)
		}
		if v, _ := r.ReadFloat32(); !math.IsInf(float64(v), -1) {
			t.Errorf("ReadFloat32() = %v", v)
		}
		if v, _ := r.ReadFloat64(); v != math.Pi {
			t.Errorf("ReadFloat64() = %v", v)
		}
		if v, _ := r.ReadBytes(3); !bytes.Equal(v, []byte{9, 8, 7}) {
			t.Errorf("ReadBytes() = %v", v)
		}
		if v, _ := r.ReadString(255); v != "name" {
			t.Errorf("ReadString() = %q", v)
		}
		if r.Pos() != int64(bw.Len()) {
			t.Errorf("Pos() = %d, want %d", r.Pos(), bw.Len())
		}
	}
}

func BenchmarkReaderUint32(b *testing.B) {
	data := make([]byte, 4*1024)
	b.SetBytes(4)
	r := NewReader(data)
	for i := 0; i < b.N; i++ {
		if r.Len() < 4 {
			r.Reset()
		}
		_, _ = r.ReadUint32()
	}
}

func BenchmarkBufferWriterUint32(b *testing.B) {
	w := NewBufferWriter(4 * 1024)
	b.SetBytes(4)
	for i := 0; i < b.N; i++ {
		if w.Len() >= 4*1024 {
			w.Reset()
		}
		_ = w.WriteUint32(uint32(i))
	}
}
