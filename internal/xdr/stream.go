package xdr

import (
	"errors"
	"io"
	"math"
)

// StreamReader wraps an io.Reader for little-endian binary reading.
// Reads are unbuffered at this layer; wrap r in a bufio.Reader if needed.
type StreamReader struct {
	r   io.Reader
	pos int64
	buf [8]byte
}

// NewStreamReader creates a StreamReader from an io.Reader.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: r}
}

// Pos returns the number of bytes consumed from the underlying reader.
func (r *StreamReader) Pos() int64 {
	return r.pos
}

// fill reads exactly len(dst) bytes. A stream that ends early yields
// ErrShortBuffer; other errors are returned as they are.
func (r *StreamReader) fill(dst []byte) error {
	n, err := io.ReadFull(r.r, dst)
	r.pos += int64(n)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrShortBuffer
	}
	return err
}

// Skip discards n bytes, seeking when the underlying reader supports it.
func (r *StreamReader) Skip(n int) error {
	if n < 0 {
		return ErrNegativeSize
	}
	if n == 0 {
		return nil
	}
	if s, ok := r.r.(io.Seeker); ok {
		cur, err := s.Seek(0, io.SeekCurrent)
		if err == nil {
			end, err := s.Seek(0, io.SeekEnd)
			if err != nil {
				return err
			}
			if end-cur < int64(n) {
				// Leave the source where pos says it is.
				if _, err := s.Seek(cur, io.SeekStart); err != nil {
					return err
				}
				return ErrShortBuffer
			}
			if _, err := s.Seek(cur+int64(n), io.SeekStart); err != nil {
				return err
			}
			r.pos += int64(n)
			return nil
		}
	}
	copied, err := io.CopyN(io.Discard, r.r, int64(n))
	r.pos += copied
	if errors.Is(err, io.EOF) {
		return ErrShortBuffer
	}
	return err
}

// ReadByte reads a single byte.
func (r *StreamReader) ReadByte() (byte, error) {
	if err := r.fill(r.buf[:1]); err != nil {
		return 0, err
	}
	return r.buf[0], nil
}

// ReadBytes reads n bytes into a new slice.
func (r *StreamReader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, ErrNegativeSize
	}
	out := make([]byte, n)
	if err := r.fill(out); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadBytesInto fills dst from the stream.
func (r *StreamReader) ReadBytesInto(dst []byte) error {
	return r.fill(dst)
}

// ReadUint8 reads an unsigned 8-bit integer.
func (r *StreamReader) ReadUint8() (uint8, error) {
	return r.ReadByte()
}

// ReadInt8 reads a signed 8-bit integer.
func (r *StreamReader) ReadInt8() (int8, error) {
	b, err := r.ReadByte()
	return int8(b), err
}

// ReadUint16 reads an unsigned 16-bit integer in little-endian order.
func (r *StreamReader) ReadUint16() (uint16, error) {
	if err := r.fill(r.buf[:2]); err != nil {
		return 0, err
	}
	return ByteOrder.Uint16(r.buf[:2]), nil
}

// ReadInt16 reads a signed 16-bit integer in little-endian order.
func (r *StreamReader) ReadInt16() (int16, error) {
	v, err := r.ReadUint16()
	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit integer in little-endian order.
func (r *StreamReader) ReadUint32() (uint32, error) {
	if err := r.fill(r.buf[:4]); err != nil {
		return 0, err
	}
	return ByteOrder.Uint32(r.buf[:4]), nil
}

// ReadInt32 reads a signed 32-bit integer in little-endian order.
func (r *StreamReader) ReadInt32() (int32, error) {
	v, err := r.ReadUint32()
	return int32(v), err
}

// ReadUint64 reads an unsigned 64-bit integer in little-endian order.
func (r *StreamReader) ReadUint64() (uint64, error) {
	if err := r.fill(r.buf[:8]); err != nil {
		return 0, err
	}
	return ByteOrder.Uint64(r.buf[:8]), nil
}

// ReadInt64 reads a signed 64-bit integer in little-endian order.
func (r *StreamReader) ReadInt64() (int64, error) {
	v, err := r.ReadUint64()
	return int64(v), err
}

// ReadFloat32 reads a 32-bit IEEE 754 floating-point number.
func (r *StreamReader) ReadFloat32() (float32, error) {
	v, err := r.ReadUint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadFloat64 reads a 64-bit IEEE 754 floating-point number.
func (r *StreamReader) ReadFloat64() (float64, error) {
	v, err := r.ReadUint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadString reads a null-terminated string of at most max bytes.
// Bytes are consumed one at a time so the stream is never read past
// the terminator.
func (r *StreamReader) ReadString(max int) (string, error) {
	var s []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == 0 {
			return string(s), nil
		}
		if len(s) >= max {
			return "", ErrStringTooLong
		}
		s = append(s, b)
	}
}

// StreamWriter wraps an io.Writer for little-endian binary writing.
type StreamWriter struct {
	w   io.Writer
	pos int64
	buf [8]byte
}

// NewStreamWriter creates a StreamWriter from an io.Writer.
func NewStreamWriter(w io.Writer) *StreamWriter {
	return &StreamWriter{w: w}
}

// Pos returns the number of bytes written to the underlying writer.
func (w *StreamWriter) Pos() int64 {
	return w.pos
}

func (w *StreamWriter) put(b []byte) error {
	n, err := w.w.Write(b)
	w.pos += int64(n)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return err
}

// WriteByte writes a single byte.
func (w *StreamWriter) WriteByte(b byte) error {
	w.buf[0] = b
	return w.put(w.buf[:1])
}

// WriteBytes writes a byte slice.
func (w *StreamWriter) WriteBytes(b []byte) error {
	return w.put(b)
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *StreamWriter) WriteUint8(v uint8) error {
	return w.WriteByte(v)
}

// WriteInt8 writes a signed 8-bit integer.
func (w *StreamWriter) WriteInt8(v int8) error {
	return w.WriteByte(byte(v))
}

// WriteUint16 writes an unsigned 16-bit integer in little-endian order.
func (w *StreamWriter) WriteUint16(v uint16) error {
	ByteOrder.PutUint16(w.buf[:2], v)
	return w.put(w.buf[:2])
}

// WriteInt16 writes a signed 16-bit integer in little-endian order.
func (w *StreamWriter) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v))
}

// WriteUint32 writes an unsigned 32-bit integer in little-endian order.
func (w *StreamWriter) WriteUint32(v uint32) error {
	ByteOrder.PutUint32(w.buf[:4], v)
	return w.put(w.buf[:4])
}

// WriteInt32 writes a signed 32-bit integer in little-endian order.
func (w *StreamWriter) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteUint64 writes an unsigned 64-bit integer in little-endian order.
func (w *StreamWriter) WriteUint64(v uint64) error {
	ByteOrder.PutUint64(w.buf[:8], v)
	return w.put(w.buf[:8])
}

// WriteInt64 writes a signed 64-bit integer in little-endian order.
func (w *StreamWriter) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v))
}

// WriteFloat32 writes a 32-bit IEEE 754 floating-point number.
func (w *StreamWriter) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes a 64-bit IEEE 754 floating-point number.
func (w *StreamWriter) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteString writes a null-terminated string.
func (w *StreamWriter) WriteString(s string) error {
	if err := w.put([]byte(s)); err != nil {
		return err
	}
	return w.WriteByte(0)
}
