package xdr

import "math"

// BufferWriter encodes little-endian values into a growing buffer.
// Its methods return an error only to satisfy Encoder; appending to
// memory never fails.
type BufferWriter struct {
	buf []byte
}

// NewBufferWriter creates a BufferWriter with an initial capacity.
func NewBufferWriter(capacity int) *BufferWriter {
	return &BufferWriter{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written.
func (w *BufferWriter) Len() int {
	return len(w.buf)
}

// Pos returns the number of bytes written.
func (w *BufferWriter) Pos() int64 {
	return int64(len(w.buf))
}

// Bytes returns the written data.
// The returned slice is valid until the next write operation.
func (w *BufferWriter) Bytes() []byte {
	return w.buf
}

// Reset clears the buffer, keeping its capacity.
func (w *BufferWriter) Reset() {
	w.buf = w.buf[:0]
}

// WriteByte writes a single byte.
func (w *BufferWriter) WriteByte(b byte) error {
	w.buf = append(w.buf, b)
	return nil
}

// WriteBytes writes a byte slice.
func (w *BufferWriter) WriteBytes(b []byte) error {
	w.buf = append(w.buf, b...)
	return nil
}

// WriteUint8 writes an unsigned 8-bit integer.
func (w *BufferWriter) WriteUint8(v uint8) error {
	return w.WriteByte(v)
}

// WriteInt8 writes a signed 8-bit integer.
func (w *BufferWriter) WriteInt8(v int8) error {
	return w.WriteByte(byte(v))
}

// WriteUint16 writes an unsigned 16-bit integer in little-endian order.
func (w *BufferWriter) WriteUint16(v uint16) error {
	w.buf = ByteOrder.AppendUint16(w.buf, v)
	return nil
}

// WriteInt16 writes a signed 16-bit integer in little-endian order.
func (w *BufferWriter) WriteInt16(v int16) error {
	return w.WriteUint16(uint16(v))
}

// WriteUint32 writes an unsigned 32-bit integer in little-endian order.
func (w *BufferWriter) WriteUint32(v uint32) error {
	w.buf = ByteOrder.AppendUint32(w.buf, v)
	return nil
}

// WriteInt32 writes a signed 32-bit integer in little-endian order.
func (w *BufferWriter) WriteInt32(v int32) error {
	return w.WriteUint32(uint32(v))
}

// WriteUint64 writes an unsigned 64-bit integer in little-endian order.
func (w *BufferWriter) WriteUint64(v uint64) error {
	w.buf = ByteOrder.AppendUint64(w.buf, v)
	return nil
}

// WriteInt64 writes a signed 64-bit integer in little-endian order.
func (w *BufferWriter) WriteInt64(v int64) error {
	return w.WriteUint64(uint64(v))
}

// WriteFloat32 writes a 32-bit IEEE 754 floating-point number.
func (w *BufferWriter) WriteFloat32(v float32) error {
	return w.WriteUint32(math.Float32bits(v))
}

// WriteFloat64 writes a 64-bit IEEE 754 floating-point number.
func (w *BufferWriter) WriteFloat64(v float64) error {
	return w.WriteUint64(math.Float64bits(v))
}

// WriteString writes a null-terminated string.
func (w *BufferWriter) WriteString(s string) error {
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
	return nil
}
