// Package xdr provides little-endian binary encoding and decoding utilities
// for reading and writing OpenEXR header attributes.
//
// OpenEXR uses little-endian byte order for all multi-byte values. Fields are
// written back to back with no padding. Every reader and writer in this
// package tracks its position so that callers framing variable-length data
// can verify exactly how many bytes a value consumed.
package xdr

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShortBuffer is returned when a read cannot complete because the
	// input ends early. It wraps io.ErrUnexpectedEOF.
	ErrShortBuffer = fmt.Errorf("xdr: buffer too short: %w", io.ErrUnexpectedEOF)

	// ErrNegativeSize is returned when a size parameter is negative.
	ErrNegativeSize = errors.New("xdr: negative size")

	// ErrStringTooLong is returned when a null-terminated string exceeds the
	// caller's length limit before a terminator is found.
	ErrStringTooLong = errors.New("xdr: string too long")
)

// ByteOrder is the byte order used by OpenEXR files.
var ByteOrder = binary.LittleEndian

// Decoder is the read side shared by Reader and StreamReader.
type Decoder interface {
	// Pos returns the number of bytes consumed so far.
	Pos() int64
	Skip(n int) error
	ReadByte() (byte, error)
	ReadBytes(n int) ([]byte, error)
	ReadBytesInto(dst []byte) error
	ReadUint8() (uint8, error)
	ReadInt8() (int8, error)
	ReadUint16() (uint16, error)
	ReadInt16() (int16, error)
	ReadUint32() (uint32, error)
	ReadInt32() (int32, error)
	ReadUint64() (uint64, error)
	ReadInt64() (int64, error)
	ReadFloat32() (float32, error)
	ReadFloat64() (float64, error)
	// ReadString reads a null-terminated string of at most max bytes,
	// excluding the terminator.
	ReadString(max int) (string, error)
}

// Encoder is the write side shared by BufferWriter and StreamWriter.
type Encoder interface {
	// Pos returns the number of bytes written so far.
	Pos() int64
	WriteByte(b byte) error
	WriteBytes(b []byte) error
	WriteUint8(v uint8) error
	WriteInt8(v int8) error
	WriteUint16(v uint16) error
	WriteInt16(v int16) error
	WriteUint32(v uint32) error
	WriteInt32(v int32) error
	WriteUint64(v uint64) error
	WriteInt64(v int64) error
	WriteFloat32(v float32) error
	WriteFloat64(v float64) error
	// WriteString writes s followed by a null terminator.
	WriteString(s string) error
}

var (
	_ Decoder = (*Reader)(nil)
	_ Decoder = (*StreamReader)(nil)
	_ Encoder = (*BufferWriter)(nil)
	_ Encoder = (*StreamWriter)(nil)
)
