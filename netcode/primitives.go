package netcode

import (
	"bytes"
	"encoding/binary"
	"math"
)

// Boolean is a single byte: 0x00 false, 0x01 true.
type Boolean bool

func (v Boolean) Encode(buf *bytes.Buffer) error {
	if v {
		buf.WriteByte(0x01)
	} else {
		buf.WriteByte(0x00)
	}
	return nil
}

func DecodeBoolean(data []byte) (Boolean, int, error) {
	if len(data) < 1 {
		return false, 0, ErrIncomplete
	}
	return data[0] != 0, 1, nil
}

// Int8 is a signed 8-bit integer.
type Int8 int8

func (v Int8) Encode(buf *bytes.Buffer) error { buf.WriteByte(byte(v)); return nil }

func DecodeInt8(data []byte) (Int8, int, error) {
	if len(data) < 1 {
		return 0, 0, ErrIncomplete
	}
	return Int8(data[0]), 1, nil
}

// Uint8 is an unsigned 8-bit integer.
type Uint8 uint8

func (v Uint8) Encode(buf *bytes.Buffer) error { buf.WriteByte(byte(v)); return nil }

func DecodeUint8(data []byte) (Uint8, int, error) {
	if len(data) < 1 {
		return 0, 0, ErrIncomplete
	}
	return Uint8(data[0]), 1, nil
}

// Int16 is a big-endian signed 16-bit integer.
type Int16 int16

func (v Int16) Encode(buf *bytes.Buffer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	buf.Write(b[:])
	return nil
}

func DecodeInt16(data []byte) (Int16, int, error) {
	if len(data) < 2 {
		return 0, 0, ErrIncomplete
	}
	return Int16(binary.BigEndian.Uint16(data)), 2, nil
}

// Uint16 is a big-endian unsigned 16-bit integer (used for the server port).
type Uint16 uint16

func (v Uint16) Encode(buf *bytes.Buffer) error {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], uint16(v))
	buf.Write(b[:])
	return nil
}

func DecodeUint16(data []byte) (Uint16, int, error) {
	if len(data) < 2 {
		return 0, 0, ErrIncomplete
	}
	return Uint16(binary.BigEndian.Uint16(data)), 2, nil
}

// Int32 is a big-endian signed 32-bit integer.
type Int32 int32

func (v Int32) Encode(buf *bytes.Buffer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(v))
	buf.Write(b[:])
	return nil
}

func DecodeInt32(data []byte) (Int32, int, error) {
	if len(data) < 4 {
		return 0, 0, ErrIncomplete
	}
	return Int32(binary.BigEndian.Uint32(data)), 4, nil
}

// Int64 is a big-endian signed 64-bit integer.
type Int64 int64

func (v Int64) Encode(buf *bytes.Buffer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
	return nil
}

func DecodeInt64(data []byte) (Int64, int, error) {
	if len(data) < 8 {
		return 0, 0, ErrIncomplete
	}
	return Int64(binary.BigEndian.Uint64(data)), 8, nil
}

// Uint64 is a big-endian unsigned 64-bit integer.
type Uint64 uint64

func (v Uint64) Encode(buf *bytes.Buffer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], uint64(v))
	buf.Write(b[:])
	return nil
}

func DecodeUint64(data []byte) (Uint64, int, error) {
	if len(data) < 8 {
		return 0, 0, ErrIncomplete
	}
	return Uint64(binary.BigEndian.Uint64(data)), 8, nil
}

// Float32 is a big-endian IEEE 754 single-precision float.
type Float32 float32

func (v Float32) Encode(buf *bytes.Buffer) error {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], math.Float32bits(float32(v)))
	buf.Write(b[:])
	return nil
}

func DecodeFloat32(data []byte) (Float32, int, error) {
	if len(data) < 4 {
		return 0, 0, ErrIncomplete
	}
	return Float32(math.Float32frombits(binary.BigEndian.Uint32(data))), 4, nil
}

// Float64 is a big-endian IEEE 754 double-precision float.
type Float64 float64

func (v Float64) Encode(buf *bytes.Buffer) error {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], math.Float64bits(float64(v)))
	buf.Write(b[:])
	return nil
}

func DecodeFloat64(data []byte) (Float64, int, error) {
	if len(data) < 8 {
		return 0, 0, ErrIncomplete
	}
	return Float64(math.Float64frombits(binary.BigEndian.Uint64(data))), 8, nil
}
