package netcode

import "bytes"

// Writer is a growable scratch buffer for assembling packet bytes before
// they are framed and flushed to a socket. Connections keep two Writers
// (packet body and length-prefixed frame) and Reset them between sends to
// avoid per-packet allocation.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

func (w *Writer) Reset() { w.buf.Reset() }

func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func (w *Writer) Len() int { return w.buf.Len() }

func (w *Writer) WriteRaw(p []byte) { w.buf.Write(p) }

func (w *Writer) WriteVarInt(v VarInt) error     { return v.Encode(&w.buf) }
func (w *Writer) WriteVarLong(v VarLong) error   { return v.Encode(&w.buf) }
func (w *Writer) WriteBool(v Boolean) error      { return v.Encode(&w.buf) }
func (w *Writer) WriteInt8(v Int8) error         { return v.Encode(&w.buf) }
func (w *Writer) WriteUint8(v Uint8) error       { return v.Encode(&w.buf) }
func (w *Writer) WriteInt16(v Int16) error       { return v.Encode(&w.buf) }
func (w *Writer) WriteUint16(v Uint16) error     { return v.Encode(&w.buf) }
func (w *Writer) WriteInt32(v Int32) error       { return v.Encode(&w.buf) }
func (w *Writer) WriteInt64(v Int64) error       { return v.Encode(&w.buf) }
func (w *Writer) WriteUint64(v Uint64) error     { return v.Encode(&w.buf) }
func (w *Writer) WriteFloat32(v Float32) error   { return v.Encode(&w.buf) }
func (w *Writer) WriteFloat64(v Float64) error   { return v.Encode(&w.buf) }
func (w *Writer) WriteString(v String) error     { return v.Encode(&w.buf) }
func (w *Writer) WriteIdentifier(v Identifier) error { return v.Encode(&w.buf) }
func (w *Writer) WriteUUID(v UUID) error         { return v.Encode(&w.buf) }
