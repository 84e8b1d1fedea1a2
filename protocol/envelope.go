package protocol

import (
	"errors"

	"github.com/go-mclib/mcserver/netcode"
)

// MaxPayloadLength is the largest a packet's (id + payload) may be: the
// biggest value a 3-byte VarInt can carry, per protocol convention.
const MaxPayloadLength = 1<<21 - 1

// PeekFrame reads the VarInt length prefix at the head of data without
// consuming anything from the caller: it reports how many bytes the length
// prefix itself occupies and how large the following payload (id + body)
// is. The caller decides, from those two numbers plus len(data), whether
// the full frame is buffered yet.
//
// Returns netcode.ErrIncomplete if data is too short to hold the length
// prefix. Returns a *Error{Kind: KindMalformed} if the decoded length is
// negative or exceeds MaxPayloadLength.
func PeekFrame(data []byte) (headerLen int, payloadLen int, err error) {
	length, n, err := netcode.DecodeVarInt(data)
	if err != nil {
		if errors.Is(err, netcode.ErrIncomplete) {
			return 0, 0, err
		}
		return 0, 0, NewError(KindMalformed, err)
	}
	if length < 0 || int(length) > MaxPayloadLength {
		return 0, 0, Errorf(KindMalformed, "packet length %d out of range [0, %d]", length, MaxPayloadLength)
	}
	return n, int(length), nil
}

// EncodeFrame serializes a packet id and its already-encoded body into a
// length-prefixed wire frame: VarInt(len(id)+len(body)) + id + body.
func EncodeFrame(id netcode.VarInt, body []byte) ([]byte, error) {
	w := netcode.NewWriter()
	if err := w.WriteVarInt(id); err != nil {
		return nil, err
	}
	w.WriteRaw(body)

	payload := w.Bytes()
	framed := netcode.NewWriter()
	if err := framed.WriteVarInt(netcode.VarInt(len(payload))); err != nil {
		return nil, err
	}
	framed.WriteRaw(payload)
	return framed.Bytes(), nil
}
