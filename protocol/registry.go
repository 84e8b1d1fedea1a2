package protocol

import (
	"github.com/go-mclib/mcserver/netcode"
)

// Packet is the minimal interface a decoded packet value must satisfy.
type Packet interface {
	ID() netcode.VarInt
}

// Decoder parses a packet's payload (the bytes after the packet id) into a
// typed Packet. A short payload returns netcode.ErrIncomplete; this should
// not happen in practice since the connection loop only dispatches once a
// full frame is buffered, but decoders still honor the contract.
type Decoder func(payload []byte) (Packet, error)

// Handler runs a decoded packet against a connection.
type Handler func(conn Conn, pkt Packet) error

type entry struct {
	decode Decoder
	handle Handler
}

// Registry is a per-state table of packet id -> decoder/handler, built
// once at startup and read concurrently by every connection thereafter.
type Registry struct {
	table    map[State]map[netcode.VarInt]entry
	fallback map[State]entry
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		table:    make(map[State]map[netcode.VarInt]entry),
		fallback: make(map[State]entry),
	}
}

// Register adds a decoder/handler pair for (state, id). Registering the
// same (state, id) twice overwrites the earlier entry.
func (r *Registry) Register(state State, id netcode.VarInt, decode Decoder, handle Handler) {
	entries, ok := r.table[state]
	if !ok {
		entries = make(map[netcode.VarInt]entry)
		r.table[state] = entries
	}
	entries[id] = entry{decode: decode, handle: handle}
}

// RegisterFallback registers a decoder/handler pair run for any id in
// state that has no specific entry. Used by Play, where every id is
// known-but-unimplemented rather than genuinely unknown.
func (r *Registry) RegisterFallback(state State, decode Decoder, handle Handler) {
	r.fallback[state] = entry{decode: decode, handle: handle}
}

// Dispatch decodes and handles a payload for (state, id). An id with no
// registered entry and no fallback fails with KindUnknownPacket.
func (r *Registry) Dispatch(conn Conn, state State, id netcode.VarInt, payload []byte) error {
	if entries, ok := r.table[state]; ok {
		if e, ok := entries[id]; ok {
			pkt, err := e.decode(payload)
			if err != nil {
				return err
			}
			return e.handle(conn, pkt)
		}
	}
	if fb, ok := r.fallback[state]; ok {
		pkt, err := fb.decode(payload)
		if err != nil {
			return err
		}
		return fb.handle(conn, pkt)
	}
	return Errorf(KindUnknownPacket, "unknown packet id 0x%02x in state %s", int32(id), state)
}
