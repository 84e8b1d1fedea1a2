package packets

import (
	"github.com/go-mclib/mcserver/netcode"
	"github.com/go-mclib/mcserver/protocol"
)

// Play packet ids this core knows about but does not implement, kept as
// named constants (grounded on the teacher's exhaustive id catalogs in
// `java_protocol/packets/c2s_play.go`/`s2c_play.go`) so a reader can tell
// "known but unhandled" apart from "genuinely unknown". None are
// registered; every Play packet falls through to the NotImplemented
// handler below.
const (
	C2SKeepAlivePacketID netcode.VarInt = 0x14
	S2CKeepAlivePacketID netcode.VarInt = 0x26
)

// UnimplementedPlayPacket stands in for any Play-state packet; the core
// does not decode Play payloads.
type UnimplementedPlayPacket struct{}

func (UnimplementedPlayPacket) ID() netcode.VarInt { return -1 }

func decodePlayFallback(payload []byte) (protocol.Packet, error) {
	return UnimplementedPlayPacket{}, nil
}

func handlePlayFallback(conn protocol.Conn, pkt protocol.Packet) error {
	return protocol.Errorf(protocol.KindNotImplemented, "play state is not implemented by this core")
}

// RegisterPlayNotImplemented installs the Play-state fallback on reg.
func RegisterPlayNotImplemented(reg *protocol.Registry) {
	reg.RegisterFallback(protocol.StatePlay, decodePlayFallback, handlePlayFallback)
}
