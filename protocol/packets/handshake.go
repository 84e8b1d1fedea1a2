// Package packets implements the minimum per-state packet coverage
// required by spec §4.3: Handshake, Status, Login, and Configuration
// decoders and handlers, plus a catch-all NotImplemented stub for Play.
//
// Grounded on the per-state packet struct files in
// `java_protocol/packets/` (c2s_handshake.go, c2s_status.go, c2s_login.go,
// c2s_configuration.go): one file per state, a struct per packet with an
// ID() method, decoded against the netcode primitives. The teacher encodes
// a Packet interface with Read/Write methods bound to its own buffer type;
// this repo's Decoder/Handler split (package protocol) plays the same role
// against the netcode/protocol.Conn contracts instead.
package packets

import (
	"github.com/go-mclib/mcserver/netcode"
	"github.com/go-mclib/mcserver/protocol"
)

// HandshakePacket is C2S Handshake, id 0x00, the only packet valid in
// StateHandshake.
type HandshakePacket struct {
	ProtocolVersion netcode.VarInt
	ServerAddress   netcode.String
	ServerPort      netcode.Uint16
	NextState       netcode.VarInt
}

func (HandshakePacket) ID() netcode.VarInt { return 0x00 }

func DecodeHandshake(payload []byte) (protocol.Packet, error) {
	protocolVersion, n, err := netcode.DecodeVarInt(payload)
	if err != nil {
		return nil, err
	}
	offset := n

	addr, n, err := netcode.DecodeString(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	port, n, err := netcode.DecodeUint16(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n

	nextState, n, err := netcode.DecodeVarInt(payload[offset:])
	if err != nil {
		return nil, err
	}
	offset += n
	_ = offset

	return HandshakePacket{
		ProtocolVersion: protocolVersion,
		ServerAddress:   addr,
		ServerPort:      port,
		NextState:       nextState,
	}, nil
}

// HandleHandshake records the client's announced protocol version and
// transitions the connection per next_state. next_state=3 (Transfer) is
// rejected as InvalidData; §9 leaves surfacing it to a host hook as an
// open policy decision, not exercised by this core.
func HandleHandshake(conn protocol.Conn, pkt protocol.Packet) error {
	h := pkt.(HandshakePacket)
	conn.SetClientProtocol(int32(h.ProtocolVersion))

	switch h.NextState {
	case 1:
		conn.SetState(protocol.StateStatus)
	case 2:
		conn.SetState(protocol.StateLogin)
	case 3:
		return protocol.Errorf(protocol.KindInvalidData, "next_state=3 (transfer) is not accepted")
	default:
		return protocol.Errorf(protocol.KindInvalidData, "next_state %d is not one of {1,2,3}", int32(h.NextState))
	}
	return nil
}

// Register adds every packet handled by this package to reg.
func Register(reg *protocol.Registry) {
	reg.Register(protocol.StateHandshake, 0x00, DecodeHandshake, HandleHandshake)

	reg.Register(protocol.StateStatus, 0x00, DecodeStatusRequest, HandleStatusRequest)
	reg.Register(protocol.StateStatus, 0x01, DecodePingRequest, HandlePingRequest)

	reg.Register(protocol.StateLogin, 0x00, DecodeLoginStart, HandleLoginStart)
	reg.Register(protocol.StateLogin, 0x03, DecodeLoginAcknowledged, HandleLoginAcknowledged)

	reg.Register(protocol.StateConfiguration, 0x00, DecodeClientInformation, HandleClientInformation)
	reg.Register(protocol.StateConfiguration, 0x02, DecodeFinishConfiguration, HandleFinishConfiguration)

	RegisterPlayNotImplemented(reg)
}
