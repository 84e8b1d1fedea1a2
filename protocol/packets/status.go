package packets

import (
	"github.com/go-mclib/mcserver/eventbus"
	"github.com/go-mclib/mcserver/netcode"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/status"
)

// StatusRequestPacket is C2S StatusRequest, id 0x00, carrying no fields.
type StatusRequestPacket struct{}

func (StatusRequestPacket) ID() netcode.VarInt { return 0x00 }

func DecodeStatusRequest(payload []byte) (protocol.Packet, error) {
	return StatusRequestPacket{}, nil
}

// HandleStatusRequest builds a status snapshot from the server's template,
// gives the event bus a chance to mutate it via ServerListPingEvent, then
// replies with a StatusResponse carrying the rendered JSON.
func HandleStatusRequest(conn protocol.Conn, pkt protocol.Packet) error {
	snap := conn.StatusTemplate().Clone()
	snap.Protocol = conn.ServerProtocol()
	snap.DescriptionProtocol = conn.ClientProtocol()

	ev := &status.ServerListPingEvent{Snapshot: snap}
	if err := eventbus.Emit(conn.Bus(), conn.Context(), ev); err != nil {
		return protocol.NewError(protocol.KindIo, err)
	}

	body, err := snap.Build()
	if err != nil {
		return protocol.NewError(protocol.KindIo, err)
	}

	w := netcode.NewWriter()
	if err := w.WriteString(netcode.String(body)); err != nil {
		return protocol.NewError(protocol.KindIo, err)
	}
	return conn.SendPacket(0x00, w.Bytes())
}

// PingRequestPacket is C2S PingRequest, id 0x01.
type PingRequestPacket struct {
	Payload netcode.Int64
}

func (PingRequestPacket) ID() netcode.VarInt { return 0x01 }

func DecodePingRequest(payload []byte) (protocol.Packet, error) {
	v, _, err := netcode.DecodeInt64(payload)
	if err != nil {
		return nil, err
	}
	return PingRequestPacket{Payload: v}, nil
}

// HandlePingRequest echoes the ping payload back as PingResponse.
func HandlePingRequest(conn protocol.Conn, pkt protocol.Packet) error {
	p := pkt.(PingRequestPacket)
	w := netcode.NewWriter()
	if err := w.WriteInt64(p.Payload); err != nil {
		return protocol.NewError(protocol.KindIo, err)
	}
	return conn.SendPacket(0x01, w.Bytes())
}
