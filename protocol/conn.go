package protocol

import (
	"context"

	"github.com/go-mclib/mcserver/eventbus"
	"github.com/go-mclib/mcserver/netcode"
	"github.com/go-mclib/mcserver/status"
)

// Conn is the mutable surface a packet handler needs from the connection
// that received it. The concrete implementation lives in package
// connection; this interface exists so protocol/packets can be written
// and tested without importing connection, avoiding an import cycle
// (connection imports protocol to drive dispatch).
type Conn interface {
	// State returns the connection's current protocol state.
	State() State
	// SetState transitions the connection. Observed on the next packet
	// read; the packet currently being handled keeps running under the
	// old state.
	SetState(State)

	// ClientProtocol returns the protocol version the client announced
	// in its Handshake packet (0 before Handshake is processed).
	ClientProtocol() int32
	SetClientProtocol(int32)

	// ServerProtocol returns the protocol version this server advertises.
	ServerProtocol() int32

	// Identity returns the recorded player name/uuid, if LoginStart has
	// been handled.
	Identity() (name string, id netcode.UUID, ok bool)
	SetIdentity(name string, id netcode.UUID)

	// SendPacket frames and writes id+body to the client.
	SendPacket(id netcode.VarInt, body []byte) error

	// Bus returns the event bus shared across all connections.
	Bus() *eventbus.Bus

	// StatusTemplate returns the server's shared baseline status snapshot.
	// Handlers must Clone it before mutating per-request fields.
	StatusTemplate() *status.Snapshot

	// SetMetadata/Metadata let handlers stash per-connection values (such
	// as the Configuration state's ClientInformation) without protocol
	// needing to know their concrete type.
	SetMetadata(key string, value any)
	Metadata(key string) (any, bool)

	// Context returns the context threaded through this connection's
	// lifetime, canceled on shutdown.
	Context() context.Context
}
