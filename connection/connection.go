// Package connection implements the per-connection state machine: reading
// raw bytes off a socket, framing packets out of the accumulator, and
// dispatching them through a protocol.Registry.
//
// Grounded on `java_protocol/conn.go` (a thin net.Conn wrapper) and
// `java_protocol/tcp_client.go`'s read loop, both client-side; this
// repo inverts the direction into a server-side accept-side connection
// that owns a state field and drives it forward as packets arrive.
package connection

import (
	"context"
	"errors"
	"io"
	"net"

	"github.com/hashicorp/go-hclog"

	"github.com/go-mclib/mcserver/eventbus"
	"github.com/go-mclib/mcserver/netcode"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/status"
)

// Deps are the shared, cross-connection collaborators a Connection needs.
// They are constructed once by the server loop and handed to every
// accepted connection.
type Deps struct {
	Logger         hclog.Logger
	Registry       *protocol.Registry
	Bus            *eventbus.Bus
	StatusTemplate *status.Snapshot
	ServerProtocol int32
}

// Connection is exclusively owned by the goroutine running Run. It owns
// its socket, its read accumulator, and its two outbound scratch write
// buffers (packet body and length-prefixed frame).
type Connection struct {
	socket net.Conn
	logger hclog.Logger

	registry       *protocol.Registry
	bus            *eventbus.Bus
	statusTemplate *status.Snapshot
	serverProtocol int32

	shutdown <-chan struct{}
	ctx      context.Context
	cancel   context.CancelFunc

	state          protocol.State
	clientProtocol int32
	identityName   string
	identityUUID   netcode.UUID
	identitySet    bool
	metadata       map[string]any

	accumulator []byte

	bodyBuf  *netcode.Writer
	frameBuf *netcode.Writer
}

// New constructs a Connection around an already-accepted socket. shutdown
// is closed once to broadcast server shutdown to every live connection.
func New(socket net.Conn, shutdown <-chan struct{}, deps Deps) *Connection {
	ctx, cancel := context.WithCancel(context.Background())
	logger := deps.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Connection{
		socket:         socket,
		logger:         logger.Named(socket.RemoteAddr().String()),
		registry:       deps.Registry,
		bus:            deps.Bus,
		statusTemplate: deps.StatusTemplate,
		serverProtocol: deps.ServerProtocol,
		shutdown:       shutdown,
		ctx:            ctx,
		cancel:         cancel,
		state:          protocol.StateHandshake,
		metadata:       make(map[string]any),
		bodyBuf:        netcode.NewWriter(),
		frameBuf:       netcode.NewWriter(),
	}
}

// --- protocol.Conn ---

func (c *Connection) State() protocol.State     { return c.state }
func (c *Connection) SetState(s protocol.State) { c.state = s }

func (c *Connection) ClientProtocol() int32     { return c.clientProtocol }
func (c *Connection) SetClientProtocol(v int32) { c.clientProtocol = v }

func (c *Connection) ServerProtocol() int32 { return c.serverProtocol }

func (c *Connection) Identity() (string, netcode.UUID, bool) {
	return c.identityName, c.identityUUID, c.identitySet
}

func (c *Connection) SetIdentity(name string, id netcode.UUID) {
	c.identityName, c.identityUUID, c.identitySet = name, id, true
}

func (c *Connection) Bus() *eventbus.Bus { return c.bus }

func (c *Connection) StatusTemplate() *status.Snapshot { return c.statusTemplate }

func (c *Connection) SetMetadata(key string, value any) { c.metadata[key] = value }

func (c *Connection) Metadata(key string) (any, bool) {
	v, ok := c.metadata[key]
	return v, ok
}

func (c *Connection) Context() context.Context { return c.ctx }

var _ protocol.Conn = (*Connection)(nil)

// SendPacket frames id+body with the two-buffer scheme described by the
// connection state machine: the body buffer holds id+payload, the frame
// buffer holds the VarInt length prefix followed by the body. Both are
// cleared (not reallocated) between sends.
func (c *Connection) SendPacket(id netcode.VarInt, body []byte) error {
	c.bodyBuf.Reset()
	if err := c.bodyBuf.WriteVarInt(id); err != nil {
		return err
	}
	c.bodyBuf.WriteRaw(body)

	c.frameBuf.Reset()
	if err := c.frameBuf.WriteVarInt(netcode.VarInt(c.bodyBuf.Len())); err != nil {
		return err
	}
	c.frameBuf.WriteRaw(c.bodyBuf.Bytes())

	_, err := c.socket.Write(c.frameBuf.Bytes())
	return err
}

// Close tears down the socket. Safe to call more than once.
func (c *Connection) Close() error {
	c.cancel()
	return c.socket.Close()
}

type readResult struct {
	data []byte
	err  error
}

// Run drives the connection until EOF, a fatal protocol error, or
// shutdown. It never returns an error: all failures are logged and the
// connection is closed, matching the server loop's guarantee that one
// connection's failure never affects another.
func (c *Connection) Run() {
	defer c.Close()
	c.logger.Debug("connection accepted")

	reads := make(chan readResult)
	go c.readLoop(reads)

	for {
		select {
		case <-c.shutdown:
			c.logger.Debug("connection closing: shutdown")
			return
		case res, ok := <-reads:
			if !ok {
				return
			}
			if res.err != nil {
				if errors.Is(res.err, io.EOF) {
					c.logger.Debug("connection closed by peer")
				} else {
					c.logger.Error("read failed", "error", res.err)
				}
				return
			}
			c.accumulator = append(c.accumulator, res.data...)
			if !c.drainFrames() {
				return
			}
		}
	}
}

func (c *Connection) readLoop(out chan<- readResult) {
	defer close(out)
	buf := make([]byte, 4096)
	for {
		n, err := c.socket.Read(buf)
		chunk := append([]byte(nil), buf[:n]...)
		select {
		case out <- readResult{data: chunk, err: err}:
		case <-c.shutdown:
			return
		}
		if err != nil {
			return
		}
	}
}

// drainFrames repeatedly peels complete frames off the accumulator and
// dispatches them. It returns false if a fatal error closed the
// connection, true if it is waiting for more bytes.
func (c *Connection) drainFrames() bool {
	for {
		headerLen, payloadLen, err := protocol.PeekFrame(c.accumulator)
		if err != nil {
			if errors.Is(err, netcode.ErrIncomplete) {
				return true
			}
			c.logTerminal(err)
			return false
		}

		total := headerLen + payloadLen
		if len(c.accumulator) < total {
			c.reserve(total)
			return true
		}

		frame := c.accumulator[headerLen:total]
		c.accumulator = c.accumulator[total:]

		if err := c.dispatchFrame(frame); err != nil {
			c.logTerminal(err)
			return false
		}
	}
}

// reserve grows the accumulator's backing array to hold size bytes
// without repeated small reallocations on subsequent reads.
func (c *Connection) reserve(size int) {
	if cap(c.accumulator) >= size {
		return
	}
	grown := make([]byte, len(c.accumulator), size)
	copy(grown, c.accumulator)
	c.accumulator = grown
}

func (c *Connection) dispatchFrame(frame []byte) error {
	id, n, err := netcode.DecodeVarInt(frame)
	if err != nil {
		return protocol.NewError(protocol.KindMalformed, err)
	}
	state := c.state
	return c.registry.Dispatch(c, state, id, frame[n:])
}

// logTerminal logs a dispatch failure at the severity its Kind warrants.
// Only KindIo on EOF is silent; every other fatal kind is logged, per the
// error policy table.
func (c *Connection) logTerminal(err error) {
	var perr *protocol.Error
	if errors.As(err, &perr) {
		switch perr.Kind {
		case protocol.KindIo:
			if errors.Is(perr.Err, io.EOF) {
				return
			}
			c.logger.Error("io error", "error", perr.Err)
		case protocol.KindVersionMismatch:
			c.logger.Info("closing connection: version mismatch", "error", perr.Err)
		default:
			c.logger.Warn("closing connection", "kind", perr.Kind.String(), "error", perr.Err)
		}
		return
	}
	c.logger.Error("closing connection: unclassified error", "error", err)
}
