package protocol_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-mclib/mcserver/eventbus"
	"github.com/go-mclib/mcserver/netcode"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/status"
)

func TestPeekFrameIncomplete(t *testing.T) {
	_, _, err := protocol.PeekFrame(nil)
	if !errors.Is(err, netcode.ErrIncomplete) {
		t.Fatalf("err = %v, want ErrIncomplete", err)
	}
}

func TestPeekFrameRejectsOverlongLength(t *testing.T) {
	var buf bytes.Buffer
	netcode.VarInt(protocol.MaxPayloadLength + 1).Encode(&buf)

	_, _, err := protocol.PeekFrame(buf.Bytes())
	var perr *protocol.Error
	if !errors.As(err, &perr) || perr.Kind != protocol.KindMalformed {
		t.Fatalf("err = %v, want Malformed", err)
	}
}

func TestPeekFrameReportsHeaderAndPayloadLength(t *testing.T) {
	var buf bytes.Buffer
	netcode.VarInt(5).Encode(&buf)
	buf.Write([]byte{1, 2, 3, 4, 5})

	headerLen, payloadLen, err := protocol.PeekFrame(buf.Bytes())
	if err != nil {
		t.Fatalf("PeekFrame: %v", err)
	}
	if headerLen != 1 || payloadLen != 5 {
		t.Fatalf("headerLen=%d payloadLen=%d", headerLen, payloadLen)
	}
}

func TestEncodeFrameRoundTripsWithPeekFrame(t *testing.T) {
	body := []byte{0xAA, 0xBB, 0xCC}
	framed, err := protocol.EncodeFrame(netcode.VarInt(0x01), body)
	if err != nil {
		t.Fatalf("EncodeFrame: %v", err)
	}

	headerLen, payloadLen, err := protocol.PeekFrame(framed)
	if err != nil {
		t.Fatalf("PeekFrame: %v", err)
	}
	payload := framed[headerLen : headerLen+payloadLen]

	id, n, err := netcode.DecodeVarInt(payload)
	if err != nil {
		t.Fatalf("DecodeVarInt: %v", err)
	}
	if id != 0x01 {
		t.Fatalf("id = %d", id)
	}
	if !bytes.Equal(payload[n:], body) {
		t.Fatalf("body = %v, want %v", payload[n:], body)
	}
}

type stubConn struct {
	state    protocol.State
	metadata map[string]any
}

func (s *stubConn) State() protocol.State                   { return s.state }
func (s *stubConn) SetState(st protocol.State)               { s.state = st }
func (s *stubConn) ClientProtocol() int32                   { return 0 }
func (s *stubConn) SetClientProtocol(int32)                 {}
func (s *stubConn) ServerProtocol() int32                   { return 0 }
func (s *stubConn) Identity() (string, netcode.UUID, bool)  { return "", netcode.NilUUID, false }
func (s *stubConn) SetIdentity(string, netcode.UUID)        {}
func (s *stubConn) SendPacket(netcode.VarInt, []byte) error { return nil }
func (s *stubConn) Bus() *eventbus.Bus                      { return eventbus.New() }
func (s *stubConn) Context() context.Context                { return context.Background() }
func (s *stubConn) StatusTemplate() *status.Snapshot        { return status.New() }

func (s *stubConn) SetMetadata(key string, value any) {
	if s.metadata == nil {
		s.metadata = make(map[string]any)
	}
	s.metadata[key] = value
}

func (s *stubConn) Metadata(key string) (any, bool) {
	v, ok := s.metadata[key]
	return v, ok
}

var _ protocol.Conn = (*stubConn)(nil)

func TestDispatchUnknownPacket(t *testing.T) {
	reg := protocol.NewRegistry()
	err := reg.Dispatch(&stubConn{}, protocol.StateStatus, netcode.VarInt(0x7F), nil)
	var perr *protocol.Error
	if !errors.As(err, &perr) || perr.Kind != protocol.KindUnknownPacket {
		t.Fatalf("err = %v, want UnknownPacket", err)
	}
}

func TestDispatchRunsRegisteredHandler(t *testing.T) {
	reg := protocol.NewRegistry()
	ran := false
	reg.Register(protocol.StateStatus, netcode.VarInt(0x00),
		func(payload []byte) (protocol.Packet, error) { return statusRequestStub{}, nil },
		func(conn protocol.Conn, pkt protocol.Packet) error { ran = true; return nil })

	if err := reg.Dispatch(&stubConn{}, protocol.StateStatus, netcode.VarInt(0x00), nil); err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !ran {
		t.Fatalf("handler did not run")
	}
}

type statusRequestStub struct{}

func (statusRequestStub) ID() netcode.VarInt { return 0x00 }
