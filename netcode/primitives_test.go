package netcode_test

import (
	"bytes"
	"testing"

	"github.com/go-mclib/mcserver/netcode"
)

func TestPrimitiveRoundTrips(t *testing.T) {
	var buf bytes.Buffer

	_ = netcode.Boolean(true).Encode(&buf)
	b, n, err := netcode.DecodeBoolean(buf.Bytes())
	if err != nil || !bool(b) || n != 1 {
		t.Fatalf("Boolean round trip failed: %v %v %d", b, err, n)
	}

	buf.Reset()
	_ = netcode.Int64(-123456789).Encode(&buf)
	i64, n, err := netcode.DecodeInt64(buf.Bytes())
	if err != nil || i64 != -123456789 || n != 8 {
		t.Fatalf("Int64 round trip failed: %v %v %d", i64, err, n)
	}

	buf.Reset()
	_ = netcode.Uint16(25565).Encode(&buf)
	port, n, err := netcode.DecodeUint16(buf.Bytes())
	if err != nil || port != 25565 || n != 2 {
		t.Fatalf("Uint16 round trip failed: %v %v %d", port, err, n)
	}
	if !bytes.Equal(buf.Bytes(), []byte{0x63, 0xDD}) {
		t.Fatalf("Uint16 not big-endian: %x", buf.Bytes())
	}

	buf.Reset()
	_ = netcode.Float64(3.14159).Encode(&buf)
	f, n, err := netcode.DecodeFloat64(buf.Bytes())
	if err != nil || float64(f) != 3.14159 || n != 8 {
		t.Fatalf("Float64 round trip failed: %v %v %d", f, err, n)
	}
}

func TestPrimitiveDecodeIncomplete(t *testing.T) {
	if _, _, err := netcode.DecodeInt32([]byte{0x01, 0x02}); !netcode.IsIncomplete(err) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
	if _, _, err := netcode.DecodeBoolean(nil); !netcode.IsIncomplete(err) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}
}
