package netcode_test

import (
	"bytes"
	"testing"

	"github.com/go-mclib/mcserver/netcode"
)

// Test vectors from https://minecraft.wiki/w/Java_Edition_protocol/Packets#Type:VarInt_and_VarLong

func TestVarIntEncode(t *testing.T) {
	tests := []struct {
		name     string
		value    netcode.VarInt
		expected []byte
	}{
		{"zero", 0, []byte{0x00}},
		{"one", 1, []byte{0x01}},
		{"max single byte", 127, []byte{0x7f}},
		{"min two bytes", 128, []byte{0x80, 0x01}},
		{"255", 255, []byte{0xff, 0x01}},
		{"25565 (default MC port)", 25565, []byte{0xdd, 0xc7, 0x01}},
		{"max int32", 2147483647, []byte{0xff, 0xff, 0xff, 0xff, 0x07}},
		{"negative one", -1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
		{"min int32", -2147483648, []byte{0x80, 0x80, 0x80, 0x80, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := tt.value.Encode(&buf); err != nil {
				t.Fatalf("Encode() error = %v", err)
			}
			if !bytes.Equal(buf.Bytes(), tt.expected) {
				t.Errorf("Encode() = %v, want %v", buf.Bytes(), tt.expected)
			}
			if buf.Len() != tt.value.Len() {
				t.Errorf("Len() = %d, want %d", tt.value.Len(), buf.Len())
			}
		})
	}
}

func TestVarIntDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		expected netcode.VarInt
		consumed int
	}{
		{"zero", []byte{0x00}, 0, 1},
		{"min two bytes", []byte{0x80, 0x01}, 128, 2},
		{"25565", []byte{0xdd, 0xc7, 0x01}, 25565, 3},
		{"max int32", []byte{0xff, 0xff, 0xff, 0xff, 0x07}, 2147483647, 5},
		{"negative one", []byte{0xff, 0xff, 0xff, 0xff, 0x0f}, -1, 5},
		{"trailing garbage ignored", []byte{0x01, 0xAA, 0xBB}, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, n, err := netcode.DecodeVarInt(tt.input)
			if err != nil {
				t.Fatalf("DecodeVarInt() error = %v", err)
			}
			if got != tt.expected {
				t.Errorf("DecodeVarInt() = %v, want %v", got, tt.expected)
			}
			if n != tt.consumed {
				t.Errorf("consumed = %d, want %d", n, tt.consumed)
			}
		})
	}
}

func TestVarIntDecodeIncomplete(t *testing.T) {
	// A continuation byte with nothing following must report Incomplete,
	// never Malformed - more bytes might still arrive.
	_, _, err := netcode.DecodeVarInt([]byte{0x80})
	if !netcode.IsIncomplete(err) {
		t.Fatalf("expected ErrIncomplete, got %v", err)
	}

	_, _, err = netcode.DecodeVarInt(nil)
	if !netcode.IsIncomplete(err) {
		t.Fatalf("expected ErrIncomplete on empty input, got %v", err)
	}
}

func TestVarIntDecodeMalformedTooLong(t *testing.T) {
	// Five continuation bytes with no terminator can never be a valid
	// i32 VarInt regardless of how many more bytes arrive.
	_, _, err := netcode.DecodeVarInt([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff})
	if !netcode.IsMalformed(err) {
		t.Fatalf("expected MalformedError, got %v", err)
	}
}

func TestVarIntRoundTrip(t *testing.T) {
	values := []netcode.VarInt{0, 1, -1, 127, 128, 2097151, 2147483647, -2147483648, 25565}
	for _, v := range values {
		var buf bytes.Buffer
		if err := v.Encode(&buf); err != nil {
			t.Fatalf("Encode(%d) error = %v", v, err)
		}
		got, n, err := netcode.DecodeVarInt(buf.Bytes())
		if err != nil {
			t.Fatalf("DecodeVarInt(%d) error = %v", v, err)
		}
		if got != v || n != buf.Len() {
			t.Errorf("round trip mismatch for %d: got %d (n=%d)", v, got, n)
		}
	}
}

func TestVarLongRoundTrip(t *testing.T) {
	values := []netcode.VarLong{0, 1, -1, 9223372036854775807, -9223372036854775808}
	for _, v := range values {
		var buf bytes.Buffer
		if err := v.Encode(&buf); err != nil {
			t.Fatalf("Encode(%d) error = %v", v, err)
		}
		got, n, err := netcode.DecodeVarLong(buf.Bytes())
		if err != nil {
			t.Fatalf("DecodeVarLong(%d) error = %v", v, err)
		}
		if got != v || n != buf.Len() {
			t.Errorf("round trip mismatch for %d: got %d (n=%d)", v, got, n)
		}
	}
}
