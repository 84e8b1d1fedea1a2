// Package nbtstub exposes NBT encoding only through the interface the core
// needs: marshal a Go value into network-format NBT bytes and back. The
// codec itself is out of scope; this wraps the teacher's own NBT dependency
// so text-component encoding in 1.20.3+ protocols has somewhere to go
// without the core depending on the NBT wire format directly.
package nbtstub

import (
	"bytes"
	"fmt"

	"github.com/Tnze/go-mc/nbt"
)

// Marshal encodes v as network-format (unnamed root) NBT.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := nbt.NewEncoder(&buf)
	enc.NetworkFormat(true)
	if err := enc.Encode(v, ""); err != nil {
		return nil, fmt.Errorf("nbtstub: encode: %w", err)
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes network-format NBT bytes into dest, returning the
// number of bytes consumed.
func Unmarshal(data []byte, dest any) (int, error) {
	r := bytes.NewReader(data)
	dec := nbt.NewDecoder(r)
	dec.NetworkFormat(true)
	if _, err := dec.Decode(dest); err != nil {
		return 0, fmt.Errorf("nbtstub: decode: %w", err)
	}
	return len(data) - r.Len(), nil
}
