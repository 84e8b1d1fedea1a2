// Package netcode implements the wire codec primitives of the Minecraft
// Java Edition protocol: VarInt/VarLong, length-prefixed strings and
// identifiers, big-endian primitives, UUIDs, and the Optional/Vec framing
// combinators packets are built from.
//
// Every decode function in this package shares one contract: on short
// input it returns ErrIncomplete without having consumed anything the
// caller can observe, so a connection can stash the bytes it has and wait
// for more without losing its place. Any other failure is a MalformedError
// and is fatal for the connection that produced it.
package netcode

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned by decoders when the supplied buffer does not
// yet contain a full value. Callers must retry once more bytes arrive;
// the buffer's read cursor must not be advanced when this is returned.
var ErrIncomplete = errors.New("netcode: incomplete")

// MalformedError reports a value that can never become valid no matter how
// many more bytes arrive: a bad VarInt, an overlong string, invalid UTF-8.
// It is always fatal for the connection.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("netcode: malformed: %s", e.Reason)
}

// Malformed builds a MalformedError with the given reason.
func Malformed(reason string) error {
	return &MalformedError{Reason: reason}
}

// Malformedf builds a MalformedError with a formatted reason.
func Malformedf(format string, args ...any) error {
	return &MalformedError{Reason: fmt.Sprintf(format, args...)}
}

// IsIncomplete reports whether err is (or wraps) ErrIncomplete.
func IsIncomplete(err error) bool {
	return errors.Is(err, ErrIncomplete)
}

// IsMalformed reports whether err is (or wraps) a *MalformedError.
func IsMalformed(err error) bool {
	var m *MalformedError
	return errors.As(err, &m)
}
