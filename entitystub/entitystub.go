// Package entitystub names the serialization touchpoint a future entity
// simulation would need: a stable network id and a position, the two
// fields Play packets that reference entities would need to encode. No
// movement, AI, or physics is modeled here.
package entitystub

// ID is an entity's network identifier, as carried in entity-referencing
// Play packets.
type ID int32

// Position is a double-precision world-space coordinate.
type Position struct {
	X, Y, Z float64
}

// Entity is the minimal surface a future Play implementation would
// serialize: identity and position. Everything else (AI, inventory,
// attributes) is out of scope.
type Entity interface {
	EntityID() ID
	Position() Position
}
