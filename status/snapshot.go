// Package status builds the JSON payload returned for a status/list-ping
// request: version, player counts and sample, MOTD, and the optional
// favicon/secure-chat fields.
//
// Grounded on spec §4.6; no teacher or pack file builds this exact shape,
// so the builder style (pointer-receiver methods mutating in place and
// returning the receiver for chaining) follows the value-type-with-builder
// idiom used for packet structs throughout
// `java_protocol/packets/s2c_status.go`.
package status

import (
	"github.com/go-mclib/mcserver/eventbus"
	"github.com/go-mclib/mcserver/text"
)

// Sample is one entry in the status response's player sample list.
type Sample struct {
	Name string
	UUID string
}

// Snapshot is the mutable set of fields a status response is built from.
// Zero value has no version, no players, and an empty description; callers
// should set at least VersionName/Protocol/Description before Build.
type Snapshot struct {
	VersionName string
	Protocol    int32

	// DescriptionProtocol gates the MOTD's hex-vs-legacy color rendering. It
	// is the connecting client's announced protocol, not Protocol above
	// (the server's own advertised version): a pre-1.16 client must never
	// receive hex colors it can't parse, regardless of what protocol this
	// server is running.
	DescriptionProtocol int32

	MaxPlayers    int
	OnlinePlayers int
	Sample        []Sample

	Description text.Component

	Favicon            string // base64 PNG data URI; empty means omit
	EnforcesSecureChat *bool  // nil means omit
}

// New returns an empty Snapshot ready for the With* builder methods.
func New() *Snapshot {
	return &Snapshot{}
}

func (s *Snapshot) WithVersion(name string, protocol int32) *Snapshot {
	s.VersionName = name
	s.Protocol = protocol
	return s
}

func (s *Snapshot) WithPlayers(max, online int) *Snapshot {
	s.MaxPlayers = max
	s.OnlinePlayers = online
	return s
}

func (s *Snapshot) WithSample(sample []Sample) *Snapshot {
	s.Sample = sample
	return s
}

func (s *Snapshot) WithDescription(description text.Component) *Snapshot {
	s.Description = description
	return s
}

func (s *Snapshot) WithDescriptionProtocol(protocol int32) *Snapshot {
	s.DescriptionProtocol = protocol
	return s
}

func (s *Snapshot) WithFavicon(dataURI string) *Snapshot {
	s.Favicon = dataURI
	return s
}

func (s *Snapshot) WithEnforcesSecureChat(v bool) *Snapshot {
	s.EnforcesSecureChat = &v
	return s
}

// Clone returns a deep copy of s so handlers mutating the per-request
// snapshot never affect the server's shared baseline.
func (s *Snapshot) Clone() *Snapshot {
	clone := *s
	clone.Sample = append([]Sample(nil), s.Sample...)
	clone.Description = s.Description.Clone()
	if s.EnforcesSecureChat != nil {
		v := *s.EnforcesSecureChat
		clone.EnforcesSecureChat = &v
	}
	return &clone
}

// ServerListPingEvent is emitted on the event bus while building a status
// response. Handlers may mutate Snapshot in place; the response sent to
// the client reflects the snapshot's state after dispatch completes.
type ServerListPingEvent struct {
	eventbus.CancelableBase
	Snapshot *Snapshot
}
