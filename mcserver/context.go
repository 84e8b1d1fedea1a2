package mcserver

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/go-mclib/mcserver/config"
	"github.com/go-mclib/mcserver/eventbus"
	"github.com/go-mclib/mcserver/status"
)

// ServerContext is the value threaded through lifecycle hooks. It carries
// no mutable state of its own beyond what the server already owns; hooks
// read from it, they do not extend it.
type ServerContext struct {
	context.Context

	Logger hclog.Logger
	Bus    *eventbus.Bus
	Config *config.Server

	// StatusTemplate is the snapshot cloned for every StatusRequest.
	// Hooks mutate it directly (e.g. on_enable sets the initial MOTD).
	StatusTemplate *status.Snapshot
}
