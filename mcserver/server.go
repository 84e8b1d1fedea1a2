// Package mcserver implements the accept/serve loop: binding a listening
// socket, spawning one connection task per accepted client, reading
// operator console commands, and coordinating shutdown.
//
// Grounded on the corpus's plain-channel server-struct shape (accept loop
// feeding a channel, separate stop channels for listen/tick/server) rather
// than on the teacher, which has no server side; the per-connection
// framing and dispatch below it are the teacher-grounded `connection`
// package.
package mcserver

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"

	"github.com/go-mclib/mcserver/config"
	"github.com/go-mclib/mcserver/connection"
	"github.com/go-mclib/mcserver/eventbus"
	"github.com/go-mclib/mcserver/protocol"
	"github.com/go-mclib/mcserver/protocol/packets"
	"github.com/go-mclib/mcserver/status"
)

// DrainWindow bounds how long Run waits for in-flight connections to
// observe the shutdown broadcast before calling OnDisable.
const DrainWindow = 2 * time.Second

// Server binds a listening socket and drives the accept/console/signal
// loop described by the server loop component.
type Server struct {
	Config         *config.Server
	ServerProtocol int32
	VersionName    string
	Logger         hclog.Logger
	Host           Host
	Registry       *protocol.Registry

	// Listener overrides the socket Run binds, primarily for tests that
	// need an OS-assigned ephemeral port. Nil means bind Config's
	// host:port normally.
	Listener net.Listener

	bus            *eventbus.Bus
	statusTemplate *status.Snapshot
}

// New constructs a Server ready to Run. If cfg is nil, defaults are used.
// If host is nil, NoopHost runs.
func New(cfg *config.Server, serverProtocol int32, versionName string, logger hclog.Logger, host Host) *Server {
	if cfg == nil {
		cfg = &config.Server{}
		cfg.Server.Host = config.DefaultHost
		cfg.Server.Port = config.DefaultPort
	}
	cfg.Validate()

	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if host == nil {
		host = NoopHost{}
	}

	reg := protocol.NewRegistry()
	packets.Register(reg)

	return &Server{
		Config:         cfg,
		ServerProtocol: serverProtocol,
		VersionName:    versionName,
		Logger:         logger.Named("mcserver"),
		Host:           host,
		Registry:       reg,
		bus:            eventbus.New(),
		statusTemplate: status.New().WithVersion(versionName, serverProtocol).WithPlayers(20, 0),
	}
}

// Bus returns the server-wide event bus, for hosts that want to subscribe
// before calling Run.
func (s *Server) Bus() *eventbus.Bus { return s.bus }

// StatusTemplate returns the snapshot cloned for every StatusRequest.
func (s *Server) StatusTemplate() *status.Snapshot { return s.statusTemplate }

// Run binds the listener, runs OnEnable, then loops over accepted
// connections, operator console lines, and interrupt signals until told to
// stop. It returns nil on clean shutdown and a non-nil error on bind
// failure.
func (s *Server) Run(ctx context.Context) error {
	listener := s.Listener
	if listener == nil {
		addr := net.JoinHostPort(s.Config.Server.Host, fmt.Sprintf("%d", s.Config.Server.Port))
		bound, err := net.Listen("tcp", addr)
		if err != nil {
			return fmt.Errorf("mcserver: bind %s: %w", addr, err)
		}
		listener = bound
	}
	defer listener.Close()
	s.Logger.Info("listening", "addr", listener.Addr().String())

	sctx := &ServerContext{
		Context:        ctx,
		Logger:         s.Logger,
		Bus:            s.bus,
		Config:         s.Config,
		StatusTemplate: s.statusTemplate,
	}
	if err := s.Host.OnEnable(sctx); err != nil {
		return fmt.Errorf("mcserver: on_enable: %w", err)
	}

	shutdown := make(chan struct{})
	accepted := make(chan net.Conn)
	acceptErrs := make(chan error, 1)
	go acceptLoop(listener, accepted, acceptErrs, shutdown)

	consoleLines := make(chan string)
	go readConsole(consoleLines)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	var wg sync.WaitGroup

loop:
	for {
		select {
		case conn, ok := <-accepted:
			if !ok {
				break loop
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				s.serve(conn, shutdown)
			}()

		case err := <-acceptErrs:
			s.Logger.Error("accept failed", "error", err)
			break loop

		case line := <-consoleLines:
			switch line {
			case "stop":
				break loop
			case "reload":
				if err := s.Host.OnReload(sctx); err != nil {
					s.Logger.Error("on_reload failed", "error", err)
				}
			}

		case <-sigCh:
			s.Logger.Info("interrupt received")
			break loop

		case <-ctx.Done():
			break loop
		}
	}

	close(shutdown)
	listener.Close()

	drained := make(chan struct{})
	go func() {
		wg.Wait()
		close(drained)
	}()
	select {
	case <-drained:
	case <-time.After(DrainWindow):
		s.Logger.Warn("drain window elapsed with connections still open")
	}

	if err := s.Host.OnDisable(sctx); err != nil {
		s.Logger.Error("on_disable failed", "error", err)
	}
	return nil
}

func (s *Server) serve(socket net.Conn, shutdown <-chan struct{}) {
	addr := socket.RemoteAddr().String()
	color.Green("connection accepted: %s", addr)
	defer color.Yellow("connection closed: %s", addr)

	conn := connection.New(socket, shutdown, connection.Deps{
		Logger:         s.Logger,
		Registry:       s.Registry,
		Bus:            s.bus,
		StatusTemplate: s.statusTemplate,
		ServerProtocol: s.ServerProtocol,
	})
	conn.Run()
}

// acceptLoop never blocks past shutdown being closed: a connection
// accepted just as the server loop exits is handed off if there's a
// reader, otherwise dropped and closed rather than leaking this goroutine.
func acceptLoop(listener net.Listener, out chan<- net.Conn, errs chan<- error, shutdown <-chan struct{}) {
	for {
		conn, err := listener.Accept()
		if err != nil {
			select {
			case errs <- err:
			default:
			}
			return
		}
		select {
		case out <- conn:
		case <-shutdown:
			conn.Close()
			return
		}
	}
}
