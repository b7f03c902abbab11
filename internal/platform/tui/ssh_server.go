package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/dodge-creeps/internal/core"
	"github.com/vovakirdan/dodge-creeps/internal/storage"
)

// shutdownGrace bounds how long open sessions get after the context ends.
const shutdownGrace = 10 * time.Second

// SSHServerConfig configures the multi-session SSH server.
type SSHServerConfig struct {
	Address string // host:port, e.g. ":23234"

	// HostKeyPath is generated on first start when missing.
	// Empty means ~/.arcade/host_key.
	HostKeyPath string

	DBPath string

	// Difficulty preselects the menu entry for new sessions.
	Difficulty string

	TickRate    int
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns the serve command's defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.arcade/scores.db",
		TickRate:    core.DefaultTickRate,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer runs one menu and game session per SSH connection. All
// sessions share one score store.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
	active atomic.Int32
}

// NewSSHServer prepares the server without listening. A nil logger gets
// a timestamped stderr logger. A database that fails to open is logged
// and sessions run without saving scores.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "creeps-ssh",
		})
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultTickRate
	}

	hostKeyPath, err := resolveHostKey(cfg.HostKeyPath)
	if err != nil {
		return nil, err
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "error", err)
		store = nil
	}

	srv := &SSHServer{config: cfg, store: store, logger: logger}

	srv.server, err = wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}
	return srv, nil
}

// resolveHostKey fills in the default key path and creates its directory.
func resolveHostKey(path string) (string, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".arcade", "host_key")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler builds the session model for a connection. Connections
// without a PTY are refused.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.DefaultConfig().Sized(pty.Window.Width, pty.Window.Height)
	cfg.TickRate = s.config.TickRate
	cfg.Seed = time.Now().UnixNano()

	return NewSessionModel(s.store, cfg, s.config.Difficulty), []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware tags each connection with an ID so the start and end
// lines of concurrent sessions pair up.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		started := time.Now()
		logger := s.logger.With(
			"session", uuid.NewString(),
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		logger.Info("session started", "active", s.active.Add(1))
		defer func() {
			logger.Info("session ended",
				"duration", time.Since(started).Round(time.Second),
				"active", s.active.Add(-1),
			)
		}()
		next(sess)
	}
}

// ListenAndServe accepts connections until ctx is done, then shuts down.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		s.closeStore()
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down", "active", s.active.Load())
		return s.Shutdown()
	}
}

// Shutdown stops accepting connections and waits up to shutdownGrace
// for sessions to close.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	defer s.closeStore()

	if err := s.server.Shutdown(ctx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the configured listen address.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
