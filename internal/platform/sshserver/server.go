// Package sshserver serves single-player invaders sessions over SSH via Wish.
package sshserver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/engine"
	"github.com/vovakirdan/tui-invaders/internal/platform/terminal"
)

// Config holds configuration for the SSH server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file. It is generated on
	// first start if missing.
	HostKeyPath string

	// IdleTimeout closes connections without traffic. Zero disables it.
	IdleTimeout time.Duration

	// Runtime is applied to every session. A zero seed gives each session
	// its own clock-based seed.
	Runtime core.RuntimeConfig
}

// Server wraps a Wish SSH server.
type Server struct {
	config Config
	server *ssh.Server
	logger *log.Logger
}

// New creates a server. logger receives session lifecycle events; nil uses
// a stderr logger.
func New(cfg Config, logger *log.Logger) (*Server, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "invaders-ssh",
		})
	}

	srv := &Server{
		config: cfg,
		logger: logger,
	}

	if dir := filepath.Dir(cfg.HostKeyPath); cfg.HostKeyPath != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("cannot create host key directory: %w", err)
		}
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(cfg.HostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// gameMiddleware plays one round on the session's PTY.
func (s *Server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		defer next(sess)

		pty, winCh, _ := sess.Pty()
		if err := terminal.CheckSize(pty.Window.Width, pty.Window.Height); err != nil {
			wish.Fatalln(sess, err)
			return
		}
		go func() {
			for w := range winCh {
				s.logger.Debug("window resized", "user", sess.User(), "width", w.Width, "height", w.Height)
			}
		}()

		// The renderer probes the client before keys are read.
		out := terminal.NewStream(sess, bubbletea.MakeRenderer(sess))
		if err := out.EnterAltScreen(); err != nil {
			s.logger.Warn("enter alt screen", "user", sess.User(), "err", err)
			return
		}

		keys := terminal.NewKeyReader(sess.Context(), sess)
		res, err := engine.Run(sess.Context(), engine.Session{
			Input:  keys,
			Output: out,
			Logger: s.logger.With("user", sess.User()),
			Config: s.config.Runtime,
		})
		keys.Close()

		if exitErr := out.ExitAltScreen(); exitErr != nil && err == nil {
			err = exitErr
		}
		if err != nil {
			s.logger.Error("session failed", "user", sess.User(), "err", err)
			wish.Errorln(sess, err)
			return
		}
		wish.Println(sess, res.Summary())
	}
}

// loggingMiddleware logs SSH session events.
func (s *Server) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		s.logger.Info("session started",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	case <-done:
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}
