// Package server renders themed pages and exposes the theme over a small
// JSON API. Every request gets its own manager, restored from and persisted
// to the request's cookies.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/alexisbeaulieu97/themekit/internal/dom"
	"github.com/alexisbeaulieu97/themekit/internal/logger"
	"github.com/alexisbeaulieu97/themekit/internal/manager"
	"github.com/alexisbeaulieu97/themekit/internal/persistence"
	"github.com/alexisbeaulieu97/themekit/internal/registry"
	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

const (
	maxBodyBytes    = 64 * 1024
	shutdownTimeout = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	Addr string
	// Themes are the custom themes shared by every request.
	Themes []theme.Definition
	// Theme is the initial theme before the cookie is restored.
	Theme string
	// Persistence configures the cookie. Jar and Callbacks are ignored: the
	// jar is always bound to the request.
	Persistence persistence.Options
	Logger      *logger.Logger
}

// Server serves the theme routes.
type Server struct {
	opts    Options
	log     *logger.Logger
	builder *registry.Builder
	handler http.Handler
}

// New creates a server. The registry is built once and shared.
func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	log = log.With("component", "server")

	s := &Server{
		opts:    opts,
		log:     log,
		builder: registry.NewBuilder(log),
	}
	s.handler = s.routes()
	return s
}

// Handler returns the root handler with middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	s.log.With("addr", ln.Addr().String()).Info("theme server listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.log.Info("theme server stopped")
	return nil
}

// session is the per-request theme state.
type session struct {
	mgr *manager.Manager
	doc *dom.Root
}

// open mounts a manager over the request cookies and waits for the restore.
// The caller must close the session.
func (s *Server) open(w http.ResponseWriter, r *http.Request) (*session, error) {
	popts := s.opts.Persistence
	popts.Callbacks = nil
	popts.Jar = persistence.NewHTTPJar(w, r)

	doc := dom.NewDocument()
	mgr := manager.New(manager.Options{
		Themes:      s.opts.Themes,
		Theme:       s.opts.Theme,
		SSR:         true,
		Persistence: popts,
		Document:    doc,
		Logger:      loggerFrom(r.Context(), s.log),
		Builder:     s.builder,
	})

	if err := mgr.Mount(r.Context()); err != nil {
		_ = mgr.Close()
		return nil, err
	}
	if err := mgr.WaitReady(r.Context()); err != nil {
		_ = mgr.Close()
		return nil, err
	}
	return &session{mgr: mgr, doc: doc}, nil
}

// flush waits for queued cookie writes. It must run before the body.
func (ss *session) flush() {
	ss.mgr.Sync()
}

func (ss *session) close() {
	_ = ss.mgr.Close()
}
