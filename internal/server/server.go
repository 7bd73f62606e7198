package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/kyokley/build-demo/internal/cataas"
	"github.com/kyokley/build-demo/internal/config"
	"github.com/kyokley/build-demo/internal/fortune"
)

// shutdownTimeout bounds how long Run waits for in-flight requests to
// drain after the context is cancelled.
const shutdownTimeout = 5 * time.Second

// Server is the fortune-cat HTTP gateway. It owns the router and the
// two collaborator clients, all of which are read-only after New, so a
// Server is safe for concurrent request handling.
type Server struct {
	cfg      *config.Config
	log      zerolog.Logger
	fortunes *fortune.Runner
	cats     *cataas.Client
	handler  http.Handler
}

// New builds a Server from resolved configuration. The fortune runner
// and upstream client are constructed here from the config, keeping all
// configuration threading explicit — nothing reads environment state at
// request time.
func New(cfg *config.Config, log zerolog.Logger) *Server {
	s := &Server{
		cfg:      cfg,
		log:      log,
		fortunes: fortune.NewRunner(cfg.FortunePath),
		cats:     cataas.NewClient(cfg.UpstreamBaseURL, cfg.FontSize, nil),
	}

	r := chi.NewRouter()
	r.Get("/", s.handleGreeting)
	r.Get("/cat", s.handleCat)
	s.handler = r

	return s
}

// Handler returns the HTTP handler for the gateway routes. Exposed so
// tests can drive the full routing stack through httptest without
// binding a socket.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully. A clean shutdown returns nil.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.cfg.ListenAddr,
		Handler: s.handler,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().
			Str("addr", s.cfg.ListenAddr).
			Str("fortune_path", s.cfg.FortunePath).
			Str("upstream", s.cfg.UpstreamBaseURL).
			Msg("fortune-cat listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		// ListenAndServe never returns nil; ErrServerClosed only appears
		// after Shutdown, which has not been called on this path.
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
