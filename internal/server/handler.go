package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/kyokley/build-demo/internal/textwrap"
)

// greeting is the static response body for the root route.
const greeting = "Hello from build-demo!"

// handleGreeting answers GET / with a fixed plain-text greeting.
func (s *Server) handleGreeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if _, err := w.Write([]byte(greeting)); err != nil {
		s.log.Error().Err(err).Msg("failed to write greeting")
	}
}

// handleCat answers GET /cat by producing an image of a cat saying a
// randomly chosen fortune.
//
// The sequence per request: run the generator, wrap its output at the
// configured width, join the lines with newlines, and ask the upstream
// for a cat image saying the result. The upstream status, content type,
// and body are forwarded to the caller unchanged.
//
// A generator failure is a server fault (500) and no outbound call is
// made. A transport-level upstream failure is reported as 502 — there
// is no upstream status to forward in that case. No retries anywhere.
func (s *Server) handleCat(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	text, err := s.fortunes.Get(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("fortune generator failed")
		http.Error(w, "fortune generator failed", http.StatusInternalServerError)
		return
	}

	wrapped := strings.Join(textwrap.Wrap(text, s.cfg.WrapWidth), "\n")
	s.log.Debug().Str("fortune", wrapped).Msg("generated fortune")

	resp, err := s.cats.Says(r.Context(), wrapped)
	if err != nil {
		s.log.Error().Err(err).Msg("upstream request failed")
		http.Error(w, "upstream request failed", http.StatusBadGateway)
		return
	}

	s.log.Info().
		Int("status", resp.StatusCode).
		Int("bytes", len(resp.Body)).
		Dur("elapsed", time.Since(start)).
		Msg("served cat")

	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.StatusCode)
	if _, err := w.Write(resp.Body); err != nil {
		s.log.Error().Err(err).Msg("failed to write response body")
	}
}
