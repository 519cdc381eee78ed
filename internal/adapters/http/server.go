// Package http exposes the session engine over a gateway-style HTTP surface.
//
// The POST /ussd callback mirrors what aggregator gateways send on every
// user keypress: a form with sessionId, phoneNumber, serviceCode and text,
// where text is the full *-joined input history. The response body is the
// screen text, starting with CON (keep the session open) or END (terminate).
package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/afrisecure/ussd/internal/logging"
	"github.com/afrisecure/ussd/internal/observability"
	"github.com/afrisecure/ussd/pkg/domain"
	"github.com/afrisecure/ussd/pkg/flows"
	"github.com/afrisecure/ussd/pkg/ports"
	"github.com/afrisecure/ussd/pkg/session"
)

// Server handles gateway callbacks and the session admin surface.
type Server struct {
	engine   ports.SessionEngine
	sessions *session.Manager
	logger   *slog.Logger
	metrics  *observability.Metrics
	rootFlow string
	extra    map[string]http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the request logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithMetrics records callback durations.
func WithMetrics(m *observability.Metrics) Option {
	return func(s *Server) { s.metrics = m }
}

// WithRootFlow overrides the flow a fresh dial-in starts on (default router).
func WithRootFlow(flowID string) Option {
	return func(s *Server) { s.rootFlow = flowID }
}

// WithRoute mounts an extra handler (e.g. promhttp on /metrics).
func WithRoute(pattern string, h http.Handler) Option {
	return func(s *Server) { s.extra[pattern] = h }
}

// NewHandler builds the HTTP handler for the USSD service.
func NewHandler(engine ports.SessionEngine, sessions *session.Manager, opts ...Option) http.Handler {
	s := &Server{
		engine:   engine,
		sessions: sessions,
		logger:   logging.NewNop(),
		rootFlow: flows.FlowRouter,
		extra:    make(map[string]http.Handler),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Post("/ussd", s.handleCallback)
	r.Get("/sessions", s.handleListSessions)
	r.Get("/sessions/{id}", s.handleGetSession)
	r.Delete("/sessions/{id}", s.handleDeleteSession)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})
	for pattern, h := range s.extra {
		r.Method(http.MethodGet, pattern, h)
	}
	return r
}

// lastSegment extracts the newest input from the *-joined history gateways
// accumulate ("1*1234" -> "1234"). Empty text means a fresh dial-in.
func lastSegment(text string) string {
	if text == "" {
		return ""
	}
	parts := strings.Split(text, "*")
	return parts[len(parts)-1]
}

func (s *Server) handleCallback(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.ObserveRequest("/ussd", time.Since(start))
		}
	}()

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}
	sessionID := r.FormValue("sessionId")
	if sessionID == "" {
		http.Error(w, "sessionId is required", http.StatusBadRequest)
		return
	}
	input := lastSegment(r.FormValue("text"))

	var reply string
	err := s.sessions.WithLock(r.Context(), sessionID, func(ctx0 context.Context) error {
		store := s.sessions.Store()

		sess, err := store.Load(ctx0, sessionID)
		if errors.Is(err, domain.ErrSessionNotFound) {
			sess, err = s.engine.Start(ctx0, s.rootFlow)
			if err != nil {
				return err
			}
			sess.ID = sessionID
		} else if err != nil {
			return err
		}

		if input != "" {
			next, err := s.engine.Submit(ctx0, sess, input)
			switch {
			case errors.Is(err, domain.ErrSessionEnded):
				// Stale callback for a finished session: repeat the final
				// screen and let the cleanup below drop it.
			case err != nil:
				return err
			default:
				// Resolve interstitials inline; over HTTP there is nobody to
				// watch the processing screen.
				sess, err = s.engine.Advance(ctx0, next)
				if err != nil {
					return err
				}
			}
		}

		reply, err = s.engine.Render(sess)
		if err != nil {
			return err
		}

		if strings.HasPrefix(reply, "END ") {
			return store.Delete(ctx0, sessionID)
		}
		return store.Save(ctx0, sessionID, sess)
	})
	if err != nil {
		s.logger.Error("callback failed", "session_id", sessionID, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, reply)
}

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		http.Error(w, fmt.Sprintf("list error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]any{"sessions": ids})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, err := s.sessions.Load(r.Context(), id)
	if errors.Is(err, domain.ErrSessionNotFound) {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, fmt.Sprintf("load error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.sessions.Delete(r.Context(), id); err != nil {
		http.Error(w, fmt.Sprintf("delete error: %v", err), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// Headers already sent; nothing useful left to do.
		_ = err
	}
}
