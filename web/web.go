// Package web provides an HTTP API for running cash counts from a browser
// or any other keypad front end.
//
// Each client creates a session and then posts the same events a keypad
// produces: select a denomination, toggle the float editor, press a key,
// advance, reset. Every response carries the full session state so clients
// can simply re-render. The report endpoint returns the printable document
// as an attachment, leaving the save dialog to the browser. Other screens can
// follow a session over a websocket and receive every new state.
//
// SECURITY WARNING: This server has no authentication and should only be
// bound to localhost (127.0.0.1). Do not expose it to untrusted networks.
package web

import (
	"bufio"
	"context"
	stdErrors "errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/currency"
	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/ledger"
	"github.com/robinvdvleuten/cashcount/session"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Port      int
	Host      string
	Version   string
	CommitSHA string

	Registry *denomination.Registry
	Float    decimal.Decimal
	Currency currency.Formatter
	Footer   string
	Logger   *slog.Logger

	// Now stamps generated reports.
	Now func() time.Time

	// mu serialises every session transition; the core assumes a single actor.
	mu       sync.Mutex
	sessions map[uuid.UUID]*session.Session
	watchers map[uuid.UUID]map[*watcher]struct{}
}

func New(port int, registry *denomination.Registry) *Server {
	return NewWithVersion(port, registry, "", "")
}

func NewWithVersion(port int, registry *denomination.Registry, version, commitSHA string) *Server {
	return &Server{
		Port:      port,
		Host:      "127.0.0.1",
		Version:   version,
		CommitSHA: commitSHA,
		Registry:  registry,
		Float:     ledger.DefaultFloat,
		Currency:  currency.AUD,
		Logger:    slog.New(slog.NewTextHandler(os.Stderr, nil)),
		Now:       time.Now,
		sessions:  make(map[uuid.UUID]*session.Session),
		watchers:  make(map[uuid.UUID]map[*watcher]struct{}),
	}
}

// Start serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if s.Registry == nil {
		return fmt.Errorf("denomination registry is required")
	}
	if err := session.CheckFloat(s.Float); err != nil {
		return err
	}

	mux, err := s.setupRouter()
	if err != nil {
		return fmt.Errorf("failed to setup router: %w", err)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", s.Host, s.Port),
		Handler:           s.logRequests(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.Logger.Info("server started", "addr", srv.Addr, "version", s.Version, "commit", s.CommitSHA)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		s.Logger.Info("server shutting down")

		// Hijacked websocket connections are not tracked by Shutdown.
		s.mu.Lock()
		for id := range s.watchers {
			s.closeWatchers(id)
		}
		s.mu.Unlock()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}
		return nil

	case err := <-errCh:
		if stdErrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) setupRouter() (*http.ServeMux, error) {
	if s.sessions == nil {
		s.sessions = make(map[uuid.UUID]*session.Session)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/denominations", s.handleGetDenominations)
	mux.HandleFunc("POST /api/sessions", s.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", s.withSession(s.handleGetSession))
	mux.HandleFunc("DELETE /api/sessions/{id}", s.withSession(s.handleDeleteSession))
	mux.HandleFunc("POST /api/sessions/{id}/select/{denomination}", s.withSession(s.handleSelect))
	mux.HandleFunc("POST /api/sessions/{id}/float", s.withSession(s.handleToggleFloat))
	mux.HandleFunc("POST /api/sessions/{id}/keys/{key}", s.withSession(s.handlePressKey))
	mux.HandleFunc("POST /api/sessions/{id}/next", s.withSession(s.handleAdvance))
	mux.HandleFunc("POST /api/sessions/{id}/reset", s.withSession(s.handleReset))
	mux.HandleFunc("GET /api/sessions/{id}/report", s.withSession(s.handleReport))
	mux.HandleFunc("GET /api/sessions/{id}/watch", s.handleWatch)

	if err := s.mountAssets(mux); err != nil {
		return nil, err
	}

	return mux, nil
}

// sessionHandler handles a request for a resolved session. It runs with the
// server mutex held.
type sessionHandler func(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session)

// withSession is middleware that resolves the {id} path value to a session.
// After a POST the new state is pushed to the session's watchers.
func (s *Server) withSession(next sessionHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuid.Parse(r.PathValue("id"))
		if err != nil {
			writeError(w, http.StatusBadRequest, &UnknownSessionError{ID: r.PathValue("id")})
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()

		sess, ok := s.sessions[id]
		if !ok {
			writeError(w, http.StatusNotFound, &UnknownSessionError{ID: id.String()})
			return
		}

		next(w, r, id, sess)

		if r.Method == http.MethodPost {
			s.broadcast(id, sess)
		}
	}
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// Hijack lets websocket upgrades pass through the recorder.
func (r *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	r.status = http.StatusSwitchingProtocols
	return http.NewResponseController(r.ResponseWriter).Hijack()
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

// logRequests is middleware that logs every request with its outcome.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.Logger.InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}
