package web

import (
	"encoding/json"
	stdErrors "errors"
	"io"
	"mime"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/cashcount/denomination"
	"github.com/robinvdvleuten/cashcount/ledger"
	"github.com/robinvdvleuten/cashcount/report"
	"github.com/robinvdvleuten/cashcount/session"
)

// CreateSessionRequest is the optional body of POST /api/sessions.
type CreateSessionRequest struct {
	Float *decimal.Decimal `json:"float,omitempty"`
}

func (s *Server) handleGetDenominations(w http.ResponseWriter, r *http.Request) {
	list := s.Registry.List()
	resp := make([]DenominationResponse, len(list))
	for i, d := range list {
		resp[i] = convertDenomination(d)
	}
	writeJSONResponse(w, resp)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !stdErrors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	float := s.Float
	if req.Float != nil {
		float = *req.Float
	}

	sess, err := session.New(s.Registry, float)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = sess
	state := buildState(id, sess, s.Currency)
	s.mu.Unlock()

	s.Logger.InfoContext(r.Context(), "session created", "session", id, "float", float.String())

	w.Header().Set("Location", "/api/sessions/"+id.String())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(state)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session) {
	writeJSONResponse(w, buildState(id, sess, s.Currency))
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session) {
	delete(s.sessions, id)
	s.closeWatchers(id)
	s.Logger.InfoContext(r.Context(), "session deleted", "session", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session) {
	target := denomination.ID(r.PathValue("denomination"))
	if !sess.SelectDenomination(target) {
		writeError(w, http.StatusBadRequest, &ledger.InvalidDenominationError{Denomination: target})
		return
	}
	writeJSONResponse(w, buildState(id, sess, s.Currency))
}

func (s *Server) handleToggleFloat(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session) {
	sess.ToggleFloatEdit()
	writeJSONResponse(w, buildState(id, sess, s.Currency))
}

// handlePressKey applies one keypad key. A key pressed while idle, or one
// that would overflow the buffer, is accepted and leaves the state unchanged.
func (s *Server) handlePressKey(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session) {
	k, ok := session.ParseKey(r.PathValue("key"))
	if !ok {
		writeError(w, http.StatusBadRequest, &UnknownKeyError{Key: r.PathValue("key")})
		return
	}

	applied := sess.PressKey(k)
	w.Header().Set("X-Key-Applied", strconv.FormatBool(applied))
	writeJSONResponse(w, buildState(id, sess, s.Currency))
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session) {
	sess.Advance()
	writeJSONResponse(w, buildState(id, sess, s.Currency))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session) {
	sess.Reset()
	writeJSONResponse(w, buildState(id, sess, s.Currency))
}

// handleReport returns the printable report as a download. The format query
// parameter selects html (default) or text.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request, id uuid.UUID, sess *session.Session) {
	format := report.FormatHTML
	if v := r.URL.Query().Get("format"); v != "" {
		f, err := report.ParseFormat(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		format = f
	}

	opts := []report.Option{report.WithFormat(format)}
	if s.Footer != "" {
		opts = append(opts, report.WithFooter(s.Footer))
	}

	rep, err := report.Generate(s.Registry, sess.Ledger(), sess.Totals(), s.Now(), s.Currency, opts...)
	if err != nil {
		s.Logger.ErrorContext(r.Context(), "report generation failed", "session", id, "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", rep.ContentType)
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": rep.Filename}))
	_, _ = w.Write(rep.Document)
}
