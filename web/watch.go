package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/robinvdvleuten/cashcount/session"
)

const (
	writeWait   = 10 * time.Second
	watchBuffer = 16
)

// watcher is one websocket client following a session, e.g. a customer
// facing display mirroring the counter.
type watcher struct {
	send chan []byte
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// handleWatch upgrades to a websocket and streams the session state after
// every change, starting with the current state. It does not hold the
// server mutex while connected.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, &UnknownSessionError{ID: r.PathValue("id")})
		return
	}

	s.mu.Lock()
	_, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, &UnknownSessionError{ID: id.String()})
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.Logger.WarnContext(r.Context(), "websocket upgrade failed", "session", id, "error", err)
		return
	}
	defer func() { _ = conn.Close() }()

	wt := &watcher{send: make(chan []byte, watchBuffer)}
	if !s.watch(id, wt) {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, "session deleted"))
		return
	}
	defer s.unwatch(id, wt)

	// Drain client frames so close and ping control messages are handled.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.unwatch(id, wt)
				return
			}
		}
	}()

	for msg := range wt.send {
		_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			s.Logger.DebugContext(r.Context(), "websocket write failed", "session", id, "error", err)
			return
		}
	}

	_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// watch registers wt and queues the current state. It reports false when
// the session no longer exists.
func (s *Server) watch(id uuid.UUID, wt *watcher) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return false
	}

	if s.watchers == nil {
		s.watchers = make(map[uuid.UUID]map[*watcher]struct{})
	}
	if s.watchers[id] == nil {
		s.watchers[id] = make(map[*watcher]struct{})
	}
	s.watchers[id][wt] = struct{}{}

	if msg, err := json.Marshal(buildState(id, sess, s.Currency)); err == nil {
		wt.send <- msg
	}
	return true
}

func (s *Server) unwatch(id uuid.UUID, wt *watcher) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.watchers[id][wt]; !ok {
		return
	}
	delete(s.watchers[id], wt)
	if len(s.watchers[id]) == 0 {
		delete(s.watchers, id)
	}
	close(wt.send)
}

// broadcast pushes the session state to its watchers. Watchers whose buffer
// is full miss the update and catch up on the next one. Callers hold s.mu.
func (s *Server) broadcast(id uuid.UUID, sess *session.Session) {
	if len(s.watchers[id]) == 0 {
		return
	}

	msg, err := json.Marshal(buildState(id, sess, s.Currency))
	if err != nil {
		s.Logger.Error("failed to encode state", "session", id, "error", err)
		return
	}

	for wt := range s.watchers[id] {
		select {
		case wt.send <- msg:
		default:
		}
	}
}

// closeWatchers disconnects every watcher of id. Callers hold s.mu.
func (s *Server) closeWatchers(id uuid.UUID) {
	for wt := range s.watchers[id] {
		close(wt.send)
	}
	delete(s.watchers, id)
}
