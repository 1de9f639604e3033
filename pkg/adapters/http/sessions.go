package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/aretw0/wilayah/internal/logging"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/go-chi/chi/v5"
)

// ListSessions handles GET /api/sessions.
func (s *Server) ListSessions(w http.ResponseWriter, r *http.Request) {
	ids, err := s.sessions.List(r.Context())
	if err != nil {
		s.logger.Error("list sessions failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	s.writeJSON(w, http.StatusOK, ids)
}

// GetSession handles GET /api/sessions/{session}.
func (s *Server) GetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	sel, err := s.sessions.Load(r.Context(), id)
	if err != nil {
		s.sessionError(w, err)
		return
	}
	resp, status, err := s.respond(r, sel, sel)
	if err != nil {
		s.writeError(w, status, err.Error())
		return
	}
	s.writeJSON(w, http.StatusOK, resp)
}

// DeleteSession handles DELETE /api/sessions/{session}.
func (s *Server) DeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")
	if err := s.sessions.Delete(r.Context(), id); err != nil {
		s.sessionError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SelectSession handles POST /api/sessions/{session}/select with a body
// {"action": ..., "id": ...}. The diff is broadcast to the session's subscribers.
func (s *Server) SelectSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "session")

	var action domain.Action
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&action); err != nil {
		s.logger.Warn("select session: invalid request body", "err", err)
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := action.Validate(); err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	before, after, err := s.sessions.Apply(r.Context(), id, action)
	if err != nil {
		s.sessionError(w, err)
		return
	}

	resp, status, err := s.respond(r, before, after)
	if err != nil {
		s.writeError(w, status, err.Error())
		return
	}

	if resp.Diff != nil {
		if b, err := json.Marshal(resp.Diff); err == nil {
			s.streams.Broadcast(id, string(b))
		}
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) sessionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		s.writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnknownAction):
		s.writeError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("session operation failed", "err", err)
		s.writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// StreamManager fans session diffs out to server-sent event subscribers.
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- string]struct{} // session id -> channels
	logger      *slog.Logger
}

// NewStreamManager creates a StreamManager logging dropped messages to logger.
// A nil logger discards them.
func NewStreamManager(logger *slog.Logger) *StreamManager {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &StreamManager{
		subscribers: make(map[string]map[chan<- string]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a channel for sessionID. The returned func unregisters
// and closes it.
func (sm *StreamManager) Subscribe(sessionID string) (chan string, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan string, 10)
	if _, ok := sm.subscribers[sessionID]; !ok {
		sm.subscribers[sessionID] = make(map[chan<- string]struct{})
	}
	sm.subscribers[sessionID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[sessionID]; ok {
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, sessionID)
			}
		}
	}
}

// Subscribers returns the number of live subscriptions for sessionID.
func (sm *StreamManager) Subscribers(sessionID string) int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.subscribers[sessionID])
}

// Broadcast sends msg to every subscriber of sessionID, dropping it for
// subscribers whose buffer is full.
func (sm *StreamManager) Broadcast(sessionID string, msg string) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	for ch := range sm.subscribers[sessionID] {
		select {
		case ch <- msg:
		default:
			sm.logger.Warn("SSE: client buffer full, dropping message", "session_id", sessionID)
		}
	}
}

// SubscribeEvents handles GET /api/sessions/{session}/events (SSE).
// The optional "watch" parameter lists levels (province,regency,district);
// diffs touching none of them are skipped.
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}
	id := chi.URLParam(r, "session")

	var watch []domain.Level
	if raw := r.URL.Query().Get("watch"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			watch = append(watch, domain.Level(strings.TrimSpace(f)))
		}
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.streams.Subscribe(id)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			if len(watch) > 0 && !touches(msg, watch) {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

func touches(msg string, watch []domain.Level) bool {
	var diff domain.SelectionDiff
	if err := json.Unmarshal([]byte(msg), &diff); err != nil {
		return true
	}
	for _, l := range watch {
		if _, ok := diff.Changed[l]; ok {
			return true
		}
		for _, c := range diff.Cleared {
			if c == l {
				return true
			}
		}
	}
	return false
}
