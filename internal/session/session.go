// Package session holds the per-session state of an interactive analysis:
// the loaded texts, the segmented units, the latest result batch, and the
// chat history. Sessions are explicit objects passed to each call, never
// ambient globals, so concurrent sessions cannot interfere.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/amir-khosravi/ComplianceCore/internal/model"
)

// Session owns one interactive analysis. The result batch is written once
// per run; chat history is append-only and cleared only by explicit action.
type Session struct {
	ID              string
	DesignText      string
	RegulationsText string
	Units           []model.RequirementUnit
	Results         []model.ComplianceResult

	history []model.ChatTurn
}

// New creates a session with a random identifier.
func New() *Session {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return &Session{ID: hex.EncodeToString(buf)}
}

// AppendTurn records a question/response exchange.
func (s *Session) AppendTurn(question, response string) {
	s.history = append(s.history, model.ChatTurn{
		Question:  question,
		Response:  response,
		Timestamp: time.Now().UTC(),
	})
}

// History returns a copy of the chat history in order.
func (s *Session) History() []model.ChatTurn {
	out := make([]model.ChatTurn, len(s.history))
	copy(out, s.history)
	return out
}

// ClearHistory discards the chat history.
func (s *Session) ClearHistory() {
	s.history = nil
}

// Store keeps live sessions keyed by ID with TTL eviction, isolating
// concurrent sessions from each other.
type Store struct {
	sessions *gocache.Cache
}

// NewStore creates a session store with the given retention.
func NewStore(ttl time.Duration) *Store {
	return &Store{sessions: gocache.New(ttl, ttl)}
}

// Put stores a session, refreshing its TTL.
func (s *Store) Put(sess *Session) {
	s.sessions.SetDefault(sess.ID, sess)
}

// Get retrieves a session by ID.
func (s *Store) Get(id string) (*Session, bool) {
	if val, found := s.sessions.Get(id); found {
		return val.(*Session), true
	}
	return nil, false
}

// Delete removes a session.
func (s *Store) Delete(id string) {
	s.sessions.Delete(id)
}
