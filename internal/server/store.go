package server

import (
	"errors"
	"sync"

	"github.com/rhyrak/class-scheduler/internal/session"
)

var ErrSessionNotFound = errors.New("session not found")

// Store keeps sessions in memory for the lifetime of the process.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*entry
}

type entry struct {
	mu      sync.Mutex
	session *session.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*entry)}
}

func (s *Store) Create() *session.Session {
	sess := session.New()
	s.mu.Lock()
	s.sessions[sess.ID] = &entry{session: sess}
	s.mu.Unlock()
	return sess
}

// With runs fn with exclusive access to the session identified by id.
func (s *Store) With(id string, fn func(*session.Session) error) error {
	s.mu.Lock()
	e, ok := s.sessions[id]
	s.mu.Unlock()
	if !ok {
		return ErrSessionNotFound
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.session)
}

// IDs lists known session identifiers.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]string, 0, len(s.sessions))
	for id := range s.sessions {
		ids = append(ids, id)
	}
	return ids
}
