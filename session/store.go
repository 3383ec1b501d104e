package session

import (
	"sync"
	"time"

	"study-assistant/models"

	"github.com/google/uuid"
)

// Store holds the sessions of this process. The application is single-user,
// so at most one session is current at a time; logging in replaces it.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
	current  string
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*models.Session),
		now:      time.Now,
	}
}

// Create opens a session for user and makes it current.
func (s *Store) Create(user *models.User) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != "" {
		delete(s.sessions, s.current)
	}

	session := &models.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: s.now(),
	}

	s.sessions[session.ID] = session
	s.current = session.ID
	return session, nil
}

func (s *Store) Get(sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, nil
	}
	return session, nil
}

// Current returns the active session, or nil when nobody is logged in.
func (s *Store) Current() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sessions[s.current]
}

func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	if s.current == sessionID {
		s.current = ""
	}
	return nil
}
