package memory

import (
	"sync"

	"github.com/jhoicas/mockshop-api/internal/domain/entity"
)

// SessionStore implementa repository.SessionRepository sobre un map en memoria
// indexado por token.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*entity.Session
}

// NewSessionStore construye el store vacío.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*entity.Session)}
}

// Save registra (o reemplaza) la sesión bajo su token.
func (s *SessionStore) Save(session *entity.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.Token] = &cp
	return nil
}

// Get devuelve una copia de la sesión o (nil, nil) si el token no existe.
func (s *SessionStore) Get(token string) (*entity.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[token]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

// Delete elimina la sesión del token indicado. Es idempotente.
func (s *SessionStore) Delete(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
	return nil
}

// Clear invalida todas las sesiones activas.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = make(map[string]*entity.Session)
	return nil
}
