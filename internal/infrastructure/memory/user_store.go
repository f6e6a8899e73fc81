package memory

import (
	"sync"

	"github.com/jhoicas/mockshop-api/internal/domain/entity"
)

// UserStore implementa repository.UserRepository sobre un slice en memoria.
// Toda mutación pasa por el mutex; los IDs avanzan bajo el mismo lock para
// que creaciones concurrentes no puedan chocar en la asignación.
type UserStore struct {
	mu     sync.Mutex
	users  []*entity.User
	nextID int
}

// NewUserStore construye el store con los usuarios semilla.
func NewUserStore() *UserStore {
	s := &UserStore{}
	s.reset()
	return s
}

// Create asigna el siguiente ID monótono y agrega el usuario.
// Los IDs nunca se reutilizan, ni siquiera tras un Delete.
func (s *UserStore) Create(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user.ID = s.nextID
	s.nextID++
	cp := *user
	s.users = append(s.users, &cp)
	return nil
}

// GetByID devuelve una copia del usuario o (nil, nil) si no existe.
func (s *UserStore) GetByID(id int) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// Update sobrescribe el registro con el mismo ID. Si no existe no hace nada;
// el use case verifica existencia antes con GetByID.
func (s *UserStore) Update(user *entity.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == user.ID {
			cp := *user
			s.users[i] = &cp
			return nil
		}
	}
	return nil
}

// Delete elimina el usuario si existe. Es idempotente.
func (s *UserStore) Delete(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept
	return nil
}

// List devuelve copias de todos los usuarios en orden de inserción.
func (s *UserStore) List() ([]*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

// Reset restaura la colección semilla y reinicia el contador de IDs.
func (s *UserStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	return nil
}

func (s *UserStore) reset() {
	s.users = seedUsers()
	max := 0
	for _, u := range s.users {
		if u.ID > max {
			max = u.ID
		}
	}
	s.nextID = max + 1
}
