package repository

import "github.com/jhoicas/mockshop-api/internal/domain/entity"

// UserRepository define el puerto de almacenamiento para User (DIP).
// GetByID devuelve (nil, nil) cuando el usuario no existe.
type UserRepository interface {
	Create(user *entity.User) error
	GetByID(id int) (*entity.User, error)
	Update(user *entity.User) error
	Delete(id int) error
	List() ([]*entity.User, error)
	Reset() error
}
