package repository

import "github.com/jhoicas/mockshop-api/internal/domain/entity"

// SessionRepository define el puerto de almacenamiento para sesiones activas.
// Get devuelve (nil, nil) cuando el token no está registrado.
type SessionRepository interface {
	Save(session *entity.Session) error
	Get(token string) (*entity.Session, error)
	Delete(token string) error
	Clear() error
}
