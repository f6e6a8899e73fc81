package repository

import "github.com/jhoicas/mockshop-api/internal/domain/entity"

// AccountRepository define el puerto de lectura para las cuentas de prueba.
// Las cuentas son estáticas: no hay operaciones de escritura.
type AccountRepository interface {
	FindByUsername(username string) (*entity.Account, error)
	List() ([]*entity.Account, error)
}
