package repository

import "github.com/jhoicas/mockshop-api/internal/domain/entity"

// ProductRepository define el puerto de almacenamiento para Product (DIP).
// El catálogo es de solo lectura; Reset lo restaura a la semilla.
type ProductRepository interface {
	GetByID(id int) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Reset() error
}
