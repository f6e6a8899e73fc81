package repository

import "github.com/jhoicas/mockshop-api/internal/domain/entity"

// OrderRepository define el puerto de almacenamiento para Order (DIP).
// GetByID devuelve (nil, nil) cuando la orden no existe.
type OrderRepository interface {
	Create(order *entity.Order) error
	GetByID(id string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	Reset() error
}
