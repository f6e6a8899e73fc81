package usecase

import (
	"github.com/jhoicas/mockshop-api/internal/domain/repository"
)

// ResetUseCase restaura TODO el estado del servidor a la semilla: usuarios,
// productos y órdenes vuelven a sus valores iniciales y todas las sesiones
// activas quedan invalidadas. El contrato es un reset total, no parcial.
type ResetUseCase struct {
	users    repository.UserRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
	sessions repository.SessionRepository
}

// NewResetUseCase construye el caso de uso.
func NewResetUseCase(users repository.UserRepository, products repository.ProductRepository, orders repository.OrderRepository, sessions repository.SessionRepository) *ResetUseCase {
	return &ResetUseCase{users: users, products: products, orders: orders, sessions: sessions}
}

// Reset restaura las tres colecciones y limpia las sesiones.
func (uc *ResetUseCase) Reset() error {
	if err := uc.users.Reset(); err != nil {
		return err
	}
	if err := uc.products.Reset(); err != nil {
		return err
	}
	if err := uc.orders.Reset(); err != nil {
		return err
	}
	return uc.sessions.Clear()
}
