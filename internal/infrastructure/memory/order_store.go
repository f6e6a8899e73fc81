package memory

import (
	"sync"

	"github.com/jhoicas/mockshop-api/internal/domain/entity"
)

// OrderStore implementa repository.OrderRepository sobre un slice en memoria.
type OrderStore struct {
	mu     sync.Mutex
	orders []*entity.Order
}

// NewOrderStore construye el store con las órdenes semilla.
func NewOrderStore() *OrderStore {
	return &OrderStore{orders: seedOrders()}
}

// Create agrega la orden. El ID ya viene generado por el use case.
func (s *OrderStore) Create(order *entity.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *order
	s.orders = append(s.orders, &cp)
	return nil
}

// GetByID devuelve una copia de la orden o (nil, nil) si no existe.
func (s *OrderStore) GetByID(id string) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID == id {
			cp := *o
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todas las órdenes en orden de inserción.
func (s *OrderStore) List() ([]*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Order, 0, len(s.orders))
	for _, o := range s.orders {
		cp := *o
		out = append(out, &cp)
	}
	return out, nil
}

// Reset restaura las órdenes semilla.
func (s *OrderStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = seedOrders()
	return nil
}
