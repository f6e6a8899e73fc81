package memory

import (
	"sync"

	"github.com/jhoicas/mockshop-api/internal/domain/entity"
)

// ProductStore implementa repository.ProductRepository sobre el catálogo
// semilla. El catálogo es de solo lectura durante la vida del proceso.
type ProductStore struct {
	mu       sync.Mutex
	products []*entity.Product
}

// NewProductStore construye el store con el catálogo semilla.
func NewProductStore() *ProductStore {
	return &ProductStore{products: seedProducts()}
}

// GetByID devuelve una copia del producto o (nil, nil) si no existe.
func (s *ProductStore) GetByID(id int) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == id {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// List devuelve copias de todos los productos en orden de inserción.
func (s *ProductStore) List() ([]*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*entity.Product, 0, len(s.products))
	for _, p := range s.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

// Reset restaura el catálogo semilla.
func (s *ProductStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = seedProducts()
	return nil
}
