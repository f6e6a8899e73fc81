package usecase

import (
	"github.com/jhoicas/mockshop-api/internal/application/dto"
	"github.com/jhoicas/mockshop-api/internal/domain/entity"
	"github.com/jhoicas/mockshop-api/internal/domain/repository"
)

// ProductUseCase casos de uso de lectura para el catálogo de productos.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List filtra por categoría y estado (match exacto, ambos opcionales) y
// pagina igual que el listado de usuarios.
func (uc *ProductUseCase) List(in dto.ListProductsRequest) (*dto.ProductListResponse, error) {
	in.Normalize()

	products, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if in.Category != "" && p.Category != in.Category {
			continue
		}
		if in.Status != "" && p.Status != in.Status {
			continue
		}
		filtered = append(filtered, p)
	}

	start, end := in.Bounds(len(filtered))
	data := make([]dto.ProductResponse, 0, end-start)
	for _, p := range filtered[start:end] {
		data = append(data, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Data:  data,
		Total: len(filtered),
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(id int) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:       p.ID,
		Name:     p.Name,
		Price:    p.Price,
		Category: p.Category,
		Stock:    p.Stock,
		Status:   p.Status,
	}
}
