package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mockshop-api/internal/application/dto"
	"github.com/jhoicas/mockshop-api/internal/domain"
	"github.com/jhoicas/mockshop-api/internal/domain/entity"
	"github.com/jhoicas/mockshop-api/internal/domain/repository"
	"github.com/jhoicas/mockshop-api/pkg/token"
)

// OrderUseCase casos de uso para órdenes: listar, consultar y crear.
// El reloj y el generador de IDs se inyectan para que los tests no dependan
// del wall-clock.
type OrderUseCase struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	gen      token.Generator
	now      func() time.Time
}

// NewOrderUseCase construye el caso de uso con el reloj del sistema.
func NewOrderUseCase(orders repository.OrderRepository, products repository.ProductRepository, gen token.Generator) *OrderUseCase {
	return &OrderUseCase{orders: orders, products: products, gen: gen, now: time.Now}
}

// WithClock sustituye el reloj (tests).
func (uc *OrderUseCase) WithClock(now func() time.Time) *OrderUseCase {
	uc.now = now
	return uc
}

// List filtra por user_id y status (match exacto, ambos opcionales).
// No hay paginación: devuelve el conjunto filtrado completo y su tamaño.
func (uc *OrderUseCase) List(in dto.ListOrdersRequest) (*dto.OrderListResponse, error) {
	orders, err := uc.orders.List()
	if err != nil {
		return nil, err
	}

	data := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		if in.UserID != 0 && o.UserID != in.UserID {
			continue
		}
		if in.Status != "" && o.Status != in.Status {
			continue
		}
		data = append(data, *toOrderResponse(o))
	}
	return &dto.OrderListResponse{Data: data, Total: len(data)}, nil
}

// GetByID obtiene una orden por su ID generado. Devuelve (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(id string) (*dto.OrderResponse, error) {
	order, err := uc.orders.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, nil
	}
	return toOrderResponse(order), nil
}

// Create crea una orden en estado pending. El producto referenciado debe
// existir; quantity omitido (cero) pasa a 1 y uno negativo es ErrInvalidInput.
// Total queda congelado como price × quantity; el stock no se descuenta.
func (uc *OrderUseCase) Create(in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}

	product, err := uc.products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}

	now := uc.now()
	order := &entity.Order{
		ID:        uc.gen.OrderID(now),
		UserID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  quantity,
		Total:     product.Price.Mul(decimal.NewFromInt(int64(quantity))),
		Status:    entity.OrderStatusPending,
		CreatedAt: now,
	}
	if err := uc.orders.Create(order); err != nil {
		return nil, err
	}
	return toOrderResponse(order), nil
}

func toOrderResponse(o *entity.Order) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	return &dto.OrderResponse{
		ID:        o.ID,
		UserID:    o.UserID,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt.UTC().Format(time.DateTime),
	}
}
