package dto

import "github.com/shopspring/decimal"

// ListOrdersRequest filtros del listado de órdenes. Sin paginación:
// el listado de órdenes devuelve el conjunto filtrado completo.
type ListOrdersRequest struct {
	UserID int    `query:"user_id"`
	Status string `query:"status"`
}

// CreateOrderRequest entrada para crear una orden.
// Quantity omitido o cero se interpreta como 1.
type CreateOrderRequest struct {
	UserID    int `json:"user_id"`
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// OrderResponse salida de una orden. Total es la instantánea
// price × quantity calculada al crear.
type OrderResponse struct {
	ID        string          `json:"id"`
	UserID    int             `json:"user_id"`
	ProductID int             `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	CreatedAt string          `json:"created_at"`
}

// OrderListResponse listado de órdenes con el tamaño del conjunto filtrado.
type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int             `json:"total"`
}
