package dto

import "github.com/shopspring/decimal"

// ListProductsRequest filtros del listado de productos (match exacto).
type ListProductsRequest struct {
	PageRequest
	Category string `query:"category"`
	Status   string `query:"status"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Status   string          `json:"status"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int               `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
