package entity

import "github.com/shopspring/decimal"

// Estados posibles de un producto.
const (
	ProductStatusOnSale     = "on_sale"
	ProductStatusOutOfStock = "out_of_stock"
	ProductStatusOffSale    = "off_sale"
)

// Product representa un producto del catálogo semilla.
// El catálogo es de solo lectura: no existen endpoints de escritura para productos.
type Product struct {
	ID       int
	Name     string
	Price    decimal.Decimal
	Category string
	Stock    int
	Status   string // on_sale | out_of_stock | off_sale
}
