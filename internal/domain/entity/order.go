package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de una orden.
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusShipped   = "shipped"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order representa una orden de compra.
// Total es una instantánea de price × quantity al momento de la creación:
// no se recalcula si el precio del producto cambia después.
type Order struct {
	ID        string // "ORD" + timestamp + sufijo
	UserID    int
	ProductID int
	Quantity  int
	Total     decimal.Decimal
	Status    string // pending | paid | shipped | completed | cancelled
	CreatedAt time.Time
}
