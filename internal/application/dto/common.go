package dto

import "github.com/shopspring/decimal"

func init() {
	// Los precios y totales viajan como números JSON ("price": 8999.00),
	// no como strings entrecomillados.
	decimal.MarshalJSONWithoutQuotes = true
}

// Valores por defecto de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest paginación para listados (page empieza en 1).
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica defaults: page < 1 pasa a 1, limit < 1 pasa a 10.
// Una página más allá del final produce un slice vacío, no un error.
func (p *PageRequest) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
}

// Bounds devuelve el rango [start, end) dentro de una colección de tamaño
// total, ya acotado a los límites de la colección.
func (p PageRequest) Bounds(total int) (start, end int) {
	start = (p.Page - 1) * p.Limit
	if start > total {
		start = total
	}
	end = start + p.Limit
	if end > total {
		end = total
	}
	return start, end
}

// ErrorResponse cuerpo de error HTTP. El campo error es el contrato público;
// code es un identificador estable para aserciones de máquina.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// MessageResponse cuerpo de confirmación simple.
type MessageResponse struct {
	Message string `json:"message"`
}
