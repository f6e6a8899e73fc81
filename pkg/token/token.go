// Package token genera los identificadores opacos que usa la aplicación:
// tokens de sesión y números de orden. Reemplaza los esquemas dependientes
// del reloj del servidor original: los tokens salen de uuid v4 (crypto/rand)
// y el sufijo de las órdenes avanza con un contador monótono, así la
// unicidad no depende del wall-clock.
package token

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Generator produce tokens de sesión e IDs de orden. Se inyecta en los use
// cases para que los tests puedan sustituirlo por uno determinista.
type Generator interface {
	SessionToken() string
	OrderID(now time.Time) string
}

// UUIDGenerator es el Generator por defecto. El contador del sufijo arranca
// en un punto aleatorio (derivado de un uuid) y avanza atómicamente.
type UUIDGenerator struct {
	ctr uint32
}

// NewGenerator construye el generador por defecto.
func NewGenerator() *UUIDGenerator {
	u := uuid.New()
	return &UUIDGenerator{ctr: uint32(u[0])<<8 | uint32(u[1])}
}

// SessionToken devuelve un token opaco único (uuid v4, crypto/rand).
func (g *UUIDGenerator) SessionToken() string {
	return uuid.NewString()
}

// OrderID devuelve un ID con el formato histórico "ORD" + timestamp UTC +
// sufijo de 3 dígitos. El sufijo es un contador monótono: dos órdenes
// creadas en el mismo segundo no colisionan.
func (g *UUIDGenerator) OrderID(now time.Time) string {
	n := atomic.AddUint32(&g.ctr, 1)
	return fmt.Sprintf("ORD%s%03d", now.UTC().Format("20060102150405"), n%1000)
}
