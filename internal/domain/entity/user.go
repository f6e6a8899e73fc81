package entity

// Estados posibles de un usuario.
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusPending  = "pending"
)

// User representa un usuario del catálogo de pruebas.
// El ID es un entero secuencial: se asigna de forma monótona y nunca se reutiliza.
type User struct {
	ID     int
	Name   string
	Email  string
	Phone  string // opcional
	Status string // active | inactive | pending
}
