package entity

// Roles de las cuentas de prueba.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
	RoleVIP   = "vip"
)

// Account es una cuenta de prueba estática (username/password en texto plano).
// Las cuentas son fijas durante la vida del proceso y se exponen tal cual
// en GET /test/accounts para conveniencia de las suites de prueba.
type Account struct {
	Username string
	Password string
	Role     string // admin | user | vip
	Name     string // nombre para mostrar
}
