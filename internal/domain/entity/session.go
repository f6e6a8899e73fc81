package entity

import "time"

// Session es una sesión activa identificada por un token opaco.
// El token se presenta como "Authorization: Bearer <token>" y se valida
// contra el almacén de sesiones; una sesión vencida no otorga acceso.
type Session struct {
	Token     string
	Username  string
	Role      string
	Name      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya venció respecto de now.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
