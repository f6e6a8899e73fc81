package dto

// LoginRequest entrada para login (cuenta de prueba estática).
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser resumen de la cuenta autenticada que viaja en las respuestas.
type SessionUser struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// LoginResponse salida de un login exitoso. El token es opaco: solo sirve
// mientras exista la sesión en el servidor y no haya vencido.
type LoginResponse struct {
	Success   bool        `json:"success"`
	Token     string      `json:"token"`
	ExpiresAt string      `json:"expires_at"`
	User      SessionUser `json:"user"`
}

// AuthErrorResponse error de autenticación (login o recurso protegido).
type AuthErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
}

// ProtectedResponse salida del recurso protegido.
type ProtectedResponse struct {
	Message    string      `json:"message"`
	SecretData string      `json:"secret_data"`
	User       SessionUser `json:"user"`
}
