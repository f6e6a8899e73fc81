package dto

// AccountResponse cuenta de prueba, password incluido en texto plano.
// Este endpoint existe solo para conveniencia de suites de prueba.
type AccountResponse struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// AccountListResponse listado de cuentas de prueba.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}
