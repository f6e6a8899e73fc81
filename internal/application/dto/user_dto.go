package dto

// ListUsersRequest filtros del listado de usuarios.
// Name es un filtro por subcadena, insensible a mayúsculas (case folding Unicode).
type ListUsersRequest struct {
	PageRequest
	Name string `query:"name"`
}

// CreateUserRequest entrada para crear un usuario. Name y Email son obligatorios.
type CreateUserRequest struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Status string `json:"status"`
}

// UpdateUserRequest entrada para actualizar un usuario. Los campos nil no se tocan.
type UpdateUserRequest struct {
	Name   *string `json:"name"`
	Email  *string `json:"email"`
	Phone  *string `json:"phone"`
	Status *string `json:"status"`
}

// UserResponse salida de un usuario.
type UserResponse struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone,omitempty"`
	Status string `json:"status"`
}

// UserListResponse listado paginado. Total cuenta el conjunto FILTRADO,
// no la colección completa; page y limit se devuelven ya normalizados.
type UserListResponse struct {
	Data  []UserResponse `json:"data"`
	Total int            `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}
