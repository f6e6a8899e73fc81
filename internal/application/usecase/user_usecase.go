package usecase

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/mockshop-api/internal/application/dto"
	"github.com/jhoicas/mockshop-api/internal/domain/entity"
	"github.com/jhoicas/mockshop-api/internal/domain/repository"
)

// folder para comparación de nombres insensible a mayúsculas.
// cases.Fold cubre case folding Unicode completo, no solo ASCII.
var folder = cases.Fold()

// UserUseCase casos de uso CRUD para usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List filtra por subcadena de nombre (case folding) y pagina el resultado.
// Total siempre es el tamaño del conjunto filtrado.
func (uc *UserUseCase) List(in dto.ListUsersRequest) (*dto.UserListResponse, error) {
	in.Normalize()

	users, err := uc.repo.List()
	if err != nil {
		return nil, err
	}

	filtered := users
	if in.Name != "" {
		needle := folder.String(in.Name)
		filtered = filtered[:0:0]
		for _, u := range users {
			if strings.Contains(folder.String(u.Name), needle) {
				filtered = append(filtered, u)
			}
		}
	}

	start, end := in.Bounds(len(filtered))
	data := make([]dto.UserResponse, 0, end-start)
	for _, u := range filtered[start:end] {
		data = append(data, *toUserResponse(u))
	}
	return &dto.UserListResponse{
		Data:  data,
		Total: len(filtered),
		Page:  in.Page,
		Limit: in.Limit,
	}, nil
}

// GetByID obtiene un usuario por ID. Devuelve (nil, nil) si no existe.
func (uc *UserUseCase) GetByID(id int) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return toUserResponse(user), nil
}

// Create crea un usuario con el siguiente ID monótono. Status vacío pasa a "active".
func (uc *UserUseCase) Create(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	status := in.Status
	if status == "" {
		status = entity.UserStatusActive
	}
	user := &entity.User{
		Name:   in.Name,
		Email:  in.Email,
		Phone:  in.Phone,
		Status: status,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Update mezcla los campos presentes sobre el registro existente; los campos
// nil quedan intactos. Devuelve (nil, nil) si el usuario no existe.
func (uc *UserUseCase) Update(id int, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.Email != nil {
		user.Email = *in.Email
	}
	if in.Phone != nil {
		user.Phone = *in.Phone
	}
	if in.Status != nil {
		user.Status = *in.Status
	}
	if err := uc.repo.Update(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Delete elimina el usuario. Es idempotente: borrar un ID inexistente no es error.
func (uc *UserUseCase) Delete(id int) error {
	return uc.repo.Delete(id)
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Phone:  u.Phone,
		Status: u.Status,
	}
}
