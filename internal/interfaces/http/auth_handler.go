package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mockshop-api/internal/application/auth"
	"github.com/jhoicas/mockshop-api/internal/application/dto"
	"github.com/jhoicas/mockshop-api/internal/domain"
)

// AuthHandler maneja login y el recurso protegido de demostración.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión con una cuenta de prueba
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username y password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      400   {object}  dto.AuthErrorResponse
// @Failure      401   {object}  dto.AuthErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AuthErrorResponse{Success: false, Error: "cuerpo inválido", Code: "INVALID_BODY"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.AuthErrorResponse{Success: false, Error: "username y password son requeridos", Code: "VALIDATION"})
	}
	out, err := h.uc.Login(in)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Success: false, Error: "credenciales inválidas", Code: "UNAUTHORIZED"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.AuthErrorResponse{Success: false, Error: err.Error(), Code: "INTERNAL"})
	}
	return c.JSON(out)
}

// Protected godoc
// @Summary      Recurso protegido de demostración
// @Tags         auth
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.ProtectedResponse
// @Failure      401  {object}  dto.AuthErrorResponse
// @Router       /protected [get]
func (h *AuthHandler) Protected(c *fiber.Ctx) error {
	session := GetSession(c)
	if session == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Success: false, Error: "no autorizado", Code: "UNAUTHORIZED"})
	}
	return c.JSON(dto.ProtectedResponse{
		Message:    "acceso concedido al recurso protegido",
		SecretData: "42",
		User: dto.SessionUser{
			Username: session.Username,
			Role:     session.Role,
			Name:     session.Name,
		},
	})
}
