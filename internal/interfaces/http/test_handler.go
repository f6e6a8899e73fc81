package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mockshop-api/internal/application/dto"
	"github.com/jhoicas/mockshop-api/internal/application/usecase"
	"github.com/jhoicas/mockshop-api/internal/domain/repository"
)

// TestHandler endpoints auxiliares para suites de prueba: volcado de cuentas
// y reset del estado. No son comportamiento apto para producción.
type TestHandler struct {
	accounts repository.AccountRepository
	reset    *usecase.ResetUseCase
}

// NewTestHandler construye el handler auxiliar.
func NewTestHandler(accounts repository.AccountRepository, reset *usecase.ResetUseCase) *TestHandler {
	return &TestHandler{accounts: accounts, reset: reset}
}

// Accounts godoc
// @Summary      Enumerar cuentas de prueba (passwords en texto plano)
// @Tags         test
// @Produce      json
// @Success      200  {object}  dto.AccountListResponse
// @Router       /test/accounts [get]
func (h *TestHandler) Accounts(c *fiber.Ctx) error {
	accounts, err := h.accounts.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
	}
	out := dto.AccountListResponse{Accounts: make([]dto.AccountResponse, 0, len(accounts))}
	for _, a := range accounts {
		out.Accounts = append(out.Accounts, dto.AccountResponse{
			Username: a.Username,
			Password: a.Password,
			Role:     a.Role,
			Name:     a.Name,
		})
	}
	return c.JSON(out)
}

// Reset godoc
// @Summary      Restaurar todo el estado a la semilla
// @Description  Usuarios, productos y órdenes vuelven a sus valores iniciales; todas las sesiones se invalidan.
// @Tags         test
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Router       /test/reset [post]
func (h *TestHandler) Reset(c *fiber.Ctx) error {
	if err := h.reset.Reset(); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error(), Code: "INTERNAL"})
	}
	return c.JSON(dto.MessageResponse{Message: "estado restaurado a la semilla"})
}
