package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mockshop-api/internal/application/auth"
	"github.com/jhoicas/mockshop-api/internal/application/dto"
	"github.com/jhoicas/mockshop-api/internal/domain"
	"github.com/jhoicas/mockshop-api/internal/domain/entity"
)

// Local key para la sesión validada en Fiber.
const localSession = "session"

// AuthMiddleware exige "Authorization: Bearer <token>" y valida el token
// contra las sesiones activas. Un token desconocido o vencido responde 401.
// La sesión validada queda en c.Locals para el handler.
func AuthMiddleware(authUC *auth.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Success: false, Error: "Authorization header requerido", Code: "MISSING_TOKEN"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Success: false, Error: "formato: Bearer <token>", Code: "INVALID_TOKEN"})
		}
		tok := strings.TrimSpace(parts[1])
		if tok == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Success: false, Error: "token vacío", Code: "MISSING_TOKEN"})
		}
		session, err := authUC.Validate(tok)
		if err != nil {
			if errors.Is(err, domain.ErrSessionExpired) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Success: false, Error: "sesión expirada", Code: "EXPIRED_TOKEN"})
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.AuthErrorResponse{Success: false, Error: "token inválido", Code: "INVALID_TOKEN"})
		}
		c.Locals(localSession, session)
		return c.Next()
	}
}

// GetSession devuelve la sesión del contexto (después del middleware de auth).
func GetSession(c *fiber.Ctx) *entity.Session {
	v := c.Locals(localSession)
	if v == nil {
		return nil
	}
	s, _ := v.(*entity.Session)
	return s
}
