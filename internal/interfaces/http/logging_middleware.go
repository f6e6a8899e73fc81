package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mockshop-api/pkg/logger"
)

// RequestLogger registra cada petición y su respuesta: método, ruta, query y
// cuerpo a la entrada; status, duración y cuerpo a la salida. Es puramente
// observacional: nunca altera el contenido ni el status de la respuesta.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		log.Debug().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("query", string(c.Request().URI().QueryString())).
			Bytes("body", c.Body()).
			Msg("petición recibida")

		err := c.Next()

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Bytes("response", c.Response().Body()).
			Msg("petición atendida")

		return err
	}
}
