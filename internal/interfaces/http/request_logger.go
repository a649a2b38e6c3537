package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/control-tarjeta/pkg/logger"
)

// HeaderRequestID cabecera de correlación; se respeta la del cliente si viene.
const HeaderRequestID = "X-Request-ID"

// RequestLogger asigna un id a cada request y registra método, ruta, status y
// latencia. Si AuthMiddleware autenticó el request, agrega usuario y rol.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocalRequestID, id)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		reqLog := log.WithRequestID(id)
		ev := reqLog.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = reqLog.Error().Err(err)
		case status >= fiber.StatusBadRequest:
			ev = reqLog.Warn()
		}
		if uid := GetUserID(c); uid != "" {
			ev = ev.Str("user_id", uid).Str("role", GetRole(c))
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")

		return err
	}
}
