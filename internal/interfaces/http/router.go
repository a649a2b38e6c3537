package http

import (
	"errors"
	"math"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/control-tarjeta/internal/application/dto"
	"github.com/jhoicas/control-tarjeta/internal/application/report"
	"github.com/jhoicas/control-tarjeta/pkg/logger"
)

// multipartOverhead margen del body por encima del límite del archivo (cabeceras multipart y campo title).
const multipartOverhead = 1 << 20

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName   string
	Report    *report.UseCase
	Log       *logger.Logger
	JWTSecret string // vacío: rutas públicas
}

// NewApp construye la aplicación Fiber con middlewares y rutas.
func NewApp(deps RouterDeps) *fiber.App {
	if deps.Log == nil {
		deps.Log = logger.Nop()
	}
	app := fiber.New(fiber.Config{
		AppName:      deps.AppName,
		BodyLimit:    bodyLimit(deps.Report.MaxUploadBytes()),
		ErrorHandler: ErrorHandler(deps.Report.MaxUploadBytes()),
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(RequestLogger(deps.Log))

	Router(app, deps)
	return app
}

// bodyLimit límite del body HTTP; sin límite de subida (0) no se corta el body.
func bodyLimit(maxUpload int64) int {
	if maxUpload <= 0 {
		return math.MaxInt
	}
	return int(maxUpload) + multipartOverhead
}

// ErrorHandler responde con dto.ErrorResponse los errores que no pasan por un
// handler, como el body que excede BodyLimit o una ruta inexistente.
func ErrorHandler(maxUpload int64) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		resp := dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
		switch {
		case code == fiber.StatusRequestEntityTooLarge:
			resp = dto.ErrorResponse{Code: "INPUT_TOO_LARGE", Message: tooLargeMessage(maxUpload)}
		case code == fiber.StatusNotFound:
			resp.Code = "NOT_FOUND"
		case code == fiber.StatusRequestTimeout:
			resp.Code = "TIMEOUT"
		case code < fiber.StatusInternalServerError:
			resp.Code = "BAD_REQUEST"
		}
		return c.Status(code).JSON(resp)
	}
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(dto.HealthResponse{Status: "ok", Service: deps.AppName})
	})

	api := app.Group("/api")

	// Liquidaciones (protegido sólo si hay JWT_SECRET)
	statements := api.Group("/statements")
	if deps.JWTSecret != "" {
		statements.Use(AuthMiddleware(deps.JWTSecret))
	}
	h := NewStatementHandler(deps.Report)
	statements.Post("/summary", h.Summary)
	statements.Post("/report", h.Report)
}
