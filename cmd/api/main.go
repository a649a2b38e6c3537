package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/control-tarjeta/internal/bootstrap"
	httpRouter "github.com/jhoicas/control-tarjeta/internal/interfaces/http"
	"github.com/jhoicas/control-tarjeta/pkg/config"
	"github.com/jhoicas/control-tarjeta/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Int("upload_max_mb", cfg.Upload.MaxMB).
		Bool("auth", cfg.JWT.Enabled()).
		Msg("iniciando aplicación")

	reportUC := bootstrap.NewReportUseCase(cfg, log)

	deps := httpRouter.RouterDeps{
		AppName:   cfg.App.Name,
		Report:    reportUC,
		Log:       log,
		JWTSecret: cfg.JWT.Secret,
	}
	app := httpRouter.NewApp(deps)

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat("./docs/swagger.json"); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Control Tarjeta Cabal Credicoop API",
		}))
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
