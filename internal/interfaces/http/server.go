package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
)

// ServerConfig parámetros del servidor Fiber.
type ServerConfig struct {
	AppName        string
	RequestTimeout time.Duration
	Log            zerolog.Logger
}

// NewApp crea la aplicación Fiber con middlewares comunes, /health y las rutas de la API.
// Las rutas extra (ej. swagger) se agregan con before antes del router.
func NewApp(cfg ServerConfig, deps RouterDeps, before ...fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(RequestLogger(cfg.Log))
	if cfg.RequestTimeout > 0 {
		app.Use(RequestTimeout(cfg.RequestTimeout))
	}
	for _, h := range before {
		app.Use(h)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.AppName})
	})

	Router(app, deps)
	return app
}
