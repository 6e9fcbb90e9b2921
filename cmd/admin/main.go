package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/jhoicas/Inventario-admin/internal/application/ports"
	"github.com/jhoicas/Inventario-admin/internal/application/productview"
	infrapdf "github.com/jhoicas/Inventario-admin/internal/infrastructure/pdf"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/restapi"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/toast"
	httpRouter "github.com/jhoicas/Inventario-admin/internal/interfaces/http"
	"github.com/jhoicas/Inventario-admin/internal/interfaces/web"
	"github.com/jhoicas/Inventario-admin/pkg/config"
	"github.com/jhoicas/Inventario-admin/pkg/jwt"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
	"github.com/jhoicas/Inventario-admin/pkg/money"
)

// serviceTokenTTL vida de cada token de servicio enviado a la API de productos.
const serviceTokenTTL = 5 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("api", cfg.API.BaseURL).
		Msg("iniciando consola de productos")

	source := restapi.NewProductClient(cfg.API.BaseURL, cfg.API.Token, cfg.API.Timeout())
	if cfg.API.JWTSecret != "" {
		source.WithTokenSource(jwt.TokenSource(cfg.API.JWTSecret, cfg.App.Name, cfg.App.Name, serviceTokenTTL))
	}
	formatter := money.NewFormatter(cfg.View.CurrencyPrefix, cfg.View.Locale)

	renderer, err := web.NewRenderer(formatter, cfg.View.SkeletonRows)
	if err != nil {
		log.Fatal().Err(err).Msg("plantillas")
	}

	// Una vista y un tablero de toasts por sesión de navegador.
	viewLog := log.Named("productview")
	sessions := productview.NewRegistry(cfg.View.SessionTTL(), func() (*productview.ProductListView, ports.NoticeBoard) {
		center := toast.NewCenter(cfg.View.ToastAutoClose())
		return productview.New(source, center, viewLog), center
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        renderer.Views(),
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.API.Timeout() + time.Second*10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": sessions.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:   sessions,
		SessionTTL: cfg.View.SessionTTL(),
		Renderer:   renderer,
		Exporter:   infrapdf.NewProductListPDF(formatter),
		Log:        log,
	})

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

	log.Info().Msg("consola detenida")
}
