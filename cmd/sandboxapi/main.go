// Command sandboxapi sirve un catálogo de productos en memoria con la misma forma que
// el servicio REST real, para desarrollo local de la consola.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-admin/internal/application/dto"
	"github.com/jhoicas/Inventario-admin/internal/application/usecase"
	"github.com/jhoicas/Inventario-admin/internal/domain/repository"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/memory"
	"github.com/jhoicas/Inventario-admin/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Inventario-admin/internal/interfaces/http"
	"github.com/jhoicas/Inventario-admin/pkg/config"
	"github.com/jhoicas/Inventario-admin/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.Log.Level,
		Service: cfg.App.Name + "-sandbox",
	})

	var repo repository.ProductRepository = memory.NewProductRepository()
	if cfg.Sandbox.DatabaseURL != "" {
		ctx := context.Background()
		pool, err := postgres.NewPool(ctx, cfg.Sandbox.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("esquema del catálogo")
		}
		repo = postgres.NewProductRepository(pool)
		log.Info().Msg("catálogo en PostgreSQL")
	}

	productUC := usecase.NewProductUseCase(repo)
	if cfg.App.Env == "development" && cfg.Sandbox.DatabaseURL == "" {
		seed(productUC, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-sandbox",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("sandbox")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: cfg.Docs.SwaggerPath,
		Path:     "docs",
		Title:    "Sandbox Produk API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name + "-sandbox"})
	})

	httpRouter.SandboxRouter(app, httpRouter.SandboxDeps{
		ProductUC: productUC,
		JWTSecret: cfg.API.JWTSecret,
	})

	go func() {
		log.Info().Str("addr", cfg.Sandbox.Addr()).Msg("sandbox escuchando")
		if err := app.Listen(cfg.Sandbox.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
}

// seed carga algunos productos de ejemplo.
func seed(uc *usecase.ProductUseCase, log *logger.Logger) {
	items := []dto.ProductPayload{
		{Name: "Kopi Arabika Gayo", Price: decimal.NewFromInt(85000), Stock: 24},
		{Name: "Teh Hijau Melati", Price: decimal.NewFromInt(18500), Stock: 60},
		{Name: "Gula Aren Cair", Price: decimal.NewFromInt(32000), Stock: 0},
	}
	for _, in := range items {
		if _, err := uc.Create(in); err != nil {
			log.Warn().Err(err).Str("name", in.Name).Msg("seed")
		}
	}
}
