package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/application/inventory"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	domaininv "github.com/jhoicas/tienda-pos/internal/domain/inventory"
	infraai "github.com/jhoicas/tienda-pos/internal/infrastructure/ai"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/cache"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/excel"
	infrapdf "github.com/jhoicas/tienda-pos/internal/infrastructure/pdf"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/tienda-pos/internal/interfaces/http"
	"github.com/jhoicas/tienda-pos/pkg/config"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer repos.Close()

	// Caché de reportes: Redis si está configurado, si no se calcula en cada petición.
	var reportCache ports.ReportCache = cache.Noop{}
	if cfg.Redis.Addr != "" {
		client, err := cache.NewClient(ctx, cfg.Redis)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, reportes sin caché")
		} else {
			defer client.Close()
			reportCache = cache.NewRedisCache(client, cfg.Redis.TTL)
		}
	}

	policy, err := domaininv.ParseSKUPolicy(cfg.Catalog.SKUPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("SKU_POLICY")
	}
	insightSvc, err := infraai.NewInsightService(cfg.AI)
	if err != nil {
		log.Fatal().Err(err).Msg("AI_PROVIDER")
	}

	secret := jwtSecret(cfg, log)
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret:     secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log.Component("auth"))
	productUC := usecase.NewProductUseCase(repos.Products, domaininv.NewSKUGenerator(policy), reportCache, log.Component("products"))
	profileUC := usecase.NewBusinessProfileUseCase(repos.Profile, entity.BusinessProfile{
		Name:    cfg.Business.Name,
		Address: cfg.Business.Address,
		Phone:   cfg.Business.Phone,
		RTN:     cfg.Business.RTN,
	}, log.Component("settings"))

	sources := analytics.Sources{
		Products:  repos.Products,
		Sales:     repos.Sales,
		Purchases: repos.Purchases,
		Expenses:  repos.Expenses,
		Periods:   repos.Periods,
	}
	pnlUC := analytics.NewPnLUseCase(sources, reportCache, log.Component("pnl"))
	documentUC := analytics.NewDocumentUseCase(sources, pnlUC, profileUC, infrapdf.NewMarotoRenderer(), log.Component("documents"), excel.NewExporter())

	// En memoria el arranque queda listo para probar: catálogo y admin.
	if cfg.Store.Driver == config.StoreMemory {
		if _, err := usecase.NewSeedUseCase(productUC, log.Component("seed")).SeedCatalog(ctx); err != nil {
			log.Fatal().Err(err).Msg("seed de productos")
		}
	}
	if cfg.Seed.AdminPassword != "" {
		if _, err := authUC.EnsureAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
			log.Fatal().Err(err).Msg("crear administrador")
		}
	}

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:        cfg.App.Name,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Log:            log.Component("http"),
	}, httpRouter.RouterDeps{
		AuthUC:     authUC,
		UserUC:     usecase.NewUserUseCase(repos.Users),
		ProductUC:  productUC,
		SaleUC:     inventory.NewSaleUseCase(repos.Tx, repos.Sales, reportCache, log.Component("sales")),
		PurchaseUC: inventory.NewPurchaseUseCase(repos.Tx, repos.Purchases, reportCache, log.Component("purchases")),
		PeriodUC:   inventory.NewPeriodUseCase(repos.Tx, repos.Periods, reportCache, log.Component("periods")),
		ExpenseUC:  usecase.NewExpenseUseCase(repos.Expenses, reportCache, log.Component("expenses")),
		ProfileUC:  profileUC,
		PnLUC:      pnlUC,
		InsightUC:  analytics.NewInsightUseCase(pnlUC, insightSvc, log.Component("insight")),
		DocumentUC: documentUC,
		JWTSecret:  secret,
	},
		// Swagger UI en local: http://localhost:<port>/docs
		swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: "./docs/swagger.json",
			Path:     "docs",
			Title:    "Tienda POS API",
		}),
	)

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

// devSecret solo se usa en development sin JWT_SECRET; Validate lo impide en otros entornos.
const devSecret = "tienda-pos-dev-secret"

func jwtSecret(cfg *config.Config, log *logger.Logger) string {
	if cfg.JWT.Secret != "" {
		return cfg.JWT.Secret
	}
	log.Warn().Msg("JWT_SECRET vacío: usando secreto de desarrollo")
	return devSecret
}
