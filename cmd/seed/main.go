// seed carga el catálogo inicial y el usuario administrador.
//
// Uso: go run ./cmd/seed
// Requiere SEED_ADMIN_PASSWORD para crear el administrador; sin él solo carga productos.
package main

import (
	"context"
	"os"
	"time"

	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/domain/inventory"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/cache"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/storage"
	"github.com/jhoicas/tienda-pos/pkg/config"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("cargar configuración: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: cfg.App.Name + "-seed"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	repos, err := storage.Open(ctx, cfg, log.Component("storage"))
	if err != nil {
		log.Fatal().Err(err).Msg("abrir almacenamiento")
	}
	defer repos.Close()

	policy, err := inventory.ParseSKUPolicy(cfg.Catalog.SKUPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("SKU_POLICY")
	}
	products := usecase.NewProductUseCase(repos.Products, inventory.NewSKUGenerator(policy), cache.Noop{}, log.Component("products"))
	created, err := usecase.NewSeedUseCase(products, log.Component("seed")).SeedCatalog(ctx)
	if err != nil {
		log.Fatal().Err(err).Int("created", created).Msg("seed de productos")
	}

	if cfg.Seed.AdminPassword == "" {
		log.Warn().Msg("SEED_ADMIN_PASSWORD vacío: no se crea administrador")
		return
	}
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{
		Secret: cfg.JWT.Secret, ExpMinutes: cfg.JWT.Expiration, Issuer: cfg.JWT.Issuer,
	}, log.Component("auth"))
	ok, err := authUC.EnsureAdmin(ctx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		log.Fatal().Err(err).Msg("crear administrador")
	}
	log.Info().Bool("created", ok).Str("email", cfg.Seed.AdminEmail).Msg("administrador listo")
}
