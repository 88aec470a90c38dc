// Package storage arma el conjunto de repositorios según STORE_DRIVER.
package storage

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/postgres"
	"github.com/jhoicas/tienda-pos/pkg/config"
)

// Repos agrupa los repositorios y el runner transaccional de un mismo almacenamiento.
type Repos struct {
	Products  repository.ProductRepository
	Sales     repository.SaleRepository
	Purchases repository.PurchaseRepository
	Expenses  repository.ExpenseRepository
	Periods   repository.InventoryPeriodRepository
	Users     repository.UserRepository
	Profile   repository.BusinessProfileRepository
	Tx        ports.TxRunner
	// Close libera conexiones; nunca es nil.
	Close func()
}

// Open conecta al almacenamiento configurado. Con postgres aplica las migraciones pendientes.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Repos, error) {
	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		return Memory(memory.New()), nil
	case config.StorePostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB, log)
		if err != nil {
			return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
		}
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, fmt.Errorf("migraciones: %w", err)
		}
		for _, name := range applied {
			log.Info().Str("migration", name).Msg("migración aplicada")
		}
		return &Repos{
			Products:  postgres.NewProductRepository(pool),
			Sales:     postgres.NewSaleRepository(pool),
			Purchases: postgres.NewPurchaseRepository(pool),
			Expenses:  postgres.NewExpenseRepository(pool),
			Periods:   postgres.NewInventoryPeriodRepository(pool),
			Users:     postgres.NewUserRepository(pool),
			Profile:   postgres.NewBusinessProfileRepository(pool),
			Tx:        postgres.NewTxRunner(pool),
			Close:     pool.Close,
		}, nil
	default:
		return nil, fmt.Errorf("STORE_DRIVER desconocido: %q", cfg.Store.Driver)
	}
}

// Memory expone un memory.Store como Repos.
func Memory(s *memory.Store) *Repos {
	return &Repos{
		Products:  s.Products(),
		Sales:     s.Sales(),
		Purchases: s.Purchases(),
		Expenses:  s.Expenses(),
		Periods:   s.Periods(),
		Users:     s.Users(),
		Profile:   s.BusinessProfile(),
		Tx:        s.TxRunner(),
		Close:     func() {},
	}
}
