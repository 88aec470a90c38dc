package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain"
)

// catálogo inicial de una tienda nueva
var seedProducts = []dto.CreateProductRequest{
	{Name: "Tajo de Res", SKU: "CAR-0001", Category: "Carnes", CostPrice: decimal.NewFromInt(80), SellPrice: decimal.NewFromInt(120), Stock: 15, MinStock: 5},
	{Name: "Leche Entera", SKU: "LAC-0001", Category: "Lácteos", CostPrice: decimal.NewFromInt(25), SellPrice: decimal.NewFromInt(32), Stock: 50, MinStock: 10},
	{Name: "Pan Molde Blanco", SKU: "PAN-0001", Category: "Panadería", CostPrice: decimal.NewFromInt(35), SellPrice: decimal.NewFromInt(50), Stock: 20, MinStock: 5},
	{Name: "Refresco Cola 3L", SKU: "BEB-0001", Category: "Agua y Refrescos", CostPrice: decimal.NewFromInt(45), SellPrice: decimal.NewFromInt(60), Stock: 30, MinStock: 8},
	{Name: "Jabón de Baño", SKU: "PER-0001", Category: "Higiene Personal", CostPrice: decimal.NewFromInt(15), SellPrice: decimal.NewFromInt(25), Stock: 40, MinStock: 10},
}

// SeedUseCase carga datos de arranque.
type SeedUseCase struct {
	products *ProductUseCase
	log      zerolog.Logger
}

func NewSeedUseCase(products *ProductUseCase, log zerolog.Logger) *SeedUseCase {
	return &SeedUseCase{products: products, log: log}
}

// SeedCatalog crea el catálogo inicial solo si no hay productos. Devuelve
// cuántos creó.
func (uc *SeedUseCase) SeedCatalog(ctx context.Context) (int, error) {
	n, err := uc.products.repo.Count(ctx)
	if err != nil {
		return 0, domain.Persistence("contar productos", err)
	}
	if n > 0 {
		uc.log.Info().Int("products", n).Msg("catálogo existente, seed omitido")
		return 0, nil
	}
	for i, p := range seedProducts {
		if _, err := uc.products.Create(ctx, p); err != nil {
			return i, err
		}
	}
	uc.log.Info().Int("products", len(seedProducts)).Msg("catálogo inicial creado")
	return len(seedProducts), nil
}
