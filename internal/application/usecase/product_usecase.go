package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/analytics"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/inventory"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// ProductUseCase casos de uso del catálogo. El costo promedio y el stock
// cambian normalmente vía compras y ventas; aquí solo se ajustan a mano.
type ProductUseCase struct {
	repo  repository.ProductRepository
	skus  *inventory.SKUGenerator
	cache ports.ReportCache
	log   zerolog.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(
	repo repository.ProductRepository,
	skus *inventory.SKUGenerator,
	cache ports.ReportCache,
	log zerolog.Logger,
) *ProductUseCase {
	return &ProductUseCase{repo: repo, skus: skus, cache: cache, log: log}
}

// Create crea un producto. Sin SKU se genera uno con el prefijo de la categoría.
// Devuelve un error Duplicate si el SKU ya existe.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("el nombre del producto es obligatorio")
	}
	category := canonicalCategory(in.Category)
	if category == "" {
		return nil, domain.Validation("la categoría es obligatoria")
	}
	if err := checkAmounts(in.CostPrice, in.SellPrice, in.Stock, in.MinStock); err != nil {
		return nil, err
	}

	sku := normalizeSKU(in.SKU)
	if sku == "" {
		generated, err := uc.nextSKU(ctx, category)
		if err != nil {
			return nil, err
		}
		sku = generated
	}
	if err := uc.ensureUniqueSKU(ctx, sku, ""); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		Name:        name,
		SKU:         sku,
		Description: strings.TrimSpace(in.Description),
		Category:    category,
		CostPrice:   in.CostPrice.Round(inventory.CurrencyPlaces),
		SellPrice:   in.SellPrice.Round(inventory.CurrencyPlaces),
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, domain.Persistence("crear producto", err)
	}
	uc.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("producto creado")
	analytics.InvalidateReports(ctx, uc.cache, uc.log)
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener producto", err)
	}
	if product == nil {
		return nil, domain.NotFound("producto %s no encontrado", id)
	}
	return toProductResponse(product), nil
}

// Update aplica los campos presentes. Un SKU nuevo se valida contra el resto
// del catálogo igual que en Create.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener producto", err)
	}
	if product == nil {
		return nil, domain.NotFound("producto %s no encontrado", id)
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return nil, domain.Validation("el nombre del producto es obligatorio")
		}
		product.Name = name
	}
	if in.Description != nil {
		product.Description = strings.TrimSpace(*in.Description)
	}
	if in.Category != nil {
		category := canonicalCategory(*in.Category)
		if category == "" {
			return nil, domain.Validation("la categoría es obligatoria")
		}
		product.Category = category
	}
	if in.SKU != nil {
		sku := normalizeSKU(*in.SKU)
		if sku == "" {
			return nil, domain.Validation("el SKU no puede quedar vacío")
		}
		if sku != product.SKU {
			if err := uc.ensureUniqueSKU(ctx, sku, product.ID); err != nil {
				return nil, err
			}
		}
		product.SKU = sku
	}
	if in.CostPrice != nil {
		product.CostPrice = in.CostPrice.Round(inventory.CurrencyPlaces)
	}
	if in.SellPrice != nil {
		product.SellPrice = in.SellPrice.Round(inventory.CurrencyPlaces)
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if err := checkAmounts(product.CostPrice, product.SellPrice, product.Stock, product.MinStock); err != nil {
		return nil, err
	}

	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, domain.Persistence("actualizar producto", err)
	}
	uc.log.Info().Str("product_id", product.ID).Str("sku", product.SKU).Msg("producto actualizado")
	analytics.InvalidateReports(ctx, uc.cache, uc.log)
	return toProductResponse(product), nil
}

// List lista el catálogo ordenado por nombre, con búsqueda y filtro de categoría.
func (uc *ProductUseCase) List(ctx context.Context, in dto.ProductListRequest) (dto.ListResponse[dto.ProductResponse], error) {
	filter := repository.ProductFilter{Query: strings.TrimSpace(in.Query)}
	if strings.TrimSpace(in.Category) != "" {
		filter.Category = canonicalCategory(in.Category)
	}
	list, err := uc.repo.List(ctx, filter)
	if err != nil {
		return dto.ListResponse[dto.ProductResponse]{}, domain.Persistence("listar productos", err)
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return dto.NewList(items), nil
}

// LowStock devuelve los productos en o bajo su punto de reorden, los más
// urgentes primero, con la cantidad sugerida de pedido.
func (uc *ProductUseCase) LowStock(ctx context.Context) (dto.ListResponse[dto.LowStockItemResponse], error) {
	list, err := uc.repo.ListBelowMinStock(ctx)
	if err != nil {
		return dto.ListResponse[dto.LowStockItemResponse]{}, domain.Persistence("listar stock bajo", err)
	}
	items := make([]dto.LowStockItemResponse, 0, len(list))
	for _, p := range list {
		ideal := (p.MinStock*3 + 1) / 2 // ceil(1.5 × MinStock)
		suggested := max(ideal-p.Stock, 0)
		items = append(items, dto.LowStockItemResponse{
			Product:       *toProductResponse(p),
			Deficit:       p.MinStock - p.Stock,
			SuggestedQty:  suggested,
			EstimatedCost: p.CostPrice.Mul(decimal.NewFromInt(int64(suggested))).Round(inventory.CurrencyPlaces),
		})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Deficit != items[j].Deficit {
			return items[i].Deficit > items[j].Deficit
		}
		return items[i].Product.Name < items[j].Product.Name
	})
	return dto.NewList(items), nil
}

// NextSKU muestra el SKU que recibiría un producto nuevo de la categoría.
// Con la política aleatoria cada llamada puede devolver un código distinto.
func (uc *ProductUseCase) NextSKU(ctx context.Context, category string) (*dto.NextSKUResponse, error) {
	category = canonicalCategory(category)
	if category == "" {
		return nil, domain.Validation("la categoría es obligatoria")
	}
	sku, err := uc.nextSKU(ctx, category)
	if err != nil {
		return nil, err
	}
	return &dto.NextSKUResponse{
		Category: category,
		Prefix:   entity.CategoryPrefix(category),
		SKU:      sku,
		Policy:   string(uc.skus.Policy()),
	}, nil
}

// Categories devuelve las categorías oficiales con su prefijo.
func (uc *ProductUseCase) Categories() []dto.CategoryResponse {
	out := make([]dto.CategoryResponse, 0, len(entity.OfficialCategories))
	for _, c := range entity.OfficialCategories {
		out = append(out, dto.CategoryResponse{Name: c.Name, Prefix: c.Code})
	}
	return out
}

func (uc *ProductUseCase) nextSKU(ctx context.Context, category string) (string, error) {
	existing, err := uc.repo.ListSKUsByPrefix(ctx, entity.CategoryPrefix(category))
	if err != nil {
		return "", domain.Persistence("listar SKU", err)
	}
	return uc.skus.Next(category, existing)
}

// ensureUniqueSKU falla si sku pertenece a otro producto distinto de selfID.
func (uc *ProductUseCase) ensureUniqueSKU(ctx context.Context, sku, selfID string) error {
	other, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil {
		return domain.Persistence("buscar SKU", err)
	}
	if other != nil && other.ID != selfID {
		return domain.DuplicateSKU(sku)
	}
	return nil
}

func checkAmounts(cost, sell decimal.Decimal, stock, minStock int) error {
	switch {
	case cost.IsNegative():
		return domain.Validation("el costo no puede ser negativo")
	case sell.IsNegative():
		return domain.Validation("el precio de venta no puede ser negativo")
	case stock < 0:
		return domain.Validation("el stock no puede ser negativo")
	case minStock < 0:
		return domain.Validation("el stock mínimo no puede ser negativo")
	}
	return nil
}

// canonicalCategory devuelve el nombre oficial si la categoría es conocida
// ("lacteos" → "Lácteos"); si no, el texto recortado tal cual.
func canonicalCategory(s string) string {
	if c, ok := entity.LookupCategory(s); ok {
		return c.Name
	}
	return strings.TrimSpace(s)
}

func normalizeSKU(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		SKU:         p.SKU,
		Description: p.Description,
		Category:    p.Category,
		CostPrice:   p.CostPrice,
		SellPrice:   p.SellPrice,
		Stock:       p.Stock,
		MinStock:    p.MinStock,
		LowStock:    p.BelowMinStock(),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
