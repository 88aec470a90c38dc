package inventory

import (
	"context"
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

// PurchaseUseCase registra compras a proveedores. Cada línea sube el stock
// y recalcula el costo promedio ponderado del producto, en orden.
type PurchaseUseCase struct {
	txRunner     ports.TxRunner
	purchaseRepo repository.PurchaseRepository
	cache        ports.ReportCache
	log          zerolog.Logger
}

// NewPurchaseUseCase construye el caso de uso.
func NewPurchaseUseCase(
	txRunner ports.TxRunner,
	purchaseRepo repository.PurchaseRepository,
	cache ports.ReportCache,
	log zerolog.Logger,
) *PurchaseUseCase {
	return &PurchaseUseCase{txRunner: txRunner, purchaseRepo: purchaseRepo, cache: cache, log: log}
}

// Create registra la compra dentro de una transacción. Un producto
// inexistente aborta la compra completa sin escribir nada.
func (uc *PurchaseUseCase) Create(ctx context.Context, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	supplier := strings.TrimSpace(in.SupplierName)
	if supplier == "" {
		return nil, domain.Validation("el nombre del proveedor es obligatorio")
	}
	if len(in.Items) == 0 {
		return nil, domain.Validation("la compra no tiene líneas")
	}
	for i, line := range in.Items {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.Validation("línea %d: producto y cantidad mayor que cero son obligatorios", i+1)
		}
		if line.UnitCost.IsNegative() {
			return nil, domain.Validation("línea %d: el costo unitario no puede ser negativo", i+1)
		}
	}

	now := time.Now()
	purchase := &entity.Purchase{
		ID:           uuid.New().String(),
		CreatedAt:    now,
		SupplierName: supplier,
		Items:        make([]entity.PurchaseItem, 0, len(in.Items)),
	}

	err := uc.txRunner.Run(ctx, func(repos ports.TxRepos) error {
		locked := make(map[string]*entity.Product, len(in.Items))
		touched := make([]*entity.Product, 0, len(in.Items))
		total := decimal.Zero

		for _, line := range in.Items {
			product, ok := locked[line.ProductID]
			if !ok {
				p, err := repos.Products.GetByIDForUpdate(ctx, line.ProductID)
				if err != nil {
					return err
				}
				if p == nil {
					return domain.NotFound("producto %s no encontrado; la compra no se registró", line.ProductID)
				}
				locked[line.ProductID] = p
				touched = append(touched, p)
				product = p
			}
			// El promedio usa el mismo costo que queda registrado en la línea.
			// Líneas repetidas se componen sobre el costo ya recalculado.
			unitCost := line.UnitCost.Round(inventory.CurrencyPlaces)
			inventory.ApplyPurchase(product, line.Quantity, unitCost)

			item := entity.PurchaseItem{
				PurchaseID:  purchase.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitCost:    unitCost,
			}
			purchase.Items = append(purchase.Items, item)
			total = total.Add(item.Subtotal())
		}
		purchase.TotalAmount = total.Round(inventory.CurrencyPlaces)

		for _, p := range touched {
			p.UpdatedAt = now
			if err := repos.Products.UpdateStockAndCost(ctx, p); err != nil {
				return err
			}
		}
		return repos.Purchases.Create(ctx, purchase)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("purchase_id", purchase.ID).Msg("compra rechazada")
		return nil, domain.Persistence("registrar compra", err)
	}

	uc.log.Info().
		Str("purchase_id", purchase.ID).
		Str("supplier", purchase.SupplierName).
		Str("total", purchase.TotalAmount.StringFixed(2)).
		Int("lines", len(purchase.Items)).
		Msg("compra registrada")
	analytics.InvalidateReports(ctx, uc.cache, uc.log)
	return toPurchaseResponse(purchase), nil
}

// List devuelve el historial de compras con sus líneas, más recientes primero.
func (uc *PurchaseUseCase) List(ctx context.Context) (dto.ListResponse[dto.PurchaseResponse], error) {
	purchases, err := uc.purchaseRepo.ListWithItems(ctx)
	if err != nil {
		return dto.ListResponse[dto.PurchaseResponse]{}, domain.Persistence("listar compras", err)
	}
	items := make([]dto.PurchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		items = append(items, *toPurchaseResponse(p))
	}
	return dto.NewList(items), nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	items := make([]dto.PurchaseItemResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, dto.PurchaseItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitCost:    it.UnitCost,
			Subtotal:    it.Subtotal().Round(inventory.CurrencyPlaces),
		})
	}
	return &dto.PurchaseResponse{
		ID:           p.ID,
		CreatedAt:    p.CreatedAt,
		SupplierName: p.SupplierName,
		TotalAmount:  p.TotalAmount,
		Items:        items,
	}
}
