package inventory

import (
	"context"
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

// SaleUseCase cobra carritos y consulta el historial de ventas.
// El cobro es transaccional: bloquea las filas de producto (SELECT FOR UPDATE),
// descuenta stock y guarda cabecera y líneas, o no guarda nada.
type SaleUseCase struct {
	txRunner ports.TxRunner
	saleRepo repository.SaleRepository
	cache    ports.ReportCache
	log      zerolog.Logger
}

// NewSaleUseCase construye el caso de uso.
func NewSaleUseCase(
	txRunner ports.TxRunner,
	saleRepo repository.SaleRepository,
	cache ports.ReportCache,
	log zerolog.Logger,
) *SaleUseCase {
	return &SaleUseCase{txRunner: txRunner, saleRepo: saleRepo, cache: cache, log: log}
}

// Checkout registra la venta del carrito. Precio y costo de cada línea se
// toman del producto al momento de cobrar. Una línea sin stock suficiente
// aborta la venta completa con ErrInsufficientStock.
func (uc *SaleUseCase) Checkout(ctx context.Context, in dto.CheckoutRequest) (*dto.SaleResponse, error) {
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.Validation("método de pago inválido: %q", in.PaymentMethod)
	}
	if len(in.Items) == 0 {
		return nil, domain.Validation("el carrito está vacío")
	}
	for i, line := range in.Items {
		if line.ProductID == "" || line.Quantity <= 0 {
			return nil, domain.Validation("línea %d: producto y cantidad mayor que cero son obligatorios", i+1)
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		CreatedAt:     now,
		PaymentMethod: in.PaymentMethod,
		Items:         make([]entity.SaleItem, 0, len(in.Items)),
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
					return domain.NotFound("producto %s no encontrado", line.ProductID)
				}
				locked[line.ProductID] = p
				touched = append(touched, p)
				product = p
			}
			// Las líneas repetidas del mismo producto descuentan del stock ya reducido.
			if product.Stock < line.Quantity {
				return domain.InsufficientStock(product.Name, product.Stock, line.Quantity)
			}

			item := entity.SaleItem{
				SaleID:      sale.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Quantity:    line.Quantity,
				UnitPrice:   product.SellPrice,
				UnitCost:    product.CostPrice,
			}
			inventory.ApplySale(product, line.Quantity)
			sale.Items = append(sale.Items, item)
			total = total.Add(item.Subtotal())
		}
		sale.TotalAmount = total.Round(inventory.CurrencyPlaces)

		for _, p := range touched {
			p.UpdatedAt = now
			if err := repos.Products.UpdateStockAndCost(ctx, p); err != nil {
				return err
			}
		}
		return repos.Sales.Create(ctx, sale)
	})
	if err != nil {
		uc.log.Warn().Err(err).Str("sale_id", sale.ID).Msg("venta rechazada")
		return nil, domain.Persistence("registrar venta", err)
	}

	uc.log.Info().
		Str("sale_id", sale.ID).
		Str("payment_method", sale.PaymentMethod).
		Str("total", sale.TotalAmount.StringFixed(2)).
		Int("lines", len(sale.Items)).
		Msg("venta registrada")
	analytics.InvalidateReports(ctx, uc.cache, uc.log)
	return toSaleResponse(sale), nil
}

// List devuelve el historial de ventas con sus líneas, más recientes primero.
func (uc *SaleUseCase) List(ctx context.Context) (dto.ListResponse[dto.SaleResponse], error) {
	sales, err := uc.saleRepo.ListWithItems(ctx)
	if err != nil {
		return dto.ListResponse[dto.SaleResponse]{}, domain.Persistence("listar ventas", err)
	}
	items := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		items = append(items, *toSaleResponse(s))
	}
	return dto.NewList(items), nil
}

// GetByID obtiene una venta con sus líneas.
func (uc *SaleUseCase) GetByID(ctx context.Context, id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, domain.Persistence("obtener venta", err)
	}
	if sale == nil {
		return nil, domain.NotFound("venta %s no encontrada", id)
	}
	return toSaleResponse(sale), nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	items := make([]dto.SaleItemResponse, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			UnitCost:    it.UnitCost,
			Subtotal:    it.Subtotal().Round(inventory.CurrencyPlaces),
		})
	}
	return &dto.SaleResponse{
		ID:            s.ID,
		CreatedAt:     s.CreatedAt,
		TotalAmount:   s.TotalAmount,
		PaymentMethod: s.PaymentMethod,
		Items:         items,
	}
}
