package analytics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/finance"
)

// Listados exportables.
const (
	ExportSales     = "sales"
	ExportPurchases = "purchases"
	ExportExpenses  = "expenses"
)

// ProfileSource entrega los datos del negocio para los encabezados.
type ProfileSource interface {
	Profile(ctx context.Context) (entity.BusinessProfile, error)
}

// Document es un archivo listo para descargar.
type Document struct {
	Filename    string
	ContentType string
	Body        []byte
}

// DocumentUseCase genera el ticket de venta, el P&G en PDF y las
// exportaciones de listados en PDF o Excel.
type DocumentUseCase struct {
	src       Sources
	pnl       *PnLUseCase
	profile   ProfileSource
	renderer  ports.DocumentRenderer
	exporters map[string]ports.TableExporter
	log       zerolog.Logger
}

// NewDocumentUseCase construye el caso de uso. El renderer PDF también
// atiende exportaciones con formato "pdf".
func NewDocumentUseCase(
	src Sources,
	pnl *PnLUseCase,
	profile ProfileSource,
	renderer ports.DocumentRenderer,
	log zerolog.Logger,
	exporters ...ports.TableExporter,
) *DocumentUseCase {
	byFormat := map[string]ports.TableExporter{renderer.Format(): renderer}
	for _, e := range exporters {
		byFormat[e.Format()] = e
	}
	return &DocumentUseCase{src: src, pnl: pnl, profile: profile, renderer: renderer, exporters: byFormat, log: log}
}

// SaleReceipt genera el ticket PDF de una venta.
func (uc *DocumentUseCase) SaleReceipt(ctx context.Context, saleID string) (*Document, error) {
	sale, err := uc.src.Sales.GetByID(ctx, saleID)
	if err != nil {
		return nil, domain.Persistence("obtener venta", err)
	}
	if sale == nil {
		return nil, domain.NotFound("venta %s no encontrada", saleID)
	}
	profile, err := uc.profile.Profile(ctx)
	if err != nil {
		return nil, err
	}
	body, err := uc.renderer.RenderReceipt(profile, sale)
	if err != nil {
		return nil, fmt.Errorf("ticket: generar PDF: %w", err)
	}
	return &Document{
		Filename:    fmt.Sprintf("ticket-%s.pdf", shortID(sale.ID)),
		ContentType: uc.renderer.ContentType(),
		Body:        body,
	}, nil
}

// PnLDocument genera el estado de resultados en PDF con el detalle de gastos.
func (uc *DocumentUseCase) PnLDocument(ctx context.Context) (*Document, error) {
	in, err := uc.pnl.Load(ctx)
	if err != nil {
		return nil, err
	}
	profile, err := uc.profile.Profile(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	report := ToPnLReport(finance.Calculate(in), now)
	body, err := uc.renderer.RenderPnL(profile, *report, in.Expenses)
	if err != nil {
		return nil, fmt.Errorf("estado de resultados: generar PDF: %w", err)
	}
	return &Document{
		Filename:    "estado-resultados-" + now.Format("2006-01-02") + ".pdf",
		ContentType: uc.renderer.ContentType(),
		Body:        body,
	}, nil
}

// Export genera el listado kind (sales, purchases, expenses) en format
// (pdf o xlsx; vacío equivale a pdf).
func (uc *DocumentUseCase) Export(ctx context.Context, kind, format string) (*Document, error) {
	if format == "" {
		format = uc.renderer.Format()
	}
	exporter, ok := uc.exporters[strings.ToLower(format)]
	if !ok {
		return nil, domain.Validation("formato de exportación no soportado: %q", format)
	}

	var table ports.Table
	var err error
	switch kind {
	case ExportSales:
		table, err = uc.salesTable(ctx)
	case ExportPurchases:
		table, err = uc.purchasesTable(ctx)
	case ExportExpenses:
		table, err = uc.expensesTable(ctx)
	default:
		return nil, domain.Validation("listado desconocido: %q", kind)
	}
	if err != nil {
		return nil, err
	}

	profile, err := uc.profile.Profile(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	table.Subtitle = "Generado: " + now.Format("02/01/2006 15:04") + " · " + monthLabel(now)
	body, err := exporter.ExportTable(profile, table)
	if err != nil {
		return nil, fmt.Errorf("exportar %s: %w", kind, err)
	}
	uc.log.Info().Str("kind", kind).Str("format", exporter.Format()).Int("rows", len(table.Rows)).Msg("listado exportado")
	return &Document{
		Filename:    fmt.Sprintf("%s-%s.%s", kind, now.Format("2006-01-02"), exporter.Format()),
		ContentType: exporter.ContentType(),
		Body:        body,
	}, nil
}

func (uc *DocumentUseCase) salesTable(ctx context.Context) (ports.Table, error) {
	sales, err := uc.src.Sales.ListWithItems(ctx)
	if err != nil {
		return ports.Table{}, domain.Persistence("listar ventas", err)
	}
	t := ports.Table{
		Title:   "Historial de ventas",
		Columns: []string{"Fecha", "Venta", "Productos", "Método de pago", "Total"},
	}
	total := decimal.Zero
	for _, s := range sales {
		names := make([]string, 0, len(s.Items))
		for _, it := range s.Items {
			names = append(names, fmt.Sprintf("%s x%d", it.ProductName, it.Quantity))
		}
		t.Rows = append(t.Rows, []any{s.CreatedAt, shortID(s.ID), strings.Join(names, ", "), s.PaymentMethod, s.TotalAmount})
		total = total.Add(s.TotalAmount)
	}
	t.Footer = []any{"Total", "", fmt.Sprintf("%d ventas", len(sales)), "", total}
	return t, nil
}

func (uc *DocumentUseCase) purchasesTable(ctx context.Context) (ports.Table, error) {
	purchases, err := uc.src.Purchases.ListWithItems(ctx)
	if err != nil {
		return ports.Table{}, domain.Persistence("listar compras", err)
	}
	t := ports.Table{
		Title:   "Historial de compras",
		Columns: []string{"Fecha", "Proveedor", "Productos", "Total"},
	}
	total := decimal.Zero
	for _, p := range purchases {
		names := make([]string, 0, len(p.Items))
		for _, it := range p.Items {
			names = append(names, fmt.Sprintf("%s x%d", it.ProductName, it.Quantity))
		}
		t.Rows = append(t.Rows, []any{p.CreatedAt, p.SupplierName, strings.Join(names, ", "), p.TotalAmount})
		total = total.Add(p.TotalAmount)
	}
	t.Footer = []any{"Total", "", fmt.Sprintf("%d compras", len(purchases)), total}
	return t, nil
}

func (uc *DocumentUseCase) expensesTable(ctx context.Context) (ports.Table, error) {
	expenses, err := uc.src.Expenses.List(ctx)
	if err != nil {
		return ports.Table{}, domain.Persistence("listar gastos", err)
	}
	t := ports.Table{
		Title:   "Gastos operativos",
		Columns: []string{"Fecha", "Descripción", "Categoría", "Monto"},
	}
	total := decimal.Zero
	for _, e := range expenses {
		t.Rows = append(t.Rows, []any{e.CreatedAt, e.Description, e.Category, e.Amount})
		total = total.Add(e.Amount)
	}
	t.Footer = []any{"Total", "", "", total}
	return t, nil
}

// shortID devuelve los primeros 8 caracteres de un UUID, como en caja.
func shortID(id string) string {
	if len(id) > 8 {
		return strings.ToUpper(id[:8])
	}
	return strings.ToUpper(id)
}
