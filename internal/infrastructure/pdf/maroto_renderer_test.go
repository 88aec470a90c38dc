package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/pdf"
)

var profile = entity.BusinessProfile{Name: "Pulpería Lupita", Address: "Col. Kennedy, Tegucigalpa", RTN: "08011999000001"}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertPDF(t *testing.T, body []byte) {
	t.Helper()
	require.NotEmpty(t, body)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")), "no parece un PDF")
}

func TestRenderPnL(t *testing.T) {
	report := dto.PnLReportDTO{
		PeriodName:        "Marzo 2026",
		Revenue:           dec("1200"),
		InitialInventory:  dec("5000"),
		Purchases:         dec("800"),
		EndingInventory:   dec("5100"),
		COGS:              dec("700"),
		GrossProfit:       dec("500"),
		SellingExpenses:   dec("100"),
		AdminExpenses:     dec("250"),
		OperatingExpenses: dec("350"),
		NetProfit:         dec("150"),
		Warnings:          []dto.PnLWarningDTO{{Code: "COGS_CLAMPED", Message: "revisar"}},
		GeneratedAt:       time.Now(),
	}
	expenses := []*entity.Expense{
		{ID: "e1", Description: "Luz", Category: entity.ExpenseServices, Amount: dec("100"), CreatedAt: time.Now()},
	}
	body, err := pdf.NewMarotoRenderer().RenderPnL(profile, report, expenses)
	require.NoError(t, err)
	assertPDF(t, body)
}

func TestRenderReceipt(t *testing.T) {
	sale := &entity.Sale{
		ID:            "3f2a9c1e-0000-4000-8000-000000000001",
		PaymentMethod: entity.PaymentCash,
		TotalAmount:   dec("152"),
		CreatedAt:     time.Now(),
		Items: []entity.SaleItem{
			{ProductID: "p1", ProductName: "Leche Entera", Quantity: 2, UnitPrice: dec("32"), UnitCost: dec("25")},
			{ProductID: "p2", ProductName: "Refresco Cola 3L", Quantity: 1, UnitPrice: dec("60"), UnitCost: dec("45")},
			{ProductID: "p3", ProductName: "Jabón de Baño", Quantity: 1, UnitPrice: dec("28"), UnitCost: dec("15")},
		},
	}
	body, err := pdf.NewMarotoRenderer().RenderReceipt(profile, sale)
	require.NoError(t, err)
	assertPDF(t, body)
}

func TestExportTable(t *testing.T) {
	r := pdf.NewMarotoRenderer()
	assert.Equal(t, "pdf", r.Format())

	body, err := r.ExportTable(profile, ports.Table{
		Title:   "Historial de compras",
		Columns: []string{"Fecha", "Proveedor", "Productos", "Total"},
		Rows:    [][]any{{time.Now(), "Lácteos Sula", "Leche Entera x24", dec("600")}},
		Footer:  []any{"Total", "", "1 compras", dec("600")},
	})
	require.NoError(t, err)
	assertPDF(t, body)

	empty, err := r.ExportTable(profile, ports.Table{Title: "Gastos", Columns: []string{"Fecha"}})
	require.NoError(t, err)
	assertPDF(t, empty)
}
