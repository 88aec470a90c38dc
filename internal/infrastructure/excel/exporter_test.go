package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/excel"
)

func TestExporter_ExportTable(t *testing.T) {
	exp := excel.NewExporter()
	assert.Equal(t, "xlsx", exp.Format())

	table := ports.Table{
		Title:   "Gastos operativos",
		Columns: []string{"Fecha", "Descripción", "Categoría", "Monto"},
		Rows: [][]any{
			{time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC), "Luz", "SERVICIOS", decimal.RequireFromString("850.50")},
			{time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), "Renta", "ADMINISTRATIVO", decimal.RequireFromString("4000")},
		},
		Footer: []any{"Total", "", "", decimal.RequireFromString("4850.50")},
	}
	body, err := exp.ExportTable(entity.BusinessProfile{Name: "Pulpería Lupita", RTN: "08011999000001"}, table)
	require.NoError(t, err)
	require.NotEmpty(t, body)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue("Reporte", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Gastos operativos", title)

	business, _ := f.GetCellValue("Reporte", "A2")
	assert.Contains(t, business, "Pulpería Lupita")

	header, _ := f.GetCellValue("Reporte", "D5")
	assert.Equal(t, "Monto", header)

	desc, _ := f.GetCellValue("Reporte", "B7")
	assert.Equal(t, "Renta", desc)

	raw, err := f.GetCellValue("Reporte", "D8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "4850.5", raw)
}

func TestExporter_EmptyTable(t *testing.T) {
	body, err := excel.NewExporter().ExportTable(entity.BusinessProfile{}, ports.Table{
		Title:   "Historial de ventas",
		Columns: []string{"Fecha", "Venta"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer f.Close()
	business, _ := f.GetCellValue("Reporte", "A2")
	assert.Equal(t, "Mi Tienda", business)
}
