// Package pdf genera los documentos PDF de la tienda con Maroto v2:
// estado de resultados, ticket de venta y listados exportables.
//
// Layout del estado de resultados (A4):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Negocio + RTN        │  ESTADO DE RESULTADOS + fecha │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Ingresos / Costo de ventas / Utilidad bruta                 │
//	│  Gastos de venta / administrativos / Utilidad neta           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  DETALLE DE GASTOS: Fecha | Descripción | Categoría | Monto  │
//	│  ADVERTENCIAS (si las hay)                                   │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
	colorGreen   = &props.Color{Red: 20, Green: 120, Blue: 60}
)

var _ ports.DocumentRenderer = (*MarotoRenderer)(nil)

// MarotoRenderer implementa ports.DocumentRenderer usando Maroto v2.
type MarotoRenderer struct{}

// NewMarotoRenderer construye el generador.
func NewMarotoRenderer() *MarotoRenderer { return &MarotoRenderer{} }

func (r *MarotoRenderer) Format() string      { return "pdf" }
func (r *MarotoRenderer) ContentType() string { return "application/pdf" }

// RenderPnL genera el estado de resultados con el detalle de gastos.
func (r *MarotoRenderer) RenderPnL(profile entity.BusinessProfile, report dto.PnLReportDTO, expenses []*entity.Expense) ([]byte, error) {
	m := newA4(profile, "Estado de Resultados")

	m.AddRows(headerRow(profile, "ESTADO DE RESULTADOS", report.PeriodName, report.GeneratedAt.Format("02/01/2006 15:04")))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(sectionRow("COSTO DE VENTAS"))
	m.AddRows(
		amountRow("Inventario inicial", report.InitialInventory, false),
		amountRow("(+) Compras", report.Purchases, false),
		amountRow("(−) Inventario final", report.EndingInventory, false),
		amountRow("Costo de ventas", report.COGS, true),
	)
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.2}))

	m.AddRows(sectionRow("RESULTADO"))
	m.AddRows(
		amountRow("Ingresos por ventas", report.Revenue, false),
		amountRow("(−) Costo de ventas", report.COGS, false),
		amountRow("Utilidad bruta", report.GrossProfit, true),
		amountRow("(−) Gastos de venta", report.SellingExpenses, false),
		amountRow("(−) Gastos administrativos", report.AdminExpenses, false),
		resultRow("UTILIDAD NETA", report.NetProfit),
	)

	if len(expenses) > 0 {
		m.AddRows(line.NewRow(4))
		m.AddRows(sectionRow("DETALLE DE GASTOS"))
		m.AddRows(tableRows(ports.Table{
			Columns: []string{"Fecha", "Descripción", "Categoría", "Monto"},
			Rows:    expenseCells(expenses),
			Footer:  []any{"Total", "", "", report.OperatingExpenses},
		})...)
	}

	if len(report.Warnings) > 0 {
		m.AddRows(line.NewRow(4))
		m.AddRows(sectionRow("ADVERTENCIAS"))
		for _, w := range report.Warnings {
			m.AddRows(row.New(6).Add(col.New(12).Add(
				text.New(w.Code+": "+w.Message, props.Text{Size: 8, Color: colorRed, Top: 1}),
			)))
		}
	}

	return generate(m)
}

// ExportTable genera un listado en A4 con totales al pie.
func (r *MarotoRenderer) ExportTable(profile entity.BusinessProfile, table ports.Table) ([]byte, error) {
	m := newA4(profile, table.Title)
	m.AddRows(headerRow(profile, upper(table.Title), "", table.Subtitle))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	if len(table.Rows) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Sin registros.", props.Text{Size: 9, Color: colorGray, Align: align.Center, Top: 3}),
		)))
		return generate(m)
	}
	m.AddRows(tableRows(table)...)
	return generate(m)
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func newA4(profile entity.BusinessProfile, title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		WithAuthor(nonEmpty(profile.Name, "tienda-pos"), true).
		Build()
	return maroto.New(cfg)
}

// headerRow: nombre del negocio + RTN (izq) y título + referencias (der).
func headerRow(profile entity.BusinessProfile, title, ref, date string) core.Row {
	return row.New(20).Add(
		col.New(7).Add(
			text.New(nonEmpty(profile.Name, "Mi Tienda"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("RTN: %s   |   Tel: %s", nonEmpty(profile.RTN, "N/D"), nonEmpty(profile.Phone, "N/D")), props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
			text.New(nonEmpty(profile.Address, ""), props.Text{
				Size: 8, Top: 14, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(ref, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New(date, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func sectionRow(title string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(title, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func amountRow(label string, amount decimal.Decimal, bold bool) core.Row {
	style := fontstyle.Normal
	if bold {
		style = fontstyle.Bold
	}
	return row.New(6).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 9, Style: style, Left: 4, Top: 1})),
		col.New(4).Add(text.New(formatMoney(amount), props.Text{Size: 9, Style: style, Align: align.Right, Right: 1, Top: 1})),
	)
}

// resultRow resalta la utilidad neta: verde si es positiva, rojo si hay pérdida.
func resultRow(label string, amount decimal.Decimal) core.Row {
	color := colorGreen
	if amount.IsNegative() {
		color = colorRed
	}
	return row.New(9).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 11, Style: fontstyle.Bold, Color: color, Left: 4, Top: 2})),
		col.New(4).Add(text.New(formatMoney(amount), props.Text{Size: 11, Style: fontstyle.Bold, Color: color, Align: align.Right, Right: 1, Top: 2})),
	)
}

func expenseCells(expenses []*entity.Expense) [][]any {
	out := make([][]any, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, []any{e.CreatedAt, e.Description, e.Category, e.Amount})
	}
	return out
}

func generate(m core.Maroto) ([]byte, error) {
	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}
