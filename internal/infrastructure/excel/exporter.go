// Package excel exporta listados a hojas de cálculo .xlsx con excelize.
package excel

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

const sheetName = "Reporte"

// Formato contable con prefijo de lempiras.
const moneyFormat = `"L." #,##0.00;-"L." #,##0.00`

var _ ports.TableExporter = (*Exporter)(nil)

// Exporter implementa ports.TableExporter.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

func (e *Exporter) Format() string { return "xlsx" }

func (e *Exporter) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// ExportTable escribe título, negocio, cabecera, filas y totales en una hoja.
// Los montos quedan como números para que el usuario pueda sumarlos.
func (e *Exporter) ExportTable(profile entity.BusinessProfile, table ports.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	w := &sheetWriter{f: f, st: st}
	w.put(1, 1, table.Title, st.title)
	w.put(1, 2, businessLine(profile), 0)
	if table.Subtitle != "" {
		w.put(1, 3, table.Subtitle, 0)
	}

	const headerRow = 5
	for i, c := range table.Columns {
		w.put(i+1, headerRow, c, st.header)
	}
	r := headerRow + 1
	for _, cells := range table.Rows {
		w.row(r, cells, false)
		r++
	}
	if len(table.Footer) > 0 {
		w.row(r, table.Footer, true)
	}
	if w.err != nil {
		return nil, fmt.Errorf("excel: escribir celdas: %w", w.err)
	}

	for i := range table.Columns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		width := 16.0
		if i == 2 {
			width = 40
		}
		if err := f.SetColWidth(sheetName, colName, colName, width); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: generar archivo: %w", err)
	}
	return buf.Bytes(), nil
}

type styles struct {
	title, header, money, date, total, totalMoney int
}

func newStyles(f *excelize.File) (styles, error) {
	moneyFmt := moneyFormat
	dateFmt := "dd/mm/yyyy hh:mm"
	defs := []*excelize.Style{
		{Font: &excelize.Font{Bold: true, Size: 14, Color: "00467F"}},
		{
			Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
			Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"00467F"}},
		},
		{CustomNumFmt: &moneyFmt},
		{CustomNumFmt: &dateFmt},
		{Font: &excelize.Font{Bold: true}},
		{Font: &excelize.Font{Bold: true}, CustomNumFmt: &moneyFmt},
	}
	ids := make([]int, len(defs))
	for i, d := range defs {
		id, err := f.NewStyle(d)
		if err != nil {
			return styles{}, fmt.Errorf("excel: crear estilo: %w", err)
		}
		ids[i] = id
	}
	return styles{title: ids[0], header: ids[1], money: ids[2], date: ids[3], total: ids[4], totalMoney: ids[5]}, nil
}

// sheetWriter guarda el primer error para no chequear cada celda.
type sheetWriter struct {
	f   *excelize.File
	st  styles
	err error
}

func (w *sheetWriter) put(col, row int, value any, style int) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		w.err = err
		return
	}
	if w.err = w.f.SetCellValue(sheetName, cell, value); w.err != nil {
		return
	}
	if style != 0 {
		w.err = w.f.SetCellStyle(sheetName, cell, cell, style)
	}
}

func (w *sheetWriter) row(r int, cells []any, bold bool) {
	for i, c := range cells {
		value, style := w.cell(c, bold)
		w.put(i+1, r, value, style)
	}
}

func (w *sheetWriter) cell(v any, bold bool) (any, int) {
	switch c := v.(type) {
	case decimal.Decimal:
		if bold {
			return c.InexactFloat64(), w.st.totalMoney
		}
		return c.InexactFloat64(), w.st.money
	case time.Time:
		return c, w.st.date
	default:
		if bold {
			return c, w.st.total
		}
		return c, 0
	}
}

func businessLine(p entity.BusinessProfile) string {
	s := p.Name
	if s == "" {
		s = "Mi Tienda"
	}
	if p.RTN != "" {
		s += " · RTN " + p.RTN
	}
	return s
}
