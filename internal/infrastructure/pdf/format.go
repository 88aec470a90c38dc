package pdf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
)

// tableRows arma cabecera, filas y pie de un listado en la grilla de 12 columnas.
func tableRows(t ports.Table) []core.Row {
	widths := columnWidths(len(t.Columns))
	rows := make([]core.Row, 0, len(t.Rows)+2)

	header := row.New(7)
	for i, c := range t.Columns {
		header.Add(col.New(widths[i]).Add(text.New(c, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	rows = append(rows, header)

	for _, cells := range t.Rows {
		rows = append(rows, cellRow(widths, cells, fontstyle.Normal))
	}
	if len(t.Footer) > 0 {
		rows = append(rows, cellRow(widths, t.Footer, fontstyle.Bold))
	}
	return rows
}

func cellRow(widths []int, cells []any, style fontstyle.Type) core.Row {
	r := row.New(6)
	for i := range widths {
		var cell any
		if i < len(cells) {
			cell = cells[i]
		}
		a := align.Left
		if _, ok := cell.(decimal.Decimal); ok {
			a = align.Right
		}
		r.Add(col.New(widths[i]).Add(text.New(formatCell(cell), props.Text{
			Size: 7.5, Style: style, Align: a, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

// columnWidths reparte las 12 columnas; el sobrante va a la tercera columna
// (o a la última si hay menos), que suele ser la descriptiva.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	base := 12 / n
	widths := make([]int, n)
	for i := range widths {
		widths[i] = base
	}
	wide := min(2, n-1)
	widths[wide] += 12 - base*n
	return widths
}

func formatCell(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	case decimal.Decimal:
		return formatMoney(c)
	case time.Time:
		return c.Format("02/01/2006 15:04")
	default:
		return fmt.Sprint(c)
	}
}

// formatMoney formatea lempiras: "L. 1,234.56"; negativos como "-L. 1,234.56".
func formatMoney(d decimal.Decimal) string {
	s := d.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(s, ".")
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	out := "L. " + string(buf) + "." + frac
	if d.IsNegative() {
		return "-" + out
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func upper(s string) string { return strings.ToUpper(s) }
