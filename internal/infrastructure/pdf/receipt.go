package pdf

import (
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// Papel térmico de 80 mm.
const (
	receiptWidth     = 80
	receiptMinHeight = 120
)

var paymentLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
}

// RenderReceipt genera el ticket de caja de una venta.
func (r *MarotoRenderer) RenderReceipt(profile entity.BusinessProfile, sale *entity.Sale) ([]byte, error) {
	height := float64(receiptMinHeight + 8*len(sale.Items))
	cfg := config.NewBuilder().
		WithDimensions(receiptWidth, height).
		WithLeftMargin(4).WithRightMargin(4).
		WithTopMargin(4).WithBottomMargin(4).
		WithDefaultFont(&props.Font{Family: "courier", Size: 8}).
		WithTitle("Ticket "+shortID(sale.ID), true).
		Build()
	m := maroto.New(cfg)

	centered := func(s string, size float64, style fontstyle.Type) core.Row {
		return row.New(size/2 + 3).Add(col.New(12).Add(
			text.New(s, props.Text{Size: size, Style: style, Align: align.Center, Top: 1}),
		))
	}

	m.AddRows(centered(nonEmpty(profile.Name, "Mi Tienda"), 11, fontstyle.Bold))
	if profile.Address != "" {
		m.AddRows(centered(profile.Address, 7, fontstyle.Normal))
	}
	if profile.RTN != "" {
		m.AddRows(centered("RTN: "+profile.RTN, 7, fontstyle.Normal))
	}
	m.AddRows(centered(fmt.Sprintf("Venta %s  %s", shortID(sale.ID), sale.CreatedAt.Format("02/01/2006 15:04")), 7, fontstyle.Normal))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))

	for _, it := range sale.Items {
		m.AddRows(row.New(8).Add(
			col.New(8).Add(
				text.New(it.ProductName, props.Text{Size: 8, Top: 0.5}),
				text.New(fmt.Sprintf("%d x %s", it.Quantity, formatMoney(it.UnitPrice)), props.Text{Size: 7, Top: 4, Color: colorGray}),
			),
			col.New(4).Add(
				text.New(formatMoney(it.Subtotal()), props.Text{Size: 8, Align: align.Right, Top: 2}),
			),
		))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.2}))
	m.AddRows(row.New(8).Add(
		col.New(6).Add(text.New("TOTAL", props.Text{Size: 10, Style: fontstyle.Bold, Top: 1})),
		col.New(6).Add(text.New(formatMoney(sale.TotalAmount), props.Text{Size: 10, Style: fontstyle.Bold, Align: align.Right, Top: 1})),
	))
	m.AddRows(centered("Pago: "+nonEmpty(paymentLabels[sale.PaymentMethod], sale.PaymentMethod), 8, fontstyle.Normal))
	m.AddRows(row.New(28).Add(col.New(12).Add(code.NewQr(sale.ID, props.Rect{Percent: 90, Center: true}))))
	m.AddRows(centered("¡Gracias por su compra!", 8, fontstyle.Italic))

	return generate(m)
}

// shortID devuelve los primeros 8 caracteres de un UUID en mayúsculas.
func shortID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return strings.ToUpper(id)
}
