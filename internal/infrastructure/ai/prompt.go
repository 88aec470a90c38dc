package ai

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
)

const systemPrompt = `Actúa como contador experto de una tienda de barrio en Honduras.
Responde en español, en texto plano, sin tablas ni markdown.
Entrega exactamente 3 observaciones financieras breves numeradas y 1 recomendación concreta
para mejorar la rentabilidad. Todos los montos están en lempiras (HNL).`

// financialPrompt arma el mensaje de usuario con las cifras del estado de resultados.
func financialPrompt(r dto.PnLReportDTO) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analiza este Estado de Resultados (Moneda HNL), período %s:\n\n", r.PeriodName)
	fmt.Fprintf(&b, "1. INGRESOS: L. %s\n", money(r.Revenue))
	fmt.Fprintf(&b, "2. COSTO DE VENTAS: L. %s\n", money(r.COGS))
	fmt.Fprintf(&b, "   (Inv. inicial %s + Compras %s - Inv. final %s)\n",
		money(r.InitialInventory), money(r.Purchases), money(r.EndingInventory))
	fmt.Fprintf(&b, "3. UTILIDAD BRUTA: L. %s\n", money(r.GrossProfit))
	fmt.Fprintf(&b, "4. GASTOS OPERATIVOS: L. %s (venta %s, administrativos %s)\n",
		money(r.OperatingExpenses), money(r.SellingExpenses), money(r.AdminExpenses))
	fmt.Fprintf(&b, "5. UTILIDAD NETA: L. %s\n", money(r.NetProfit))
	if len(r.Warnings) > 0 {
		b.WriteString("\nAdvertencias sobre los datos:\n")
		for _, w := range r.Warnings {
			fmt.Fprintf(&b, "- %s\n", w.Message)
		}
	}
	b.WriteString("\nDame 3 observaciones financieras breves y una recomendación para mejorar la rentabilidad.")
	return b.String()
}

func money(d decimal.Decimal) string { return d.StringFixed(2) }
