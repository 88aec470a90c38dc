package ports

import (
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// Table es un listado exportable. Las celdas pueden ser string, int,
// decimal.Decimal (montos) o time.Time; cada exportador las formatea.
type Table struct {
	Title    string
	Subtitle string
	Columns  []string
	Rows     [][]any
	Footer   []any // fila de totales, opcional
}

// TableExporter convierte un listado en un documento descargable.
type TableExporter interface {
	Format() string // "pdf" o "xlsx"
	ContentType() string
	ExportTable(profile entity.BusinessProfile, table Table) ([]byte, error)
}

// DocumentRenderer genera los PDF propios del negocio.
type DocumentRenderer interface {
	TableExporter
	RenderPnL(profile entity.BusinessProfile, report dto.PnLReportDTO, expenses []*entity.Expense) ([]byte, error)
	RenderReceipt(profile entity.BusinessProfile, sale *entity.Sale) ([]byte, error)
}
