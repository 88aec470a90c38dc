package analytics

import (
	"context"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-pos/internal/application/ports"
)

// ReportsGenerationKey cuenta las escrituras que invalidaron reportes. Cada
// reporte se guarda bajo la generación leída antes de consultar sus fuentes,
// así un cálculo que termina después de una escritura no pisa al nuevo.
const ReportsGenerationKey = "tienda-pos:reports:gen"

// PnLCacheKey clave del estado de resultados para una generación.
func PnLCacheKey(gen int64) string {
	return fmt.Sprintf("tienda-pos:reports:pnl:%d", gen)
}

// InvalidateReports descarta los reportes cacheados tras una escritura.
// Una falla de la caché no revierte la escritura; solo se registra.
func InvalidateReports(ctx context.Context, cache ports.ReportCache, log zerolog.Logger) {
	if cache == nil {
		return
	}
	if _, err := cache.Incr(ctx, ReportsGenerationKey); err != nil {
		log.Warn().Err(err).Str("key", ReportsGenerationKey).Msg("no se pudo invalidar la caché de reportes")
	}
}

// reportsGeneration lee la generación vigente. Sin clave es la 0.
func reportsGeneration(ctx context.Context, cache ports.ReportCache) (int64, error) {
	raw, err := cache.Get(ctx, ReportsGenerationKey)
	if err != nil || raw == nil {
		return 0, err
	}
	gen, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("generación de reportes inválida %q: %w", raw, err)
	}
	return gen, nil
}
