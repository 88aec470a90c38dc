package ports

import "context"

// ReportCache guarda reportes ya calculados, serializados.
// Get devuelve (nil, nil) cuando la clave no existe o expiró.
// Incr suma 1 al contador de la clave y devuelve el valor nuevo; una clave
// ausente cuenta como 0.
type ReportCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
	Incr(ctx context.Context, key string) (int64, error)
}
