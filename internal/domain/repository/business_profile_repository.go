package repository

import (
	"context"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
)

// BusinessProfileRepository guarda el único registro de datos del negocio.
type BusinessProfileRepository interface {
	// Get devuelve (nil, nil) si aún no se configuró.
	Get(ctx context.Context) (*entity.BusinessProfile, error)
	Save(ctx context.Context, profile *entity.BusinessProfile) error
}
