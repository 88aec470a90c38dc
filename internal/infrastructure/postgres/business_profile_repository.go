package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

var _ repository.BusinessProfileRepository = (*BusinessProfileRepo)(nil)

// BusinessProfileRepo guarda la fila única de business_profile (id = 1).
type BusinessProfileRepo struct {
	q Querier
}

// NewBusinessProfileRepository construye el adaptador.
func NewBusinessProfileRepository(q Querier) *BusinessProfileRepo {
	return &BusinessProfileRepo{q: q}
}

func (r *BusinessProfileRepo) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	var p entity.BusinessProfile
	err := r.q.QueryRow(ctx,
		`SELECT name, address, phone, rtn, updated_at FROM business_profile WHERE id = 1`,
	).Scan(&p.Name, &p.Address, &p.Phone, &p.RTN, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get business profile: %w", err)
	}
	return &p, nil
}

func (r *BusinessProfileRepo) Save(ctx context.Context, p *entity.BusinessProfile) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO business_profile (id, name, address, phone, rtn, updated_at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name, address = EXCLUDED.address, phone = EXCLUDED.phone,
		    rtn = EXCLUDED.rtn, updated_at = EXCLUDED.updated_at`,
		p.Name, p.Address, p.Phone, p.RTN, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save business profile: %w", err)
	}
	return nil
}
