package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

// BusinessProfileUseCase administra los datos del negocio impresos en
// reportes y tickets. Mientras no se guarden, se usan los de configuración.
type BusinessProfileUseCase struct {
	repo     repository.BusinessProfileRepository
	defaults entity.BusinessProfile
	log      zerolog.Logger
}

// NewBusinessProfileUseCase construye el caso de uso con los valores por defecto.
func NewBusinessProfileUseCase(repo repository.BusinessProfileRepository, defaults entity.BusinessProfile, log zerolog.Logger) *BusinessProfileUseCase {
	return &BusinessProfileUseCase{repo: repo, defaults: defaults, log: log}
}

// Profile devuelve el perfil guardado o el de configuración.
func (uc *BusinessProfileUseCase) Profile(ctx context.Context) (entity.BusinessProfile, error) {
	p, err := uc.repo.Get(ctx)
	if err != nil {
		return entity.BusinessProfile{}, domain.Persistence("obtener datos del negocio", err)
	}
	if p == nil {
		return uc.defaults, nil
	}
	return *p, nil
}

// Get devuelve el perfil como respuesta HTTP.
func (uc *BusinessProfileUseCase) Get(ctx context.Context) (*dto.BusinessProfileResponse, error) {
	p, err := uc.Profile(ctx)
	if err != nil {
		return nil, err
	}
	return toBusinessProfileResponse(p), nil
}

// Update reemplaza el perfil completo.
func (uc *BusinessProfileUseCase) Update(ctx context.Context, in dto.BusinessProfileRequest) (*dto.BusinessProfileResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.Validation("el nombre del negocio es obligatorio")
	}
	p := &entity.BusinessProfile{
		Name:      name,
		Address:   strings.TrimSpace(in.Address),
		Phone:     strings.TrimSpace(in.Phone),
		RTN:       strings.TrimSpace(in.RTN),
		UpdatedAt: time.Now(),
	}
	if err := uc.repo.Save(ctx, p); err != nil {
		return nil, domain.Persistence("guardar datos del negocio", err)
	}
	uc.log.Info().Str("name", p.Name).Msg("datos del negocio actualizados")
	return toBusinessProfileResponse(*p), nil
}

func toBusinessProfileResponse(p entity.BusinessProfile) *dto.BusinessProfileResponse {
	return &dto.BusinessProfileResponse{
		Name:      p.Name,
		Address:   p.Address,
		Phone:     p.Phone,
		RTN:       p.RTN,
		UpdatedAt: p.UpdatedAt,
	}
}
