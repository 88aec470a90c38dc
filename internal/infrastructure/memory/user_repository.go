package memory

import (
	"context"
	"strings"

	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/domain/repository"
)

type userRepo struct{ g guard }

var _ repository.UserRepository = userRepo{}

func (r userRepo) Create(ctx context.Context, u *entity.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	for _, cur := range r.g.s.users {
		if strings.EqualFold(cur.Email, u.Email) {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.g.s.users[u.ID] = *u
	return nil
}

func (r userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	u, ok := r.g.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r userRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	for _, u := range r.g.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, nil
}

type profileRepo struct{ g guard }

var _ repository.BusinessProfileRepository = profileRepo{}

func (r profileRepo) Get(ctx context.Context) (*entity.BusinessProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	defer r.g.read()()
	if r.g.s.profile == nil {
		return nil, nil
	}
	p := *r.g.s.profile
	return &p, nil
}

func (r profileRepo) Save(ctx context.Context, p *entity.BusinessProfile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	defer r.g.write()()
	cp := *p
	r.g.s.profile = &cp
	return nil
}
