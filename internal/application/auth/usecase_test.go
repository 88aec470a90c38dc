package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/application/dto"
	"github.com/jhoicas/tienda-pos/internal/domain"
	"github.com/jhoicas/tienda-pos/internal/domain/entity"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/memory"
	"github.com/jhoicas/tienda-pos/pkg/jwt"
)

const secret = "secreto-de-prueba"

func newAuth() *auth.AuthUseCase {
	return auth.NewAuthUseCase(memory.New().Users(), auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "tienda-pos"}, zerolog.Nop())
}

func TestRegisterYLogin(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	user, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: " Caja@Tienda.local ", Password: "caja-pass-123"})
	require.NoError(t, err)
	assert.Equal(t, "caja@tienda.local", user.Email)
	assert.Equal(t, entity.RoleCajero, user.Role)
	assert.Equal(t, "caja@tienda.local", user.Name)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "CAJA@tienda.local", Password: "caja-pass-123"})
	require.NoError(t, err)
	claims, err := jwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleCajero, claims.Role)
}

func TestRegister_Rechazos(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.hn", Password: "12345678"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "A@B.hn", Password: "otra-clave-1"})
	assert.True(t, errors.Is(err, domain.ErrEmailAlreadyExists))

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "c@b.hn", Password: "corta"})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = uc.RegisterUser(ctx, dto.RegisterRequest{Email: "d@b.hn", Password: "12345678", Role: "gerente"})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestLogin_CredencialesInvalidasRespondenIgual(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()
	_, err := uc.RegisterUser(ctx, dto.RegisterRequest{Email: "a@b.hn", Password: "12345678"})
	require.NoError(t, err)

	_, errPass := uc.Login(ctx, dto.LoginRequest{Email: "a@b.hn", Password: "equivocada"})
	_, errUser := uc.Login(ctx, dto.LoginRequest{Email: "nadie@b.hn", Password: "12345678"})
	assert.True(t, errors.Is(errPass, domain.ErrUnauthorized))
	assert.True(t, errors.Is(errUser, domain.ErrUnauthorized))
	assert.Equal(t, errPass.Error(), errUser.Error())
}

func TestEnsureAdmin_Idempotente(t *testing.T) {
	uc := newAuth()
	ctx := context.Background()

	created, err := uc.EnsureAdmin(ctx, "admin@tienda.local", "admin-pass-123")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = uc.EnsureAdmin(ctx, "ADMIN@tienda.local", "otra-clave-123")
	require.NoError(t, err)
	assert.False(t, created)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "admin@tienda.local", Password: "admin-pass-123"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)
}
