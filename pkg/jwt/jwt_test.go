package jwt_test

import (
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tienda-pos/pkg/jwt"
)

func TestGenerateAndParse(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "admin", "tienda-pos", 60)
	require.NoError(t, err)

	claims, err := jwt.Parse("secreto", token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "tienda-pos", claims.Issuer)
}

func TestParse_WrongSecret(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "cajero", "tienda-pos", 60)
	require.NoError(t, err)

	_, err = jwt.Parse("otro", token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestParse_Expired(t *testing.T) {
	token, err := jwt.Generate("secreto", "user-1", "cajero", "tienda-pos", -5)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	assert.ErrorIs(t, err, gojwt.ErrTokenExpired)
}

func TestParse_NoneAlgorithmRejected(t *testing.T) {
	unsigned, err := gojwt.NewWithClaims(gojwt.SigningMethodNone, gojwt.MapClaims{"user_id": "u"}).
		SignedString(gojwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwt.Parse("secreto", unsigned)
	assert.Error(t, err)
}

func TestEmptySecret(t *testing.T) {
	_, err := jwt.Generate("", "u", "admin", "i", 10)
	assert.Error(t, err)
	_, err = jwt.Parse("", "x.y.z")
	assert.Error(t, err)
}
