package authenticating

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intelimob/painel-comercial-api/internal/config"
	"github.com/intelimob/painel-comercial-api/internal/domain"
)

const testSecret = "painel-secret"

func signToken(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()

	claims := &domain.Claims{
		UserID:     42,
		UserName:   "Joao",
		UserRoleID: domain.RoleCorretor,
		Broker:     "JOAO",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestValidateToken(t *testing.T) {
	service := NewService(&config.Config{SecretKey: testSecret})

	token := signToken(t, testSecret, time.Now().Add(time.Hour))
	claims, err := service.ValidateToken(token)

	require.NoError(t, err)
	assert.Equal(t, 42, claims.UserID)
	assert.Equal(t, "JOAO", claims.Broker)
	assert.False(t, claims.IsManager())
}

func TestValidateToken_Expirado(t *testing.T) {
	service := NewService(&config.Config{SecretKey: testSecret})

	token := signToken(t, testSecret, time.Now().Add(-time.Hour))
	_, err := service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_AssinaturaErrada(t *testing.T) {
	service := NewService(&config.Config{SecretKey: testSecret})

	token := signToken(t, "outro-segredo", time.Now().Add(time.Hour))
	_, err := service.ValidateToken(token)

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Malformado(t *testing.T) {
	service := NewService(&config.Config{SecretKey: testSecret})

	_, err := service.ValidateToken("nao-e-um-jwt")

	assert.ErrorIs(t, err, ErrInvalidToken)
}
