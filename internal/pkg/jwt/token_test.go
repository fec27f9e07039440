package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/passeio/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: 60,
		Issuer:     "passeio-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := getTestConfig()

	token, expiresAt, err := GenerateToken("sess-1", "12", cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, "12", claims.UserID)
	assert.Equal(t, "passeio-test", claims.Issuer)
}

func TestValidateToken_Rejects(t *testing.T) {
	cfg := getTestConfig()
	valid, _, err := GenerateToken("sess-1", "12", cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.Expiration = -1
	expired, _, err := GenerateToken("sess-1", "12", expiredCfg)
	require.NoError(t, err)

	noSession, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "12"}).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "wrong secret", token: valid, secret: "other-secret"},
		{name: "expired", token: expired, secret: cfg.Secret},
		{name: "garbage", token: "not.a.token", secret: cfg.Secret},
		{name: "missing session", token: noSession, secret: cfg.Secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.ErrorIs(t, err, ErrInvalidToken)
			assert.Nil(t, claims)
		})
	}
}

func TestValidateToken_RejectsNoneAlgorithm(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{SessionID: "s", UserID: "u"})
	signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateToken(signed, getTestConfig().Secret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
