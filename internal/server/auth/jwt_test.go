package auth

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/keykeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := GenerateToken("owner-123", secret, time.Hour)
	require.NoError(t, err)

	got, err := GetOwnerIDFromToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "owner-123", got)
}

func TestGetOwnerIDFromToken_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	tok, err := GenerateToken("u1", secret, -1*time.Minute)
	require.NoError(t, err)

	_, err = GetOwnerIDFromToken(tok, secret)
	assert.ErrorIs(t, err, common.ErrTokenExpired)
}

func TestGetOwnerIDFromToken_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := GenerateToken("u2", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = GetOwnerIDFromToken(tok, []byte("wrong-secret"))
	assert.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestGetOwnerIDFromToken_Rejected(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")
	sign := func(method jwt.SigningMethod, claims jwt.Claims, key any) string {
		s, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return s
	}
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"alg none", sign(jwt.SigningMethodNone, jwt.RegisteredClaims{Issuer: Issuer, Subject: "u", ExpiresAt: exp}, jwt.UnsafeAllowNoneSignatureType)},
		{"HS512", sign(jwt.SigningMethodHS512, jwt.RegisteredClaims{Issuer: Issuer, Subject: "u", ExpiresAt: exp}, secret)},
		{"foreign issuer", sign(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: "other", Subject: "u", ExpiresAt: exp}, secret)},
		{"no expiry", sign(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: Issuer, Subject: "u"}, secret)},
		{"no subject", sign(jwt.SigningMethodHS256, jwt.RegisteredClaims{Issuer: Issuer, ExpiresAt: exp}, secret)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GetOwnerIDFromToken(tt.token, secret)
			assert.ErrorIs(t, err, common.ErrInvalidToken)
		})
	}
}
