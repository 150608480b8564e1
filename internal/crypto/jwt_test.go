package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signClaims(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestValidateTokenValid(t *testing.T) {
	token, err := GenerateToken("deploy-bot", 25, "test-secret", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "deploy-bot", claims.Subject)
	assert.Equal(t, 25, claims.MaxCount)
}

func TestValidateTokenRejected(t *testing.T) {
	valid := func() Claims {
		return Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    tokenIssuer,
				Subject:   "ci",
				Audience:  jwt.ClaimStrings{tokenAudience},
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
				IssuedAt:  jwt.NewNumericDate(time.Now()),
			},
		}
	}

	wrongIssuer := valid()
	wrongIssuer.Issuer = "wrong-issuer"
	wrongAudience := valid()
	wrongAudience.Audience = jwt.ClaimStrings{"wrong-audience"}
	expired := valid()
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "not-a-valid-token"},
		{name: "wrong secret", token: signClaims(t, valid(), "other-secret")},
		{name: "wrong issuer", token: signClaims(t, wrongIssuer, "test-secret")},
		{name: "wrong audience", token: signClaims(t, wrongAudience, "test-secret")},
		{name: "expired", token: signClaims(t, expired, "test-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateToken(tt.token, "test-secret")
			require.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}
