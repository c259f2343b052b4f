package security

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/globalpulse24/newsroom/internal/core/domain"
)

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := NewTokenManager("", time.Hour)
	assert.ErrorIs(t, err, ErrMissingSigningKey)

	_, err = NewTokenManager("secret", -time.Second)
	assert.ErrorIs(t, err, ErrNegativeTTL)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	token, err := m.Issue("alice", domain.RoleUser)
	require.NoError(t, err)

	id, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, domain.Identity{Username: "alice", Role: domain.RoleUser}, id)
}

func TestTokenManager_ClaimsCarryExpiry(t *testing.T) {
	m, err := NewTokenManager("secret", 15*time.Minute)
	require.NoError(t, err)
	issuedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issuedAt }

	token, err := m.Issue("carol", domain.RoleAdmin)
	require.NoError(t, err)

	claims := &Claims{}
	_, _, err = jwt.NewParser().ParseUnverified(token, claims)
	require.NoError(t, err)
	assert.Equal(t, "carol", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
	assert.Equal(t, issuedAt.Add(15*time.Minute).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestTokenManager_ZeroTTLIsExpired(t *testing.T) {
	m, err := NewTokenManager("secret", 0)
	require.NoError(t, err)

	token, err := m.Issue("alice", domain.RoleUser)
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_ExpiredAfterTTL(t *testing.T) {
	m, err := NewTokenManager("secret", time.Minute)
	require.NoError(t, err)
	start := time.Now()
	m.now = func() time.Time { return start }

	token, err := m.Issue("alice", domain.RoleUser)
	require.NoError(t, err)

	m.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokenManager_Malformed(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		_, err := m.Verify(raw)
		assert.ErrorIs(t, err, domain.ErrTokenMalformed, "input %q", raw)
	}
}

func TestTokenManager_WrongSignature(t *testing.T) {
	issuer, err := NewTokenManager("other-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	token, err := issuer.Issue("mallory", domain.RoleAdmin)
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.False(t, errors.Is(err, domain.ErrTokenExpired))
	assert.False(t, errors.Is(err, domain.ErrTokenMalformed))
}

func TestTokenManager_RejectsOtherAlgorithms(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	claims := Claims{
		Role: domain.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "mallory",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenManager_RequiresRoleAndSubject(t *testing.T) {
	m, err := NewTokenManager("secret", time.Hour)
	require.NoError(t, err)

	noRole, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(noRole)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		Role:             domain.RoleUser,
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = m.Verify(noExpiry)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
