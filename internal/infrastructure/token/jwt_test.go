package token

import (
	"errors"
	"testing"
	"time"

	"github.com/safeglow/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_RoundTrip(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Hour)

	signed, err := issuer.Issue("user-123")
	require.NoError(t, err)
	assert.NotEmpty(t, signed)

	userID, err := issuer.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestJWTIssuer_DefaultTTL(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", 0)
	assert.Equal(t, 7*24*time.Hour, issuer.ttl)
}

func TestJWTIssuer_RejectsWrongSecret(t *testing.T) {
	signed, err := NewJWTIssuer("secret-a", time.Hour).Issue("user-123")
	require.NoError(t, err)

	_, err = NewJWTIssuer("secret-b", time.Hour).Verify(signed)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestJWTIssuer_RejectsExpired(t *testing.T) {
	issuer := NewJWTIssuer("test-secret", time.Minute)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	signed, err := issuer.Issue("user-123")
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(signed)
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestJWTIssuer_RejectsGarbage(t *testing.T) {
	_, err := NewJWTIssuer("test-secret", time.Hour).Verify("not.a.token")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}
