package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	m := NewJWTManager("super-secret", time.Hour)

	tok, exp, err := m.GenerateToken("user-123", "jane@x.com", "Jane Doe")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := m.ParseToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.Equal(t, "Jane Doe", claims.Name)
}

func TestParseToken_Expired(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("secret"), TTL: -time.Minute}
	tok, _, err := m.GenerateToken("u1", "a@b.c", "A")
	require.NoError(t, err)

	_, err = m.ParseToken(tok)
	assert.Error(t, err, "expired token must be rejected")
}

func TestParseToken_WrongSecret(t *testing.T) {
	t.Parallel()

	right := &JWTManager{Secret: []byte("right"), TTL: time.Hour}
	wrong := &JWTManager{Secret: []byte("wrong"), TTL: time.Hour}

	tok, _, err := right.GenerateToken("u2", "a@b.c", "A")
	require.NoError(t, err)

	_, err = wrong.ParseToken(tok)
	assert.Error(t, err, "forged token must be rejected")
}

func TestParseToken_Malformed(t *testing.T) {
	t.Parallel()

	m := &JWTManager{Secret: []byte("k"), TTL: time.Hour}
	_, err := m.ParseToken("not.a.jwt")
	assert.Error(t, err)
}
