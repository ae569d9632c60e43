package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestJWTManager_GenerateAndParse(t *testing.T) {
	m := NewJWTManager("test-secret", 720*time.Hour)

	token, exp, err := m.Generate("user-1")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(720*time.Hour), exp, time.Minute)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
}

func TestJWTManager_TokenBindsSingleUser(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	tokenA, _, err := m.Generate("user-a")
	require.NoError(t, err)

	claims, err := m.Parse(tokenA)
	require.NoError(t, err)
	require.Equal(t, "user-a", claims.UserID)
	require.NotEqual(t, "user-b", claims.UserID)
}

func TestJWTManager_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-one", time.Hour)
	verifier := NewJWTManager("secret-two", time.Hour)

	token, _, err := issuer.Generate("user-1")
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsExpired(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute)

	token, _, err := m.Generate("user-1")
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.Error(t, err)
}

func TestJWTManager_RejectsMalformed(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour)

	_, err := m.Parse("not-a-token")
	require.Error(t, err)
}
