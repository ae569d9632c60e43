package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashPassword_NeverPlaintext(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, "pw123", hash)
	require.False(t, strings.Contains(hash, "pw123"))
	require.True(t, strings.HasPrefix(hash, "$2"), "expected a bcrypt hash, got %q", hash)
}

func TestCompareHashAndPassword(t *testing.T) {
	hash, err := HashPassword("pw123")
	require.NoError(t, err)

	require.True(t, CompareHashAndPassword(hash, "pw123"))
	require.False(t, CompareHashAndPassword(hash, "wrong"))
	require.False(t, CompareHashAndPassword("", "pw123"))
}

func TestHashPassword_SaltedPerRecord(t *testing.T) {
	h1, err := HashPassword("pw123")
	require.NoError(t, err)
	h2, err := HashPassword("pw123")
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
