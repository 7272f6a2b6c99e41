package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, "s3cret", hash)

	require.NoError(t, CheckPassword(hash, "s3cret"))
	require.Error(t, CheckPassword(hash, "wrong"))
}

func TestHashPasswordDistinctSalts(t *testing.T) {
	h1, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)
	h2, err := HashPassword("pw", bcrypt.MinCost)
	require.NoError(t, err)
	require.NotEqual(t, h1, h2)
}
