package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckPasswordReportsMatch(t *testing.T) {
	hashed, err := HashPassword("s3cret-passphrase")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-passphrase", hashed)

	require.True(t, CheckPassword(hashed, "s3cret-passphrase"))
	require.False(t, CheckPassword(hashed, "wrong-passphrase"))
}

func TestCheckPasswordRejectsMalformedHash(t *testing.T) {
	require.False(t, CheckPassword("not-a-bcrypt-hash", "anything"))
}
