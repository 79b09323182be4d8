package password_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/upservice/user-profile-service/internal/userprofile/infra/password"
)

func TestBcryptHasher(t *testing.T) {
	hasher := password.NewBcryptHasher()

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	require.NotEqual(t, "correct horse battery", hash)

	require.True(t, hasher.CompareHash(hash, "correct horse battery"))
	require.False(t, hasher.CompareHash(hash, "wrong password"))
	require.False(t, hasher.CompareHash("not a bcrypt hash", "correct horse battery"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := password.NewBcryptHasher()

	first, err := hasher.Hash("samePassword1")
	require.NoError(t, err)
	second, err := hasher.Hash("samePassword1")
	require.NoError(t, err)

	require.NotEqual(t, first, second)
	require.True(t, hasher.CompareHash(first, "samePassword1"))
	require.True(t, hasher.CompareHash(second, "samePassword1"))
}
