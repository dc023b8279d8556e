package service_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/msomdec/user-admin/internal/service"
)

func TestPasswordHasher_HashAndVerify(t *testing.T) {
	h := service.NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	assert.True(t, h.Verify("s3cret", hash))
	assert.False(t, h.Verify("S3cret", hash))
	assert.False(t, h.Verify("", hash))
}

func TestPasswordHasher_SaltedHashesDiffer(t *testing.T) {
	h := service.NewPasswordHasher(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, h.Verify("same", a))
	assert.True(t, h.Verify("same", b))
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	h := service.NewPasswordHasher(bcrypt.DefaultCost)

	hash, err := h.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestPasswordHasher_VerifyMalformedHash(t *testing.T) {
	h := service.NewPasswordHasher(bcrypt.MinCost)

	assert.False(t, h.Verify("pw", "not-a-bcrypt-hash"))
	assert.False(t, h.Verify("pw", ""))
}

func TestPasswordHasher_HashTooLong(t *testing.T) {
	h := service.NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("x", 100))
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestPasswordHasher_Burn(t *testing.T) {
	h := service.NewPasswordHasher(bcrypt.MinCost)

	assert.NotPanics(t, func() {
		h.Burn("anything")
		h.Burn("anything else")
	})
}
