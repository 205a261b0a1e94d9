package auth

import (
	"testing"

	"authd/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasher(t *testing.T, cost int) *bcryptHasher {
	t.Helper()

	hasher, err := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: cost}})
	require.NoError(t, err)

	return hasher.(*bcryptHasher)
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := testHasher(t, bcrypt.MinCost)

	password := "SuperSecret123!"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Correct password matches its own hash.
	assert.True(t, hasher.Check(password, hash))

	// Anything else does not.
	assert.False(t, hasher.Check("WrongPassword", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "invalid_hash"))
}

func TestBcryptHasher_SaltedHashes(t *testing.T) {
	hasher := testHasher(t, bcrypt.MinCost)

	// Two hashes of the same password differ because of the embedded salt.
	first, err := hasher.Hash("SuperSecret123!")
	assert.NoError(t, err)
	second, err := hasher.Hash("SuperSecret123!")
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ConfiguredCost(t *testing.T) {
	hasher := testHasher(t, 6)

	hash, err := hasher.Hash("SuperSecret123!")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, 6, cost)
}

func TestBcryptHasher_CostOutOfRangeFallsBack(t *testing.T) {
	hasher := testHasher(t, 99)

	hash, err := hasher.Hash("SuperSecret123!")
	assert.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestNewBcryptHasher_MissingConfigSection(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{})

	assert.Nil(t, hasher)
	assert.Error(t, err)
}
