package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"fitbuilder/config"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	cfg := new(config.Config)
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	hasher := NewBcryptHasher(cfg)

	stored, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", stored)

	assert.True(t, hasher.Check("correct horse battery staple", stored))
	assert.False(t, hasher.Check("wrong password", stored))
}

func TestBcryptHasher_HashesDiffer(t *testing.T) {
	cfg := new(config.Config)
	cfg.Auth = &config.AuthConfig{BcryptCost: bcrypt.MinCost}
	hasher := NewBcryptHasher(cfg)

	first, err := hasher.Hash("pw")
	require.NoError(t, err)
	second, err := hasher.Hash("pw")
	require.NoError(t, err)

	// bcrypt salts each hash.
	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_PlaintextFlag(t *testing.T) {
	cfg := new(config.Config)
	cfg.Auth = &config.AuthConfig{PlaintextPasswords: true}
	hasher := NewBcryptHasher(cfg)

	stored, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", stored)

	assert.True(t, hasher.Check("pw", stored))
	assert.False(t, hasher.Check("other", stored))
}

func TestPlaintextHasher(t *testing.T) {
	hasher := NewPlaintextHasher()

	stored, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", stored)
	assert.True(t, hasher.Check("pw", stored))
	assert.False(t, hasher.Check("pw2", stored))
}
