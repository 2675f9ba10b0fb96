package auth

import (
	"testing"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *bcryptHasher {
	cfg := &config.Config{
		Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost},
	}

	return NewBcryptHasher(cfg).(*bcryptHasher)
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "storefront42"
	hash, err := hasher.Hash(password)
	assert.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	cost, err := bcrypt.Cost([]byte(hash))
	assert.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)

	assert.True(t, hasher.Check(password, hash))
}

func TestBcryptHasher_HashWithWeakPassword(t *testing.T) {
	hasher := newTestHasher()

	weakPasswords := []string{
		"abc1",        // Too short
		"onlyletters", // No digits
		"1234567890",  // No letters
		"a1" + string(make([]byte, 80)),
	}

	for _, weakPassword := range weakPasswords {
		_, err := hasher.Hash(weakPassword)
		assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength, "Expected error for weak password: %q", weakPassword)
	}
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "correct1horse"

	hash, err := hasher.Hash(password)
	assert.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("wrong1horse", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-hash"))
}

func TestBcryptHasher_ConfiguredRules(t *testing.T) {
	cfg := &config.Config{
		Auth:             &config.AuthConfig{BcryptCost: bcrypt.MinCost},
		PasswordStrength: &config.PasswordStrengthConfig{MinLength: 12, RequireLetters: true},
	}
	hasher := NewBcryptHasher(cfg)

	assert.ErrorIs(t, hasher.ValidatePasswordStrength("short1"), domainerrors.ErrPasswordStrength)
	assert.NoError(t, hasher.ValidatePasswordStrength("longpasswordnodigits"))
}
