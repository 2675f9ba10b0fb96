// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"fmt"
	"unicode"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultMinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	maxBcryptPasswordBytes = 72
)

// passwordRules is the resolved password strength policy.
type passwordRules struct {
	minLength      int
	maxLength      int
	requireLetters bool
	requireNumbers bool
}

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost  int
	rules passwordRules
}

// NewBcryptHasher is the constructor for bcryptHasher.
// Missing configuration falls back to bcrypt.DefaultCost and an
// eight-character letters-and-digits rule.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Auth != nil && cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Auth.BcryptCost
	}

	rules := passwordRules{
		minLength:      defaultMinPasswordLength,
		maxLength:      maxBcryptPasswordBytes,
		requireLetters: true,
		requireNumbers: true,
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		strength := cfg.PasswordStrength
		if strength.MinLength > 0 {
			rules.minLength = strength.MinLength
		}
		if strength.MaxLength > 0 && strength.MaxLength < maxBcryptPasswordBytes {
			rules.maxLength = strength.MaxLength
		}
		rules.requireLetters = strength.RequireLetters
		rules.requireNumbers = strength.RequireNumbers
	}

	return &bcryptHasher{cost: cost, rules: rules}
}

// Hash validates the password strength and generates a salted bcrypt hash.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if err := h.ValidatePasswordStrength(password); err != nil {
		return "", err
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	return string(bytes), nil
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePasswordStrength enforces length and character class rules.
func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	length := len([]rune(password))
	if length < h.rules.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at least %d characters", h.rules.minLength))
	}
	if len(password) > h.rules.maxLength {
		return domainerrors.ErrPasswordStrength.WithDetails(fmt.Sprintf("password must be at most %d bytes", h.rules.maxLength))
	}

	var hasLetter, hasNumber bool
	for _, r := range password {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasNumber = true
		}
	}

	if h.rules.requireLetters && !hasLetter {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a letter")
	}
	if h.rules.requireNumbers && !hasNumber {
		return domainerrors.ErrPasswordStrength.WithDetails("password must contain a digit")
	}

	return nil
}
