package service

import (
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

const dummyPassword = "dummy-password"

// PasswordHasher hashes and verifies passwords with bcrypt.
type PasswordHasher struct {
	cost      int
	dummyHash []byte
}

// NewPasswordHasher creates a PasswordHasher using the given bcrypt cost.
// It hashes a throwaway password up front for Burn; if the configured cost is
// rejected, the throwaway hash falls back to bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	dummy, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		slog.Warn("dummy hash at configured cost failed, using default cost", "cost", cost, "error", err)
		dummy, err = bcrypt.GenerateFromPassword([]byte(dummyPassword), bcrypt.DefaultCost)
		if err != nil {
			panic(fmt.Sprintf("generate dummy bcrypt hash: %v", err))
		}
	}
	return &PasswordHasher{cost: cost, dummyHash: dummy}
}

// Hash returns a salted bcrypt hash of plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash. A malformed hash is a
// mismatch, not an error.
func (h *PasswordHasher) Verify(plaintext, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	return err == nil
}

// Burn performs one comparison against a throwaway hash of the configured
// cost, so a lookup miss costs as much as a wrong password.
func (h *PasswordHasher) Burn(plaintext string) {
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(plaintext))
}
