package security

import (
	"fmt"

	"github.com/luciaferrante/roomvibe-backend/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword returns a salted bcrypt digest for the provided password.
// bcrypt generates a fresh random salt per call, so the same plaintext never
// hashes to the same digest twice.
func HashPassword(password string, cfg config.PasswordConfig) (string, error) {
	if password == "" {
		return "", fmt.Errorf("password cannot be empty")
	}

	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(digest), nil
}

// VerifyPassword reports whether the password matches the encoded digest.
// Comparison happens inside bcrypt and does not leak timing about how close
// the guess was.
func VerifyPassword(password, encoded string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(password)) == nil
}
