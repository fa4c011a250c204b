package auth

import (
	"crypto/subtle"

	"fitbuilder/internal/domain/service"
)

// plaintextHasher stores passwords verbatim, reproducing the original demo
// behavior. Only selected through the auth.plaintextPasswords config flag.
type plaintextHasher struct{}

// NewPlaintextHasher is the constructor for plaintextHasher.
func NewPlaintextHasher() service.PasswordHasher {
	return &plaintextHasher{}
}

// Hash returns the password unchanged.
func (h *plaintextHasher) Hash(password string) (string, error) {
	return password, nil
}

// Check compares in constant time to avoid making the demo mode trivially
// timeable.
func (h *plaintextHasher) Check(password, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(password), []byte(stored)) == 1
}
