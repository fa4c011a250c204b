// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying algorithm (bcrypt in production, plaintext in
// the demo mode), keeping the domain pure.
type PasswordHasher interface {
	// Hash derives the stored form of a plaintext password.
	Hash(password string) (string, error)

	// Check compares a plaintext password with its stored form.
	Check(password, stored string) bool
}
