// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for secret hashing and verification.
// This abstracts the underlying hashing algorithm (e.g., bcrypt), keeping the domain pure.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext secret. Two calls with the
	// same input produce different hashes.
	Hash(secret string) (string, error)

	// Check compares a plaintext secret with a stored hash. The comparison is
	// resistant to timing side-channels.
	Check(secret, hash string) bool
}
