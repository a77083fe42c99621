// Package service defines the ports the usecases depend on.
// Implementations live under internal/infra.
package service

// PasswordHasher hashes and checks the back-office password.
type PasswordHasher interface {
	// Hash returns a salted hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
