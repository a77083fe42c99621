package usecase

import (
	"context"
)

// SessionUsecase guards the back office with one credential pair and a
// durable authenticated flag. There is no token and no expiry.
type SessionUsecase interface {
	// Login sets the flag on a credential match; otherwise it returns
	// ErrInvalidCredentials and leaves the flag as it was.
	Login(ctx context.Context, username, password string) error

	// Logout clears the flag
	Logout(ctx context.Context)

	// IsAuthenticated reads the flag, false when absent or unreadable
	IsAuthenticated(ctx context.Context) bool
}
