package service

import (
	"context"
)

// OwnerNotifier delivers a plain-text notice to the shop owner
type OwnerNotifier interface {
	NotifyOwner(ctx context.Context, subject, body string) error
}
