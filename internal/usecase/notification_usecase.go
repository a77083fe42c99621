package usecase

import (
	"context"

	"biaresh/internal/domain/entity"
	"biaresh/internal/errors"
)

// NotificationUsecase runs in the notifier and tells the owner about store events
type NotificationUsecase interface {
	// HandleStoreEvent emails the owner. Unknown event types are ignored.
	HandleStoreEvent(ctx context.Context, event *entity.StoreEvent) error
}

// ErrMalformedEvent marks an event whose payload cannot be decoded.
// Redelivering it cannot succeed.
var ErrMalformedEvent = errors.New("malformed store event")
