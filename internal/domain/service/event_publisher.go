package service

import (
	"context"

	"biaresh/internal/domain/entity"
)

// EventPublisher defines the interface for publishing store events to a message queue
type EventPublisher interface {
	// PublishStoreEvent publishes an event after the owning store has been written
	PublishStoreEvent(ctx context.Context, event *entity.StoreEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
