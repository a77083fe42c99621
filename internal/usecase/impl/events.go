package impl

import (
	"context"
	"log/slog"

	"biaresh/internal/domain/entity"
	"biaresh/internal/domain/service"
)

// publishStoreEvent announces a completed write. Failures are logged only;
// the write has already happened and stays.
func publishStoreEvent(
	ctx context.Context,
	logger *slog.Logger,
	publisher service.EventPublisher,
	clock service.Clock,
	eventType entity.EventType,
	payload any,
) {
	event, err := entity.NewStoreEvent(eventType, clock.Now(), payload)
	if err != nil {
		logger.Error("Failed to encode store event", slog.String("event_type", string(eventType)), slog.Any("error", err))

		return
	}

	if err := publisher.PublishStoreEvent(ctx, event); err != nil {
		logger.Warn("Failed to publish store event", slog.String("event_type", string(eventType)), slog.Any("error", err))
	}
}
