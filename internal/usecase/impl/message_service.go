package impl

import (
	"context"
	"log/slog"
	"strings"

	"biaresh/config"
	"biaresh/internal/domain/entity"
	"biaresh/internal/domain/repository"
	"biaresh/internal/domain/service"
	"biaresh/internal/infra/persistence/store"
	"biaresh/internal/usecase"
)

type messageService struct {
	logger    *slog.Logger
	messages  *store.Store[entity.ContactMessage, int64]
	clock     service.Clock
	validator service.InputValidator
	publisher service.EventPublisher
}

// NewMessageService creates the contact inbox backed by the configured message slot
func NewMessageService(
	logger *slog.Logger,
	repo repository.SlotRepository,
	cfg *config.Config,
	clock service.Clock,
	validator service.InputValidator,
	publisher service.EventPublisher,
) usecase.MessageUsecase {
	return &messageService{
		logger: logger,
		messages: store.New(repo, logger, store.Options[entity.ContactMessage, int64]{
			Key:      cfg.Slots.Messages,
			Identity: func(m entity.ContactMessage) int64 { return m.ID },
		}),
		clock:     clock,
		validator: validator,
		publisher: publisher,
	}
}

func (srv *messageService) Create(ctx context.Context, input usecase.ContactInput) (entity.ContactMessage, error) {
	if err := srv.validator.Struct(input); err != nil {
		return entity.ContactMessage{}, err
	}

	msgType := input.Type
	if msgType == "" {
		msgType = entity.MessageTypeWholesale
	}

	message := entity.ContactMessage{
		ID:        srv.clock.NextID(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     strings.TrimSpace(input.Phone),
		Message:   strings.TrimSpace(input.Message),
		Type:      msgType,
		Read:      false,
		CreatedAt: srv.clock.Now(),
	}
	srv.messages.Prepend(ctx, message)

	srv.log(ctx).Info("Contact message received", slog.Int64("message_id", message.ID), slog.String("type", string(msgType)))

	publishStoreEvent(ctx, srv.log(ctx), srv.publisher, srv.clock, entity.EventContactMessageReceived, message)

	return message, nil
}

func (srv *messageService) SetRead(ctx context.Context, id int64, read bool) (entity.ContactMessage, bool) {
	return srv.messages.Update(ctx, id, func(m entity.ContactMessage) entity.ContactMessage {
		m.Read = read

		return m
	})
}

func (srv *messageService) Delete(ctx context.Context, id int64) bool {
	return srv.messages.Remove(ctx, id)
}

func (srv *messageService) GetByID(ctx context.Context, id int64) (entity.ContactMessage, bool) {
	return srv.messages.Get(ctx, id)
}

func (srv *messageService) List(ctx context.Context) []entity.ContactMessage {
	return srv.messages.Items(ctx)
}

func (srv *messageService) Filter(ctx context.Context, filter entity.ReadFilter) []entity.ContactMessage {
	switch filter {
	case entity.ReadFilterRead:
		return srv.messages.Filter(ctx, func(m entity.ContactMessage) bool { return m.Read })
	case entity.ReadFilterUnread:
		return srv.messages.Filter(ctx, func(m entity.ContactMessage) bool { return !m.Read })
	default:
		return srv.messages.Items(ctx)
	}
}

func (srv *messageService) CountUnread(ctx context.Context) int {
	return len(srv.Filter(ctx, entity.ReadFilterUnread))
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger, "messages")
}
