package usecase

import (
	"context"

	"biaresh/internal/domain/entity"
)

// MessageUsecase owns contact messages, newest first
type MessageUsecase interface {
	// Create validates the form, stores an unread message and announces it
	Create(ctx context.Context, input ContactInput) (entity.ContactMessage, error)

	SetRead(ctx context.Context, id int64, read bool) (entity.ContactMessage, bool)
	Delete(ctx context.Context, id int64) bool
	GetByID(ctx context.Context, id int64) (entity.ContactMessage, bool)
	List(ctx context.Context) []entity.ContactMessage
	Filter(ctx context.Context, filter entity.ReadFilter) []entity.ContactMessage
	CountUnread(ctx context.Context) int
}
