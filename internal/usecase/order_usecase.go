package usecase

import (
	"context"

	"biaresh/internal/domain/entity"
)

// OrderUsecase owns the order collection, newest first
type OrderUsecase interface {
	// Create stores a pending order at the front of the collection
	Create(ctx context.Context, input entity.OrderInput) entity.Order

	// SetStatus overwrites the status without any transition rules. An
	// unknown id changes nothing and reports false.
	SetStatus(ctx context.Context, id int64, status entity.OrderStatus) (entity.Order, bool)

	Delete(ctx context.Context, id int64) bool
	GetByID(ctx context.Context, id int64) (entity.Order, bool)
	List(ctx context.Context) []entity.Order

	// FilterByStatus returns all orders for an empty status
	FilterByStatus(ctx context.Context, status entity.OrderStatus) []entity.Order

	CountByStatus(ctx context.Context) map[entity.OrderStatus]int
}
