package usecase

import (
	"context"

	"biaresh/internal/domain/entity"
)

// CheckoutUsecase turns the current cart into an order
type CheckoutUsecase interface {
	// PlaceOrder validates the form, snapshots the cart into a pending order
	// and clears the cart. The two writes are independent; nothing rolls the
	// order back if clearing the cart fails.
	PlaceOrder(ctx context.Context, input CheckoutInput) (entity.Order, error)
}
