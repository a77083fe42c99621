package usecase

import (
	"context"

	"biaresh/internal/domain/entity"
)

// CartUsecase is the shopper's cart. Lines are merged by (product id, variant).
type CartUsecase interface {
	// AddLine adds one unit of product/variant. An existing line gains one
	// unit in place; otherwise a new line is appended. openDrawer sets the
	// transient drawer flag.
	AddLine(ctx context.Context, product entity.Product, variant entity.Variant, openDrawer bool) entity.CartLine

	// RemoveLine deletes the line; it reports false if no such line exists
	RemoveLine(ctx context.Context, lineID string) bool

	// SetQuantity replaces the line quantity; qty <= 0 removes the line
	SetQuantity(ctx context.Context, lineID string, qty int) bool

	Lines(ctx context.Context) []entity.CartLine
	TotalPrice(ctx context.Context) int64
	TotalItemCount(ctx context.Context) int
	Summary(ctx context.Context) entity.CartSummary

	// Clear empties the cart and removes its slot
	Clear(ctx context.Context)

	DrawerOpen() bool
	SetDrawerOpen(open bool)
}
