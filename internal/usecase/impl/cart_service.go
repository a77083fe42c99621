package impl

import (
	"context"
	"log/slog"
	"maps"
	"slices"
	"sync/atomic"

	"biaresh/config"
	"biaresh/internal/domain/entity"
	"biaresh/internal/domain/repository"
	"biaresh/internal/infra/persistence/store"
	"biaresh/internal/usecase"
)

type cartService struct {
	logger     *slog.Logger
	lines      *store.Store[entity.CartLine, string]
	drawerOpen atomic.Bool
}

// NewCartService creates the cart backed by the configured cart slot
func NewCartService(logger *slog.Logger, repo repository.SlotRepository, cfg *config.Config) usecase.CartUsecase {
	return &cartService{
		logger: logger,
		lines: store.New(repo, logger, store.Options[entity.CartLine, string]{
			Key:      cfg.Slots.Cart,
			Identity: func(line entity.CartLine) string { return line.ID },
			Clone:    entity.CartLine.Clone,
		}),
	}
}

func (srv *cartService) AddLine(ctx context.Context, product entity.Product, variant entity.Variant, openDrawer bool) entity.CartLine {
	variant = maps.Clone(variant)
	if variant == nil {
		variant = entity.Variant{}
	}
	lineID := entity.CartLineID(product.ID, variant)

	var added entity.CartLine
	srv.lines.Mutate(ctx, func(lines []entity.CartLine) []entity.CartLine {
		if idx := slices.IndexFunc(lines, func(line entity.CartLine) bool { return line.ID == lineID }); idx >= 0 {
			lines[idx].Quantity++
			added = lines[idx]

			return lines
		}

		added = entity.CartLine{
			ID:       lineID,
			Product:  product.Clone(),
			Variant:  variant,
			Quantity: 1,
		}

		return append(lines, added)
	})

	if openDrawer {
		srv.drawerOpen.Store(true)
	}

	srv.log(ctx).Debug("Cart line added", slog.String("line_id", lineID), slog.Int("quantity", added.Quantity))

	return added
}

func (srv *cartService) RemoveLine(ctx context.Context, lineID string) bool {
	return srv.lines.Remove(ctx, lineID)
}

func (srv *cartService) SetQuantity(ctx context.Context, lineID string, qty int) bool {
	if qty <= 0 {
		return srv.RemoveLine(ctx, lineID)
	}

	_, found := srv.lines.Update(ctx, lineID, func(line entity.CartLine) entity.CartLine {
		line.Quantity = qty

		return line
	})

	return found
}

func (srv *cartService) Lines(ctx context.Context) []entity.CartLine {
	return srv.lines.Items(ctx)
}

func (srv *cartService) TotalPrice(ctx context.Context) int64 {
	return totalPrice(srv.lines.Items(ctx))
}

func (srv *cartService) TotalItemCount(ctx context.Context) int {
	return totalItems(srv.lines.Items(ctx))
}

func (srv *cartService) Summary(ctx context.Context) entity.CartSummary {
	lines := srv.lines.Items(ctx)

	return entity.CartSummary{
		Lines:      lines,
		TotalPrice: totalPrice(lines),
		TotalItems: totalItems(lines),
		DrawerOpen: srv.drawerOpen.Load(),
	}
}

func (srv *cartService) Clear(ctx context.Context) {
	srv.lines.Clear(ctx)
	srv.log(ctx).Debug("Cart cleared")
}

func (srv *cartService) DrawerOpen() bool {
	return srv.drawerOpen.Load()
}

func (srv *cartService) SetDrawerOpen(open bool) {
	srv.drawerOpen.Store(open)
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger, "cart")
}

func totalPrice(lines []entity.CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.Subtotal()
	}

	return total
}

func totalItems(lines []entity.CartLine) int {
	var count int
	for _, line := range lines {
		count += line.Quantity
	}

	return count
}
