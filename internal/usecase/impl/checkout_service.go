package impl

import (
	"context"
	"log/slog"
	"strings"

	"biaresh/internal/domain/entity"
	domainerrors "biaresh/internal/domain/errors"
	"biaresh/internal/domain/service"
	"biaresh/internal/usecase"
)

type checkoutService struct {
	logger    *slog.Logger
	cart      usecase.CartUsecase
	orders    usecase.OrderUsecase
	validator service.InputValidator
	publisher service.EventPublisher
	clock     service.Clock
}

// NewCheckoutService creates the checkout flow over the cart and order book
func NewCheckoutService(
	logger *slog.Logger,
	cart usecase.CartUsecase,
	orders usecase.OrderUsecase,
	validator service.InputValidator,
	publisher service.EventPublisher,
	clock service.Clock,
) usecase.CheckoutUsecase {
	return &checkoutService{
		logger:    logger,
		cart:      cart,
		orders:    orders,
		validator: validator,
		publisher: publisher,
		clock:     clock,
	}
}

func (srv *checkoutService) PlaceOrder(ctx context.Context, input usecase.CheckoutInput) (entity.Order, error) {
	if err := srv.validator.Struct(input); err != nil {
		return entity.Order{}, err
	}

	lines := srv.cart.Lines(ctx)
	if len(lines) == 0 {
		return entity.Order{}, domainerrors.ErrCartEmpty
	}

	order := srv.orders.Create(ctx, entity.OrderInput{
		Customer: input.Customer.ToCustomer(),
		Items:    entity.OrderItemsFromCart(lines),
		Total:    totalPrice(lines),
		Notes:    strings.TrimSpace(input.Notes),
	})

	srv.cart.Clear(ctx)
	srv.cart.SetDrawerOpen(false)

	log := requestLogger(ctx, srv.logger, "checkout")
	log.Info("Order placed", slog.Int64("order_id", order.ID), slog.Int("lines", len(order.Items)))

	publishStoreEvent(ctx, log, srv.publisher, srv.clock, entity.EventOrderPlaced, order)

	return order, nil
}
