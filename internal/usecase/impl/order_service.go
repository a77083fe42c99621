package impl

import (
	"context"
	"log/slog"

	"biaresh/config"
	"biaresh/internal/domain/entity"
	"biaresh/internal/domain/repository"
	"biaresh/internal/domain/service"
	"biaresh/internal/infra/persistence/store"
	"biaresh/internal/usecase"
)

type orderService struct {
	logger *slog.Logger
	orders *store.Store[entity.Order, int64]
	clock  service.Clock
}

// NewOrderService creates the order book backed by the configured order slot
func NewOrderService(logger *slog.Logger, repo repository.SlotRepository, cfg *config.Config, clock service.Clock) usecase.OrderUsecase {
	return &orderService{
		logger: logger,
		orders: store.New(repo, logger, store.Options[entity.Order, int64]{
			Key:      cfg.Slots.Orders,
			Identity: func(o entity.Order) int64 { return o.ID },
			Clone:    entity.Order.Clone,
		}),
		clock: clock,
	}
}

func (srv *orderService) Create(ctx context.Context, input entity.OrderInput) entity.Order {
	items := input.Items
	if items == nil {
		items = []entity.OrderItem{}
	}

	order := entity.Order{
		ID:        srv.clock.NextID(),
		Customer:  input.Customer,
		Items:     items,
		Total:     input.Total,
		Notes:     input.Notes,
		Status:    entity.OrderStatusPending,
		CreatedAt: srv.clock.Now(),
	}
	srv.orders.Prepend(ctx, order)

	srv.log(ctx).Info("Order created", slog.Int64("order_id", order.ID), slog.Int64("total", order.Total))

	return order
}

func (srv *orderService) SetStatus(ctx context.Context, id int64, status entity.OrderStatus) (entity.Order, bool) {
	order, found := srv.orders.Update(ctx, id, func(o entity.Order) entity.Order {
		o.Status = status

		return o
	})
	if !found {
		srv.log(ctx).Debug("Status change for unknown order ignored", slog.Int64("order_id", id))

		return entity.Order{}, false
	}

	srv.log(ctx).Info("Order status changed", slog.Int64("order_id", id), slog.String("status", string(status)))

	return order, true
}

func (srv *orderService) Delete(ctx context.Context, id int64) bool {
	return srv.orders.Remove(ctx, id)
}

func (srv *orderService) GetByID(ctx context.Context, id int64) (entity.Order, bool) {
	return srv.orders.Get(ctx, id)
}

func (srv *orderService) List(ctx context.Context) []entity.Order {
	return srv.orders.Items(ctx)
}

func (srv *orderService) FilterByStatus(ctx context.Context, status entity.OrderStatus) []entity.Order {
	if status == "" {
		return srv.orders.Items(ctx)
	}

	return srv.orders.Filter(ctx, func(o entity.Order) bool { return o.Status == status })
}

func (srv *orderService) CountByStatus(ctx context.Context) map[entity.OrderStatus]int {
	counts := make(map[entity.OrderStatus]int, len(entity.OrderStatuses()))
	for _, status := range entity.OrderStatuses() {
		counts[status] = 0
	}
	for _, o := range srv.orders.Items(ctx) {
		counts[o.Status]++
	}

	return counts
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return requestLogger(ctx, srv.logger, "orders")
}
