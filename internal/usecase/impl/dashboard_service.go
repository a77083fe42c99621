package impl

import (
	"context"

	"biaresh/internal/domain/entity"
	"biaresh/internal/usecase"
)

type dashboardService struct {
	catalog  usecase.CatalogUsecase
	orders   usecase.OrderUsecase
	messages usecase.MessageUsecase
}

// NewDashboardService creates the back-office overview
func NewDashboardService(catalog usecase.CatalogUsecase, orders usecase.OrderUsecase, messages usecase.MessageUsecase) usecase.DashboardUsecase {
	return &dashboardService{
		catalog:  catalog,
		orders:   orders,
		messages: messages,
	}
}

// Overview counts every collection. Revenue excludes cancelled orders.
func (srv *dashboardService) Overview(ctx context.Context) entity.Dashboard {
	orders := srv.orders.List(ctx)

	var revenue int64
	for _, o := range orders {
		if o.Status != entity.OrderStatusCancelled {
			revenue += o.Total
		}
	}

	return entity.Dashboard{
		TotalProducts:      len(srv.catalog.List(ctx)),
		ProductsByCategory: srv.catalog.CountByCategory(ctx),
		TotalOrders:        len(orders),
		OrdersByStatus:     srv.orders.CountByStatus(ctx),
		Revenue:            revenue,
		TotalMessages:      len(srv.messages.List(ctx)),
		UnreadMessages:     srv.messages.CountUnread(ctx),
	}
}
