package usecase

import (
	"context"

	"biaresh/internal/domain/entity"
)

// DashboardUsecase aggregates the back-office overview
type DashboardUsecase interface {
	Overview(ctx context.Context) entity.Dashboard
}
