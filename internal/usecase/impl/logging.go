package impl

import (
	"context"
	"log/slog"

	deliverycontext "biaresh/internal/delivery/context"
)

// requestLogger returns the request-scoped logger carried by ctx, or fallback
func requestLogger(ctx context.Context, fallback *slog.Logger, component string) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, fallback).With(slog.String("component", component))
}
