// Package delivery holds the process entry surfaces (API server, push worker).
package delivery

import "context"

// Delivery is a long-running server started by the fx application
type Delivery interface {
	Serve(ctx context.Context) error
}
