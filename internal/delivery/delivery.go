// Package delivery defines the inbound adapters of the application.
package delivery

import "context"

// Delivery is a long-running server started by main.
type Delivery interface {
	Serve(ctx context.Context) error
}
