// Package delivery defines the contract every transport entrypoint fulfils.
package delivery

import "context"

// Delivery is a long-running entrypoint (an HTTP server) started by main and
// stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
