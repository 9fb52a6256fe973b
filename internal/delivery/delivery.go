// Package delivery defines the contract shared by all transport entrypoints.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker) started by the
// application after dependency wiring completes.
type Delivery interface {
	Serve(ctx context.Context) error
}
