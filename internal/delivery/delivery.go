// Package delivery defines the contract every transport frontend
// implements, so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started
// by main and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
