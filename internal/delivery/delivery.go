// Package delivery defines the contract every transport (HTTP, worker, ...)
// implements so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a startable transport.
type Delivery interface {
	Serve(ctx context.Context) error
}
