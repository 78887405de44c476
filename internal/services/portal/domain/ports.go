// Package domain defines the captive portal port
package domain

import (
	"context"
	"net"
)

// Outcome reports how a portal session ended in association
// Network is empty when the station associated without a portal submission
type Outcome struct {
	Network string
	IP      string
}

// Port serves the configuration portal until the station associates
// Only a listening socket fault or ctx cancellation is returned as an error
type Port interface {
	Serve(ctx context.Context, ln net.Listener) (Outcome, error)
	ListenAndServe(ctx context.Context) (Outcome, error)
}
