// Package domain defines the provisioning state machine types and ports
package domain

import (
	"context"
	"time"

	"wifiman/internal/core/radio"
)

// State is an orchestrator state
type State string

// Orchestrator states in cycle order
const (
	Idle            State = "idle"
	CheckingSaved   State = "checking_saved"
	Scanning        State = "scanning"
	TryingCandidate State = "trying_candidate"
	Portaling       State = "portaling"
	Connected       State = "connected"
	Rebooting       State = "rebooting"
)

// Transition is one state change; Network and IP are set when known
type Transition struct {
	From    State     `json:"from"`
	To      State     `json:"to"`
	Network string    `json:"network,omitempty"`
	IP      string    `json:"ip,omitempty"`
	At      time.Time `json:"at"`
}

// Snapshot is the current state and when it was entered
type Snapshot struct {
	State   State     `json:"state"`
	Network string    `json:"network,omitempty"`
	IP      string    `json:"ip,omitempty"`
	Since   time.Time `json:"since"`
}

// Result summarizes one provisioning cycle
// Attempted lists candidate names in the order they were tried
type Result struct {
	State     State
	Network   string
	IP        string
	Attempted []string
	// ViaPortal is set when the cycle ended through the portal
	ViaPortal bool
}

// Observer receives every transition, synchronously and in order
type Observer interface {
	Observe(ctx context.Context, t Transition)
}

// ObserverFunc adapts a func to Observer
type ObserverFunc func(ctx context.Context, t Transition)

// Observe implements Observer
func (f ObserverFunc) Observe(ctx context.Context, t Transition) { f(ctx, t) }

// Port is the orchestrator surface used by the CLI and the status API
type Port interface {
	Run(ctx context.Context) (Result, error)
	Supervise(ctx context.Context) error
	State() Snapshot
	Subscribe(o Observer)
	IsConnected(ctx context.Context) bool
	Address(ctx context.Context) (radio.IPConfig, error)
	Disconnect(ctx context.Context) error
}
