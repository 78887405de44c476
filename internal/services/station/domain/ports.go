// Package domain defines station join attempts
package domain

import "context"

// Outcome is the result of a join attempt
type Outcome int

// Join outcomes
const (
	TimedOut Outcome = iota
	Connected
)

// String returns the outcome name for logs and payloads
func (o Outcome) String() string {
	if o == Connected {
		return "connected"
	}
	return "timed_out"
}

// Attempt records one join; Secret never leaves the process
type Attempt struct {
	Name    string
	Secret  string `json:"-"`
	Outcome Outcome
}

// OK reports whether the attempt associated
func (a Attempt) OK() bool { return a.Outcome == Connected }

// Port joins a named network and waits for association
type Port interface {
	Connect(ctx context.Context, name, secret string) Attempt
}
