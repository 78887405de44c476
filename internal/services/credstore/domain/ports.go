// Package domain defines the credential store types and ports
package domain

import (
	"context"
	"sort"
)

// Store maps a network name to its secret
type Store map[string]string

// Names returns the saved network names in sorted order
func (s Store) Names() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Port is the credential store surface used by the portal, orchestrator and status API
// Load never fails: a missing or unreadable record is an empty store
type Port interface {
	Load(ctx context.Context) Store
	Save(ctx context.Context, s Store) error
	Put(ctx context.Context, name, secret string) error
	Names(ctx context.Context) []string
}
