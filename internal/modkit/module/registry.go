package module

import (
	"sort"
	"sync"

	pstr "wifiman/internal/platform/strings"
)

// process-wide registry of built modules, filled during bootstrap in main
var (
	mu  sync.RWMutex
	reg = map[string]Module{}
)

// Register stores m under its name, replacing any previous entry
// A blank name panics
func Register(m Module) {
	name := pstr.MustString(m.Name(), "module name")
	mu.Lock()
	reg[name] = m
	mu.Unlock()
}

// Lookup returns the module registered under name
func Lookup(name string) (Module, bool) {
	mu.RLock()
	defer mu.RUnlock()
	m, ok := reg[name]
	return m, ok
}

// PortsAs fetches the module registered under name and extracts T from its ports
func PortsAs[T any](name string) (T, bool) {
	m, ok := Lookup(name)
	if !ok {
		var zero T
		return zero, false
	}
	return PortsOf[T](m)
}

// Names lists registered module names in sorted order
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]string, 0, len(reg))
	for n := range reg {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Reset clears the registry for tests
func Reset() {
	mu.Lock()
	reg = map[string]Module{}
	mu.Unlock()
}
