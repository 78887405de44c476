package module

import dom "wifiman/internal/services/provision/domain"

// Ports holds the ports exposed by the provision module
type Ports struct {
	Orchestrator dom.Port
}
