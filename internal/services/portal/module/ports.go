package module

import dom "wifiman/internal/services/portal/domain"

// Ports holds the ports exposed by the portal module
type Ports struct {
	Portal dom.Port
}
