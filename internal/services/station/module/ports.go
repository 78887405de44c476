package module

import dom "wifiman/internal/services/station/domain"

// Ports holds the ports exposed by the station module
type Ports struct {
	Connector dom.Port
}
