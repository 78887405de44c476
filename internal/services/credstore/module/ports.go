package module

import dom "wifiman/internal/services/credstore/domain"

// Ports holds the ports exposed by the credstore module
type Ports struct {
	Store dom.Port
}
