// Package domain holds the status API payloads
package domain

import (
	"time"

	pdom "wifiman/internal/services/provision/domain"
)

// Status is the daemon's view of the station
type Status struct {
	State      pdom.State `json:"state"`
	Associated bool       `json:"associated"`
	Network    string     `json:"network,omitempty"`
	IP         string     `json:"ip,omitempty"`
	Netmask    string     `json:"netmask,omitempty"`
	Gateway    string     `json:"gateway,omitempty"`
	DNS        string     `json:"dns,omitempty"`
	Since      time.Time  `json:"since"`
}

// Networks lists saved network names; secrets are never returned
type Networks struct {
	Networks []string `json:"networks"`
}

// CredentialInput saves or replaces one network
type CredentialInput struct {
	SSID     string `json:"ssid" validate:"required,ssid"`
	Password string `json:"password" validate:"max=63"`
}

// CredentialSaved acknowledges a stored network
type CredentialSaved struct {
	SSID string `json:"ssid"`
}
