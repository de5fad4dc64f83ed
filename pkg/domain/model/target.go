package model

import (
	"github.com/C-S-I-FIIT/egis/pkg/domain/types"
)

// Target is a single scan target resolved from the inventory. It is not modified after resolution.
type Target struct {
	IP             string               `json:"ip"`
	DNSName        string               `json:"dns_name,omitempty"`
	Description    string               `json:"description,omitempty"`
	OrganizationID types.OrganizationID `json:"organization_id,omitempty"`
	DeviceMetadata map[string]string    `json:"device_metadata,omitempty"`
}

// Organization is a tenant of the inventory that owns a set of targets
type Organization struct {
	ID          types.OrganizationID `json:"id"`
	Name        string               `json:"name"`
	Slug        string               `json:"slug,omitempty"`
	Description string               `json:"description,omitempty"`
	Contact     *Contact             `json:"contact,omitempty"`
}

type Contact struct {
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role,omitempty"`
	Priority string `json:"priority,omitempty"`
}

// TargetIndex returns targets keyed by IP address.
func TargetIndex(targets []Target) map[string]Target {
	idx := make(map[string]Target, len(targets))
	for _, t := range targets {
		idx[t.IP] = t
	}
	return idx
}
