package models

import (
	"time"
)

// Tenant is an occupant entry on a property's roster. Order is not
// significant; entries are unique by email.
type Tenant struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photoURL"`
}

type Property struct {
	ID          string    `json:"-"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Rooms       int       `json:"rooms"`
	CreatedBy   string    `json:"createdBy"`
	OwnerName   string    `json:"ownerName"`
	CreatedAt   time.Time `json:"createdAt"`
	Tenants     []Tenant  `json:"tenants"`
}

// HasTenant reports whether email is on the current roster.
func (p *Property) HasTenant(email string) bool {
	for _, t := range p.Tenants {
		if t.Email == email {
			return true
		}
	}
	return false
}
