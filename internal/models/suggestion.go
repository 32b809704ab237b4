package models

import (
	"time"
)

// Suggestion is addressed directly to a landlord id rather than scoped to a
// property.
type Suggestion struct {
	ID          string    `json:"-"`
	LandlordUID string    `json:"landlordUid"`
	TenantName  string    `json:"tenantName"`
	TenantEmail string    `json:"tenantEmail"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}
