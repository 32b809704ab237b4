package models

import (
	"time"
)

const (
	OutcomeAccepted = "Accepted"
	OutcomeRejected = "Rejected"
)

// TenantNotification records the resolution of a join request for the
// requesting tenant. Created exactly once per resolution; deleted by the
// tenant after reading.
type TenantNotification struct {
	ID           string    `json:"-"`
	TenantEmail  string    `json:"tenantEmail"`
	PropertyID   string    `json:"propertyId"`
	PropertyName string    `json:"propertyName"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}
