package models

import (
	"time"
)

// NotificationCounter is the denormalized per-landlord unread aggregate,
// keyed by landlord id. It approximates the count of live records addressed
// to the landlord; it is not a source of truth and no field is guaranteed
// transactionally consistent with the underlying record sets.
type NotificationCounter struct {
	JoinRequestCount int       `json:"joinRequestCount"`
	MaintenanceCount int       `json:"maintenanceCount"`
	SuggestionCount  int       `json:"suggestionCount"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
