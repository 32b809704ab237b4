package dtos

import (
	"time"
)

type NotificationCountsDTO struct {
	JoinRequestCount int       `json:"join_request_count"`
	MaintenanceCount int       `json:"maintenance_count"`
	SuggestionCount  int       `json:"suggestion_count"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type OutcomeNotificationDTO struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
