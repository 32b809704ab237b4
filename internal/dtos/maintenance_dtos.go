package dtos

import (
	"time"
)

type SubmitMaintenanceRequest struct {
	Message string `json:"message" validate:"required"`
}

type MaintenanceRequestDTO struct {
	ID           string    `json:"id"`
	PropertyID   string    `json:"property_id"`
	PropertyName string    `json:"property_name"`
	Location     string    `json:"location,omitempty"`
	TenantName   string    `json:"tenant_name"`
	TenantEmail  string    `json:"tenant_email"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"created_at"`
}
