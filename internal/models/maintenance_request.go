package models

import (
	"time"
)

type MaintenanceRequest struct {
	ID          string    `json:"-"`
	TenantName  string    `json:"tenantName"`
	TenantEmail string    `json:"tenantEmail"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}
