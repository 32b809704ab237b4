package dtos

import (
	"time"
)

type CreatePropertyRequest struct {
	Name        string `json:"name" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description"`
	Rooms       int    `json:"rooms" validate:"required,gt=0"`
}

type TenantDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	PhotoURL string `json:"photo_url,omitempty"`
}

/*
PropertyDTO is used by both landlord- and tenant-facing listings. The roster
is included only for the owning landlord; tenant listings carry occupancy
numbers and, for available properties, whether the caller has already
requested to join.
*/
type PropertyDTO struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Location    string      `json:"location"`
	Description string      `json:"description,omitempty"`
	Rooms       int         `json:"rooms"`
	OwnerName   string      `json:"owner_name"`
	TenantCount int         `json:"tenant_count"`
	Available   bool        `json:"available"`
	Requested   bool        `json:"requested,omitempty"`
	Tenants     []TenantDTO `json:"tenants,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
