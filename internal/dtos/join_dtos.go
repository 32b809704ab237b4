package dtos

import (
	"time"
)

/*
JoinRequestDTO is a pending join request as shown to the landlord,
aggregated across all of their properties.
*/
type JoinRequestDTO struct {
	ID             string    `json:"id"`
	PropertyID     string    `json:"property_id"`
	PropertyName   string    `json:"property_name"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	PhotoURL       string    `json:"photo_url,omitempty"`
	AvailableRooms int       `json:"available_rooms"`
	RequestedAt    time.Time `json:"requested_at"`
}
