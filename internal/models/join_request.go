package models

import (
	"time"
)

// JoinRequest lives in a per-property sub-collection. At most one active
// request exists per (property, email) pair; a request is never updated in
// place, only created and later deleted on accept/reject.
type JoinRequest struct {
	ID          string    `json:"-"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhotoURL    string    `json:"photoURL"`
	RequestedAt time.Time `json:"requestedAt"`
}
