package dtos

import (
	"time"
)

type SubmitSuggestionRequest struct {
	Message string `json:"message" validate:"required"`
}

type SuggestionDTO struct {
	ID          string    `json:"id"`
	TenantName  string    `json:"tenant_name"`
	TenantEmail string    `json:"tenant_email"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"created_at"`
}
