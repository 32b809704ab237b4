package dtos

type SetRoleRequest struct {
	DisplayName string `json:"display_name" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=landlord tenant"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
