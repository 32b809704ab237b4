package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/utils"
)

type AccountController struct {
	svc *services.AccountService
}

func NewAccountController(svc *services.AccountService) *AccountController {
	return &AccountController{svc: svc}
}

// POST /api/v1/account/role
func (c *AccountController) SetRoleHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Display name and a valid role are required", nil, err)
		return
	}

	u, err := c.svc.SetRole(r.Context(), ident.UserID, ident.Email, req.DisplayName, req.Role)
	if err != nil {
		respondServiceError(w, err, "Failed to set role")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"display_name": u.DisplayName,
		"role":         u.Role,
	})
}
