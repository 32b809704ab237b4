package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/utils"
)

type PropertyController struct {
	svc *services.PropertyService
}

func NewPropertyController(svc *services.PropertyService) *PropertyController {
	return &PropertyController{svc: svc}
}

// POST /api/v1/properties
func (c *PropertyController) CreateHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	var req dtos.CreatePropertyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation,
			"Property name and location are required; rooms must be a positive integer", nil, err)
		return
	}

	p, err := c.svc.Create(r.Context(), ident.UserID, ident.DisplayName, req)
	if err != nil {
		respondServiceError(w, err, "Failed to create property")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"id": p.ID})
}

// GET /api/v1/properties
func (c *PropertyController) ListHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	props, err := c.svc.ListByLandlord(r.Context(), ident.UserID)
	if err != nil {
		respondServiceError(w, err, "Failed to list properties")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// DELETE /api/v1/properties/{propertyId}
func (c *PropertyController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	propertyID := mux.Vars(r)["propertyId"]
	if err := c.svc.Delete(r.Context(), ident.UserID, propertyID); err != nil {
		respondServiceError(w, err, "Failed to delete property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Property deleted"})
}

// GET /api/v1/properties/available
func (c *PropertyController) ListAvailableHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	props, err := c.svc.ListAvailable(r.Context(), ident.Email)
	if err != nil {
		respondServiceError(w, err, "Failed to list available properties")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// GET /api/v1/properties/joined
func (c *PropertyController) ListJoinedHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	props, err := c.svc.ListJoined(r.Context(), ident.Email)
	if err != nil {
		respondServiceError(w, err, "Failed to list joined properties")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, props)
}

// POST /api/v1/properties/{propertyId}/leave
func (c *PropertyController) LeaveHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	propertyID := mux.Vars(r)["propertyId"]
	if err := c.svc.Leave(r.Context(), propertyID, ident.Email); err != nil {
		respondServiceError(w, err, "Failed to leave property")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "You left the property"})
}

// DELETE /api/v1/properties/{propertyId}/tenants/{email}
func (c *PropertyController) RemoveTenantHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	if err := c.svc.RemoveTenant(r.Context(), ident.UserID, vars["propertyId"], vars["email"]); err != nil {
		respondServiceError(w, err, "Failed to remove tenant")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Tenant removed"})
}
