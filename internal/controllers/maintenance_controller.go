package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/utils"
)

type MaintenanceController struct {
	svc *services.MaintenanceService
}

func NewMaintenanceController(svc *services.MaintenanceService) *MaintenanceController {
	return &MaintenanceController{svc: svc}
}

// POST /api/v1/properties/{propertyId}/maintenance
func (c *MaintenanceController) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.SubmitMaintenanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Request details are required", nil, err)
		return
	}

	propertyID := mux.Vars(r)["propertyId"]
	created, err := c.svc.Submit(r.Context(), propertyID, tenantRef(ident), req.Message)
	if err != nil {
		respondServiceError(w, err, "Failed to submit maintenance request")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

// GET /api/v1/maintenance
func (c *MaintenanceController) ListHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	reqs, err := c.svc.ListForLandlord(r.Context(), ident.UserID)
	if err != nil {
		respondServiceError(w, err, "Failed to list maintenance requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reqs)
}

// GET /api/v1/maintenance/mine
func (c *MaintenanceController) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	reqs, err := c.svc.ListForTenant(r.Context(), ident.Email)
	if err != nil {
		respondServiceError(w, err, "Failed to list maintenance requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reqs)
}

// DELETE /api/v1/properties/{propertyId}/maintenance/{requestId}
func (c *MaintenanceController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}

	vars := mux.Vars(r)
	if err := c.svc.Delete(r.Context(), vars["propertyId"], vars["requestId"]); err != nil {
		respondServiceError(w, err, "Failed to delete maintenance request")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Request deleted"})
}
