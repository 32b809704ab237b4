package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/utils"
)

type JoinController struct {
	svc *services.JoinService
}

func NewJoinController(svc *services.JoinService) *JoinController {
	return &JoinController{svc: svc}
}

// POST /api/v1/properties/{propertyId}/join-requests
func (c *JoinController) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	propertyID := mux.Vars(r)["propertyId"]
	req, err := c.svc.Submit(r.Context(), propertyID, tenantRef(ident))
	if err != nil {
		respondServiceError(w, err, "Failed to submit join request")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"id": req.ID})
}

// GET /api/v1/join-requests
func (c *JoinController) ListHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	reqs, err := c.svc.ListForLandlord(r.Context(), ident.UserID)
	if err != nil {
		respondServiceError(w, err, "Failed to list join requests")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reqs)
}

// POST /api/v1/properties/{propertyId}/join-requests/{requestId}/accept
func (c *JoinController) AcceptHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireLandlord(w, r); !ok {
		return
	}

	vars := mux.Vars(r)
	if _, err := c.svc.Accept(r.Context(), vars["propertyId"], vars["requestId"]); err != nil {
		respondServiceError(w, err, "Failed to accept join request")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Join request accepted"})
}

// POST /api/v1/properties/{propertyId}/join-requests/{requestId}/reject
func (c *JoinController) RejectHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireLandlord(w, r); !ok {
		return
	}

	vars := mux.Vars(r)
	if err := c.svc.Reject(r.Context(), vars["propertyId"], vars["requestId"]); err != nil {
		respondServiceError(w, err, "Failed to reject join request")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Join request rejected"})
}
