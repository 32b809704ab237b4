package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/utils"
)

type SuggestionController struct {
	svc *services.SuggestionService
}

func NewSuggestionController(svc *services.SuggestionService) *SuggestionController {
	return &SuggestionController{svc: svc}
}

// POST /api/v1/suggestions
func (c *SuggestionController) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req dtos.SubmitSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Suggestion details are required", nil, err)
		return
	}

	created, err := c.svc.Submit(r.Context(), tenantRef(ident), req.Message)
	if err != nil {
		respondServiceError(w, err, "Failed to submit suggestion")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"id": created.ID})
}

// GET /api/v1/suggestions
func (c *SuggestionController) ListHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	sgs, err := c.svc.ListForLandlord(r.Context(), ident.UserID)
	if err != nil {
		respondServiceError(w, err, "Failed to list suggestions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sgs)
}

// GET /api/v1/suggestions/mine
func (c *SuggestionController) ListMineHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	sgs, err := c.svc.ListForTenant(r.Context(), ident.Email)
	if err != nil {
		respondServiceError(w, err, "Failed to list suggestions")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sgs)
}

// DELETE /api/v1/suggestions/{suggestionId}
func (c *SuggestionController) DeleteHandler(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}

	if err := c.svc.Delete(r.Context(), mux.Vars(r)["suggestionId"]); err != nil {
		respondServiceError(w, err, "Failed to delete suggestion")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Suggestion deleted"})
}
