package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/poofware/tenancy-service/internal/dtos"
	"github.com/poofware/tenancy-service/internal/services"
	"github.com/poofware/tenancy-service/internal/utils"
)

type NotificationController struct {
	svc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{svc: svc}
}

// GET /api/v1/notifications
func (c *NotificationController) CountsHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	counts, err := c.svc.Counts(r.Context(), ident.UserID)
	if err != nil {
		respondServiceError(w, err, "Failed to read notifications")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, counts)
}

// POST /api/v1/notifications/{category}/view
func (c *NotificationController) ViewCategoryHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireLandlord(w, r)
	if !ok {
		return
	}

	category := mux.Vars(r)["category"]
	if err := c.svc.ViewCategory(r.Context(), ident.UserID, category); err != nil {
		respondServiceError(w, err, "Failed to mark category viewed")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Viewed"})
}

// GET /api/v1/notifications/outcomes
func (c *NotificationController) OutcomesHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	ns, err := c.svc.Outcomes(r.Context(), ident.Email)
	if err != nil {
		respondServiceError(w, err, "Failed to list notifications")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, ns)
}

// DELETE /api/v1/notifications/outcomes/{notificationId}
func (c *NotificationController) AckOutcomeHandler(w http.ResponseWriter, r *http.Request) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	if err := c.svc.AckOutcome(r.Context(), ident.Email, mux.Vars(r)["notificationId"]); err != nil {
		respondServiceError(w, err, "Failed to delete notification")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "Notification deleted"})
}
