package controllers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/poofware/tenancy-service/internal/middleware"
	"github.com/poofware/tenancy-service/internal/models"
	"github.com/poofware/tenancy-service/internal/utils"
)

var validate = validator.New()

// requireIdentity pulls the caller identity from the context, responding
// 401 itself when it is absent.
func requireIdentity(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	ident, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "No identity in context", nil)
		return middleware.Identity{}, false
	}
	return ident, true
}

// requireLandlord additionally checks the landlord role.
func requireLandlord(w http.ResponseWriter, r *http.Request) (middleware.Identity, bool) {
	ident, ok := requireIdentity(w, r)
	if !ok {
		return ident, false
	}
	if ident.Role != models.RoleLandlord {
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "Landlord role required", nil)
		return ident, false
	}
	return ident, true
}

// respondServiceError maps domain sentinels onto HTTP responses. Every
// rejected precondition gets its own human-readable reason.
func respondServiceError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, utils.ErrNotFound):
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Record not found", nil)
	case errors.Is(err, utils.ErrAlreadyMember):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "You are already a tenant of this property", nil)
	case errors.Is(err, utils.ErrAlreadyRequested):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "You have already requested to join this property", nil)
	case errors.Is(err, utils.ErrPropertyFull):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "All rooms are already occupied", nil)
	case errors.Is(err, utils.ErrCapacityExceeded):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "Cannot accept request: all rooms are already occupied", nil)
	case errors.Is(err, utils.ErrNotAMember):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "You are not a tenant of this property", nil)
	case errors.Is(err, utils.ErrNotOwner):
		utils.RespondErrorWithCode(w, http.StatusForbidden, utils.ErrCodeForbidden, "You do not own this record", nil)
	case errors.Is(err, utils.ErrRoleAlreadySet):
		utils.RespondErrorWithCode(w, http.StatusConflict, utils.ErrCodeConflict, "You have already set your role", nil)
	default:
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, fallback, nil, err)
	}
}

// tenantRef builds the roster/requester entry for the caller.
func tenantRef(ident middleware.Identity) models.Tenant {
	name := ident.DisplayName
	if name == "" {
		name = "Unknown"
	}
	return models.Tenant{
		Name:     name,
		Email:    ident.Email,
		PhotoURL: ident.PhotoURL,
	}
}
