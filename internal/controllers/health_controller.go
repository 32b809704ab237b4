package controllers

import (
	"context"
	"net/http"

	"github.com/poofware/tenancy-service/internal/store"
	"github.com/poofware/tenancy-service/internal/utils"
)

type HealthController struct {
	store store.Store
}

func NewHealthController(s store.Store) *HealthController {
	return &HealthController{store: s}
}

// GET /health
func (c *HealthController) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	if pinger, ok := c.store.(interface{ Ping(context.Context) error }); ok {
		if err := pinger.Ping(r.Context()); err != nil {
			utils.RespondErrorWithCode(w, http.StatusServiceUnavailable, utils.ErrCodeInternal, "Store unreachable", nil, err)
			return
		}
	}
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
