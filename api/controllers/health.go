package controllers

import (
	"context"
	"net/http"

	"github.com/uniformworks/portal-backend/api/responses"
	"github.com/uniformworks/portal-backend/pkg/config"
	pkgerrors "github.com/uniformworks/portal-backend/pkg/errors"
	"github.com/uniformworks/portal-backend/pkg/logger"
)

// Pinger is the slice of the store client health checks care about.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Portal-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady reports ready only when the backing store answers a ping. A
// broken store means half the portal is down, so readiness gates on it.
func HealthReady(cfg *config.Config, logg *logger.Logger, store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Portal-Env", cfg.App.Env)

		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "store ping failed"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
