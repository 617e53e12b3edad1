package handlers

import (
	"context"
	"errors"
	"net/http"

	"takatrack-client/internal/dashboard"
	"takatrack-client/internal/middleware"
	"takatrack-client/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// DashboardLoader is the aggregator as seen by the companion server
type DashboardLoader interface {
	Load(ctx context.Context) *dashboard.State
	Current() (*dashboard.State, bool)
	Fallback() dashboard.FallbackProvider
	Reset()
}

// GetDashboard reloads every resource and returns the role view. A degraded
// load still answers 200 with the demo notice set.
func GetDashboard(loader DashboardLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSessionFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		st := loader.Load(r.Context())
		utils.Success(w, dashboard.DeriveView(sess.User, *st, loader.Fallback()))
	}
}

// GetDashboardModal builds a drill-down from the last committed snapshot,
// loading one first if none exists for the current session.
func GetDashboardModal(loader DashboardLoader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := middleware.GetSessionFromContext(r)
		if !ok {
			utils.RespondError(w, http.StatusUnauthorized, "Not logged in")
			return
		}

		st, ok := loader.Current()
		if !ok {
			st = loader.Load(r.Context())
		}

		fb := loader.Fallback()
		view := dashboard.DeriveView(sess.User, *st, fb)
		modal, err := dashboard.BuildModal(chi.URLParam(r, "key"), view, *st, sess.User, fb)
		if errors.Is(err, dashboard.ErrUnknownModal) {
			utils.RespondError(w, http.StatusNotFound, "Unknown modal")
			return
		}
		if err != nil {
			respondFailure(w, err, "Failed to build modal")
			return
		}
		utils.Success(w, modal)
	}
}
