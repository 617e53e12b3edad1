package handlers

import (
	"net/http"

	"takatrack-client/internal/models"
	"takatrack-client/internal/telemetry"
	"takatrack-client/pkg/utils"
)

type MapSource interface {
	Snapshot(filter string) telemetry.Snapshot
}

type MapResponse struct {
	telemetry.Snapshot
	Filter string                   `json:"filter"`
	Counts map[models.BinStatus]int `json:"counts"`
}

// GetMap returns the latest poll result. It never triggers a fetch itself.
func GetMap(src MapSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := r.URL.Query().Get("filter")
		if filter == "" {
			filter = telemetry.FilterAll
		}

		all := src.Snapshot(telemetry.FilterAll)
		snap := all
		snap.Bins = telemetry.Filter(all.Bins, filter)

		utils.Success(w, MapResponse{
			Snapshot: snap,
			Filter:   filter,
			Counts:   telemetry.StatusCounts(all.Bins),
		})
	}
}
