package handlers

import (
	"context"
	"net/http"

	"takatrack-client/internal/models"
	"takatrack-client/internal/waste"
	"takatrack-client/pkg/utils"
)

type RecyclingService interface {
	List(ctx context.Context) (*waste.RecyclingList, error)
	Create(ctx context.Context, req models.RecyclingRequest) (*waste.RecyclingList, error)
}

const EventRecyclingUpdated = "recycling.updated"

func ListRecycling(svc RecyclingService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			respondFailure(w, err, "Failed to load recycling data")
			return
		}
		utils.Success(w, list)
	}
}

func CreateRecycling(svc RecyclingService, events Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RecyclingRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		list, err := svc.Create(r.Context(), req)
		if err != nil {
			respondFailure(w, err, "Failed to add record")
			return
		}

		events.Publish(EventRecyclingUpdated, list.Stats)
		utils.JSON(w, http.StatusCreated, list)
	}
}
