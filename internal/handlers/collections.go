package handlers

import (
	"context"
	"net/http"

	"takatrack-client/internal/models"
	"takatrack-client/internal/waste"
	"takatrack-client/pkg/utils"

	"github.com/go-chi/chi/v5"
)

// Publisher pushes events to connected shells
type Publisher interface {
	Publish(eventType string, data interface{})
}

type CollectionService interface {
	List(ctx context.Context) (*waste.CollectionList, error)
	Create(ctx context.Context, req models.CollectionRequest) (*waste.CollectionList, error)
	UpdateStatus(ctx context.Context, id models.ID, status models.CollectionStatus) (*waste.CollectionList, error)
}

const EventCollectionsUpdated = "collections.updated"

func ListCollections(svc CollectionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.List(r.Context())
		if err != nil {
			respondFailure(w, err, "Failed to load collections")
			return
		}
		utils.Success(w, list)
	}
}

func CreateCollection(svc CollectionService, events Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CollectionRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		list, err := svc.Create(r.Context(), req)
		if err != nil {
			respondFailure(w, err, "Failed to schedule collection")
			return
		}

		events.Publish(EventCollectionsUpdated, list.Counts)
		utils.JSON(w, http.StatusCreated, list)
	}
}

func UpdateCollectionStatus(svc CollectionService, events Publisher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if id == "" {
			utils.RespondError(w, http.StatusBadRequest, "Bad Request")
			return
		}

		var req models.StatusUpdateRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		list, err := svc.UpdateStatus(r.Context(), models.ID(id), req.Status)
		if err != nil {
			respondFailure(w, err, "Failed to update status")
			return
		}

		events.Publish(EventCollectionsUpdated, list.Counts)
		utils.Success(w, list)
	}
}
