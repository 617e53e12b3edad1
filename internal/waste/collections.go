// Package waste manages the two resources a user creates from the app:
// scheduled waste collections and recycling records.
package waste

import (
	"context"
	"fmt"
	"log"
	"strings"

	"takatrack-client/internal/models"
)

// Waste types offered by the schedule form
var wasteTypes = map[string]bool{
	"general":    true,
	"recyclable": true,
	"organic":    true,
	"hazardous":  true,
}

// AllowedTransitions lists the status changes the UI offers. The backend is
// trusted to reject anything else, so UpdateStatus does not re-check them.
var AllowedTransitions = map[models.CollectionStatus][]models.CollectionStatus{
	models.CollectionStatusPending:    {models.CollectionStatusInProgress, models.CollectionStatusCompleted},
	models.CollectionStatusInProgress: {models.CollectionStatusCompleted},
}

// NextStatuses returns the transitions offered for a collection in status s,
// never nil.
func NextStatuses(s models.CollectionStatus) []models.CollectionStatus {
	return append([]models.CollectionStatus{}, AllowedTransitions[s]...)
}

type CollectionBackend interface {
	Collections(ctx context.Context) ([]models.Collection, error)
	CreateCollection(ctx context.Context, req models.CollectionRequest) error
	UpdateCollectionStatus(ctx context.Context, id models.ID, status models.CollectionStatus) error
}

// CollectionList is a full listing with its derived counters. Next holds,
// per collection id, the status buttons the shell should offer.
type CollectionList struct {
	Collections []models.Collection                     `json:"collections"`
	Counts      models.CollectionCounts                 `json:"counts"`
	Next        map[models.ID][]models.CollectionStatus `json:"next"`
}

type CollectionManager struct {
	backend CollectionBackend
}

func NewCollectionManager(backend CollectionBackend) *CollectionManager {
	return &CollectionManager{backend: backend}
}

func (m *CollectionManager) List(ctx context.Context) (*CollectionList, error) {
	collections, err := m.backend.Collections(ctx)
	if err != nil {
		log.Printf("❌ Failed to load collections: %v", err)
		return nil, fmt.Errorf("failed to load collections: %w", err)
	}
	next := make(map[models.ID][]models.CollectionStatus, len(collections))
	for _, c := range collections {
		next[c.ID] = NextStatuses(c.Status)
	}
	return &CollectionList{
		Collections: collections,
		Counts:      CountStatuses(collections),
		Next:        next,
	}, nil
}

// CountStatuses tallies pending, in-progress and completed collections.
func CountStatuses(collections []models.Collection) models.CollectionCounts {
	var counts models.CollectionCounts
	for _, c := range collections {
		switch c.Status {
		case models.CollectionStatusPending:
			counts.Pending++
		case models.CollectionStatusInProgress:
			counts.InProgress++
		case models.CollectionStatusCompleted:
			counts.Completed++
		}
	}
	return counts
}

// Create validates and schedules a collection, then reloads the full list.
// Nothing is inserted locally.
func (m *CollectionManager) Create(ctx context.Context, req models.CollectionRequest) (*CollectionList, error) {
	req, err := normalizeCollection(req)
	if err != nil {
		return nil, err
	}

	if err := m.backend.CreateCollection(ctx, req); err != nil {
		log.Printf("❌ Failed to schedule collection at %s: %v", req.Location, err)
		return nil, fmt.Errorf("failed to schedule collection: %w", err)
	}
	log.Printf("✅ Collection scheduled: %s (%s, %s)", req.Location, req.WasteType, req.Priority)
	return m.List(ctx)
}

func normalizeCollection(req models.CollectionRequest) (models.CollectionRequest, error) {
	req.Location = strings.TrimSpace(req.Location)
	if req.Location == "" {
		return req, &ValidationError{Field: "location", Message: "Location is required"}
	}
	if strings.TrimSpace(req.ScheduledDate) == "" {
		return req, &ValidationError{Field: "scheduledDate", Message: "Scheduled date is required"}
	}
	if _, err := parseScheduledDate(req.ScheduledDate); err != nil {
		return req, &ValidationError{Field: "scheduledDate", Message: "Scheduled date is not a valid date"}
	}

	req.WasteType = strings.ToLower(strings.TrimSpace(req.WasteType))
	if req.WasteType == "" {
		req.WasteType = "general"
	}
	if !wasteTypes[req.WasteType] {
		return req, &ValidationError{Field: "wasteType", Message: "Unknown waste type"}
	}

	switch req.Priority {
	case "":
		req.Priority = models.PriorityMedium
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
	default:
		return req, &ValidationError{Field: "priority", Message: "Unknown priority"}
	}
	return req, nil
}

// UpdateStatus moves a collection to status and reloads the full list.
func (m *CollectionManager) UpdateStatus(ctx context.Context, id models.ID, status models.CollectionStatus) (*CollectionList, error) {
	if id == "" {
		return nil, &ValidationError{Field: "id", Message: "Collection id is required"}
	}
	if !status.Valid() {
		return nil, &ValidationError{Field: "status", Message: "Unknown status"}
	}

	if err := m.backend.UpdateCollectionStatus(ctx, id, status); err != nil {
		log.Printf("❌ Failed to update collection %s to %s: %v", id, status, err)
		return nil, fmt.Errorf("failed to update status: %w", err)
	}
	log.Printf("✅ Collection %s -> %s", id, status)
	return m.List(ctx)
}
