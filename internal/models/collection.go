package models

// CollectionStatus is the lifecycle state of a waste collection
type CollectionStatus string

const (
	CollectionStatusPending    CollectionStatus = "pending"
	CollectionStatusInProgress CollectionStatus = "in_progress"
	CollectionStatusCompleted  CollectionStatus = "completed"
	CollectionStatusCancelled  CollectionStatus = "cancelled"
)

// Valid reports whether s is a known collection status.
func (s CollectionStatus) Valid() bool {
	switch s {
	case CollectionStatusPending, CollectionStatusInProgress, CollectionStatusCompleted, CollectionStatusCancelled:
		return true
	}
	return false
}

// Priority of a scheduled collection
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Collection is a scheduled pickup. Created pending, moved forward through
// explicit status updates, never deleted.
type Collection struct {
	ID            ID               `json:"id"`
	UserID        ID               `json:"user_id,omitempty"`
	BinID         ID               `json:"bin_id,omitempty"`
	Location      string           `json:"location"`
	WasteType     string           `json:"waste_type"`
	Status        CollectionStatus `json:"status"`
	Weight        float64          `json:"weight"`
	Priority      Priority         `json:"priority,omitempty"`
	ScheduledDate *string          `json:"scheduled_date,omitempty"` // ISO timestamp
	CompletedDate *string          `json:"completed_date,omitempty"` // ISO timestamp
	CreatedAt     string           `json:"created_at,omitempty"`
}

// CollectionRequest is the body of POST /api/waste/collections
type CollectionRequest struct {
	Location      string   `json:"location"`
	WasteType     string   `json:"wasteType"`
	ScheduledDate string   `json:"scheduledDate"`
	Priority      Priority `json:"priority"`
}

// StatusUpdateRequest is the body of PUT /api/waste/collections/:id
type StatusUpdateRequest struct {
	Status CollectionStatus `json:"status"`
}

// CollectionCounts are derived client-side by scanning collection statuses
type CollectionCounts struct {
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Completed  int `json:"completed"`
}
