package models

// DashboardStats are aggregate counters. Every field is optional so derived
// widgets can tell a missing counter apart from a zero one.
type DashboardStats struct {
	TotalBins          *int     `json:"totalBins,omitempty"`
	CollectedToday     *int     `json:"collectedToday,omitempty"`
	RecycledWeight     *float64 `json:"recycledWeight,omitempty"`
	PendingCollections *int     `json:"pendingCollections,omitempty"`
	ActiveDrivers      *int     `json:"activeDrivers,omitempty"`
	Completed          *int     `json:"completed,omitempty"`
	Pending            *int     `json:"pending,omitempty"`
	InProgress         *int     `json:"inProgress,omitempty"`
}

// NotificationType is the severity shown next to a notification
type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationSuccess NotificationType = "success"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a read-only display entity
type Notification struct {
	ID      ID               `json:"id"`
	Title   string           `json:"title"`
	Message string           `json:"message"`
	Type    NotificationType `json:"type"`
	Time    string           `json:"time"`
}

type Driver struct {
	ID                ID      `json:"id"`
	Name              string  `json:"name"`
	Phone             string  `json:"phone,omitempty"`
	Email             string  `json:"email,omitempty"`
	ActiveCollections int     `json:"activeCollections"`
	TotalCollected    float64 `json:"totalCollected"`
	Status            string  `json:"status"`
}

// IntPtr and FloatPtr build optional counters
func IntPtr(v int) *int { return &v }

func FloatPtr(v float64) *float64 { return &v }
