package dashboard

import (
	"errors"

	"takatrack-client/internal/models"
)

// Modal keys, one per drill-down the dashboard offers.
const (
	ModalNotifications = "notifications"
	ModalUsers         = "users"
	ModalReports       = "reports"
	ModalRoute         = "route"
	ModalCollections   = "collections"
	ModalWeight        = "weight"
	ModalRemaining     = "remaining"
	ModalDrivers       = "drivers"
	ModalHealth        = "health"
	ModalMyCollections = "myCollections"
	ModalNextPickup    = "nextPickup"
	ModalRecycling     = "recycling"
	ModalEcoPoints     = "ecoPoints"

	maxModalCollections = 5
)

var ErrUnknownModal = errors.New("unknown modal")

var modalTitles = map[string]string{
	ModalNotifications: "Notifications",
	ModalUsers:         "System Users",
	ModalReports:       "System Reports",
	ModalRoute:         "Today's Route",
	ModalCollections:   "Collections Done",
	ModalWeight:        "Weight Breakdown",
	ModalRemaining:     "Remaining Collections",
	ModalDrivers:       "Active Drivers",
	ModalHealth:        "System Health",
	ModalMyCollections: "My Collections",
	ModalNextPickup:    "Next Pickup Schedule",
	ModalRecycling:     "My Recycling",
	ModalEcoPoints:     "Eco Points",
}

// Modal is the detail shown when a widget is tapped.
type Modal struct {
	Key     string      `json:"key"`
	Title   string      `json:"title"`
	Summary string      `json:"summary,omitempty"`
	Items   interface{} `json:"items"`
}

type HealthCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

type RecyclingItem struct {
	models.RecyclingRecord
	Points int `json:"points"`
}

// BuildModal assembles the drill-down for key from an already derived view
// and the snapshot it was derived from.
func BuildModal(key string, v View, st State, user models.User, fb FallbackProvider) (Modal, error) {
	if fb == nil {
		fb = DemoData{}
	}
	title, ok := modalTitles[key]
	if !ok {
		return Modal{}, ErrUnknownModal
	}
	m := Modal{Key: key, Title: title}

	switch key {
	case ModalNotifications:
		m.Items = st.Notifications

	case ModalUsers:
		m.Items = fb.SystemUsers()

	case ModalReports:
		m.Items = fb.Reports()

	case ModalDrivers:
		m.Items = st.Drivers

	case ModalHealth:
		api, data := "Online", "Live"
		if st.Degraded {
			api, data = "Unreachable", "Demo"
		}
		m.Items = []HealthCheck{
			{Name: "Backend API", Status: api},
			{Name: "Dashboard data", Status: data},
		}

	case ModalRoute:
		m.Items = fb.DriverRoute()

	case ModalCollections:
		m.Items = routeSlice(fb.DriverRoute(), models.CollectionStatusCompleted, collectionsDone(v))

	case ModalRemaining:
		m.Items = routeSlice(fb.DriverRoute(), models.CollectionStatusPending, remaining(v))

	case ModalWeight:
		m.Items = fb.WeightBreakdown()

	case ModalMyCollections:
		items := residentOf(v, st, user, fb).Collections
		if len(items) > maxModalCollections {
			items = items[:maxModalCollections]
		}
		m.Items = items

	case ModalNextPickup:
		pickups := fb.NextPickups(user)
		if len(pickups) > 0 {
			m.Summary = "Next Pickup: " + pickups[0].Date + " at " + pickups[0].Time
		}
		m.Items = pickups

	case ModalRecycling:
		records := residentOf(v, st, user, fb).Recycling
		items := make([]RecyclingItem, len(records))
		for i, rec := range records {
			items[i] = RecyclingItem{RecyclingRecord: rec, Points: RecordPoints(rec)}
		}
		m.Items = items

	case ModalEcoPoints:
		m.Summary = "Current Level: Eco Warrior"
		m.Items = fb.EcoActivity()
	}

	return m, nil
}

func residentOf(v View, st State, user models.User, fb FallbackProvider) *ResidentView {
	if v.Resident != nil {
		return v.Resident
	}
	return residentView(user, st, fb)
}

func collectionsDone(v View) int {
	if v.Driver != nil {
		return v.Driver.CollectionsDone
	}
	return defaultCollectionsDone
}

func remaining(v View) int {
	if v.Driver != nil {
		return v.Driver.Remaining
	}
	return defaultRemaining
}

// routeSlice returns up to limit stops with the given status.
func routeSlice(stops []RouteStop, status models.CollectionStatus, limit int) []RouteStop {
	out := []RouteStop{}
	for _, stop := range stops {
		if len(out) >= limit {
			break
		}
		if stop.Status == status {
			out = append(out, stop)
		}
	}
	return out
}
