package dashboard

import (
	"fmt"
	"math"

	"takatrack-client/internal/models"
)

// Fixed widget values that have no live data behind them yet.
const (
	DriverRouteSize       = 8
	DriverWeightCollected = 245.0 // kg
	AdminTotalUsers       = 156
	AdminSystemHealth     = 98 // percent
	AdminReports          = 24
	ResidentNextPickup    = 3 // days

	defaultCollectionsDone = 5
	defaultRemaining       = 3
	maxNotifications       = 5
)

type Widget struct {
	Key   string `json:"key"` // modal opened when the widget is tapped
	Label string `json:"label"`
	Value string `json:"value"`
}

type DriverView struct {
	RouteSize       int     `json:"routeSize"`
	CollectionsDone int     `json:"collectionsDone"`
	WeightCollected float64 `json:"weightCollected"`
	Remaining       int     `json:"remaining"`
}

type AdminView struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveDrivers int `json:"activeDrivers"`
	SystemHealth  int `json:"systemHealth"`
	Reports       int `json:"reports"`
}

type ResidentView struct {
	Collections    []models.Collection      `json:"collections"`
	Recycling      []models.RecyclingRecord `json:"recycling"`
	UsingExamples  bool                     `json:"usingExamples"`
	NextPickupDays int                      `json:"nextPickupDays"`
	RecycledWeight float64                  `json:"recycledWeight"`
	EcoPoints      int                      `json:"ecoPoints"`
}

// View is the role-specific view-model the shell renders.
// Exactly one of Driver, Admin and Resident is set.
type View struct {
	Role          models.Role           `json:"role"`
	Title         string                `json:"title"`
	Heading       string                `json:"heading"`
	Widgets       []Widget              `json:"widgets"`
	Notifications []models.Notification `json:"notifications"`
	Driver        *DriverView           `json:"driver,omitempty"`
	Admin         *AdminView            `json:"admin,omitempty"`
	Resident      *ResidentView         `json:"resident,omitempty"`
	Degraded      bool                  `json:"degraded"`
	Notice        string                `json:"notice,omitempty"`
}

// DeriveView maps a committed snapshot to the widgets the user's role sees.
// It is pure: the same inputs always produce the same view.
func DeriveView(user models.User, st State, fb FallbackProvider) View {
	if fb == nil {
		fb = DemoData{}
	}

	notifications := st.Notifications
	if len(notifications) > maxNotifications {
		notifications = notifications[:maxNotifications]
	}

	v := View{
		Role:          user.Role,
		Notifications: notifications,
		Degraded:      st.Degraded,
		Notice:        st.Notice,
	}

	switch user.Role {
	case models.RoleDriver:
		d := &DriverView{
			RouteSize:       DriverRouteSize,
			CollectionsDone: firstSet(defaultCollectionsDone, st.Stats.Completed, st.Stats.CollectedToday),
			WeightCollected: DriverWeightCollected,
			Remaining:       firstSet(defaultRemaining, st.Stats.PendingCollections, st.Stats.Pending),
		}
		v.Title = "Driver Dashboard"
		v.Heading = "Today's Tasks"
		v.Driver = d
		v.Widgets = []Widget{
			{Key: ModalRoute, Label: "Today's Route", Value: fmt.Sprint(d.RouteSize)},
			{Key: ModalCollections, Label: "Collections Done", Value: fmt.Sprint(d.CollectionsDone)},
			{Key: ModalWeight, Label: "Weight Collected", Value: fmt.Sprintf("%gkg", d.WeightCollected)},
			{Key: ModalRemaining, Label: "Remaining", Value: fmt.Sprint(d.Remaining)},
		}

	case models.RoleAdmin:
		a := &AdminView{
			TotalUsers:    AdminTotalUsers,
			ActiveDrivers: firstSet(0, st.Stats.ActiveDrivers),
			SystemHealth:  AdminSystemHealth,
			Reports:       AdminReports,
		}
		v.Title = "Admin Dashboard"
		v.Heading = "System Alerts"
		v.Admin = a
		v.Widgets = []Widget{
			{Key: ModalUsers, Label: "Total Users", Value: fmt.Sprint(a.TotalUsers)},
			{Key: ModalDrivers, Label: "Active Drivers", Value: fmt.Sprint(a.ActiveDrivers)},
			{Key: ModalHealth, Label: "System Health", Value: fmt.Sprintf("%d%%", a.SystemHealth)},
			{Key: ModalReports, Label: "Reports", Value: fmt.Sprint(a.Reports)},
		}

	default:
		r := residentView(user, st, fb)
		v.Role = models.RoleResident
		v.Title = "Resident Dashboard"
		v.Heading = "Recent Activity"
		v.Resident = r
		v.Widgets = []Widget{
			{Key: ModalMyCollections, Label: "My Collections", Value: fmt.Sprint(len(r.Collections))},
			{Key: ModalNextPickup, Label: "Next Pickup", Value: fmt.Sprintf("%dd", r.NextPickupDays)},
			{Key: ModalRecycling, Label: "My Recycling", Value: fmt.Sprintf("%.1fkg", r.RecycledWeight)},
			{Key: ModalEcoPoints, Label: "Eco Points", Value: fmt.Sprint(r.EcoPoints)},
		}
	}

	return v
}

func residentView(user models.User, st State, fb FallbackProvider) *ResidentView {
	r := &ResidentView{NextPickupDays: ResidentNextPickup}

	for _, c := range st.Collections {
		if user.ID != "" && c.UserID == user.ID {
			r.Collections = append(r.Collections, c)
		}
	}
	for _, rec := range st.RecyclingRecords {
		if user.ID != "" && rec.UserID == user.ID {
			r.Recycling = append(r.Recycling, rec)
		}
	}

	if len(r.Collections) == 0 {
		r.Collections = fb.ResidentCollections(user)
		r.UsingExamples = true
	}
	if len(r.Recycling) == 0 {
		r.Recycling = fb.ResidentRecycling(user)
		r.UsingExamples = true
	}

	for _, rec := range r.Recycling {
		r.RecycledWeight += rec.Weight
	}
	r.EcoPoints = EcoPoints(r.Recycling)
	return r
}

// RecordPoints is the per-drop-off score shown in the recycling drill-down:
// ten points per kg recycled, rounded to the nearest point.
func RecordPoints(rec models.RecyclingRecord) int {
	return int(math.Round(rec.Weight * 10))
}

// EcoPoints scores recycling records: ten points per kg of CO2 saved,
// rounded to the nearest point.
func EcoPoints(records []models.RecyclingRecord) int {
	var total float64
	for _, rec := range records {
		total += rec.EnvironmentalImpact * 10
	}
	return int(math.Round(total))
}

// firstSet returns the first non-nil counter, or fallback.
func firstSet(fallback int, counters ...*int) int {
	for _, c := range counters {
		if c != nil {
			return *c
		}
	}
	return fallback
}
