package dashboard

import (
	"fmt"

	"takatrack-client/internal/models"
)

// FallbackProvider is the single source of degraded-mode content. Every page
// that needs placeholder rows gets them from here.
type FallbackProvider interface {
	// Dashboard returns a complete, internally consistent dataset used when
	// any live fetch fails.
	Dashboard() State
	// ResidentCollections are shown to a resident with no collections of their own.
	ResidentCollections(user models.User) []models.Collection
	// ResidentRecycling is shown to a resident with no recycling records of their own.
	ResidentRecycling(user models.User) []models.RecyclingRecord
	NextPickups(user models.User) []Pickup
	EcoActivity() []EcoActivity
	DriverRoute() []RouteStop
	WeightBreakdown() []WeightShare
	SystemUsers() []SystemUser
	Reports() []Report
}

// RouteStop is one stop on a driver's route for the day
type RouteStop struct {
	Location  string                  `json:"location"`
	Time      string                  `json:"time"`
	Status    models.CollectionStatus `json:"status"`
	Weight    string                  `json:"weight"`
	WasteType string                  `json:"type,omitempty"`
	Priority  string                  `json:"priority,omitempty"`
}

type Pickup struct {
	Location string `json:"location"`
	Type     string `json:"type"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Status   string `json:"status"`
	Driver   string `json:"driver"`
}

type EcoActivity struct {
	Activity string `json:"activity"`
	Points   string `json:"points"`
	Date     string `json:"date"`
	Impact   string `json:"impact"`
}

type WeightShare struct {
	Type       string `json:"type"`
	Weight     string `json:"weight"`
	Percentage int    `json:"percentage"`
}

type SystemUser struct {
	Name   string `json:"name"`
	Role   string `json:"role"`
	Status string `json:"status"`
}

type Report struct {
	Title   string                  `json:"title"`
	Message string                  `json:"message"`
	Type    models.NotificationType `json:"type"`
	Time    string                  `json:"time"`
}

// DemoData is the built-in FallbackProvider.
type DemoData struct{}

var _ FallbackProvider = DemoData{}

func (DemoData) Dashboard() State {
	return State{
		Stats: models.DashboardStats{
			TotalBins:          models.IntPtr(15),
			CollectedToday:     models.IntPtr(8),
			RecycledWeight:     models.FloatPtr(45.2),
			PendingCollections: models.IntPtr(3),
			ActiveDrivers:      models.IntPtr(3),
			Completed:          models.IntPtr(5),
			Pending:            models.IntPtr(3),
			InProgress:         models.IntPtr(2),
		},
		Notifications: []models.Notification{
			{ID: "1", Title: "Demo Mode", Message: "Dashboard running in demo mode", Type: models.NotificationInfo, Time: "Just now"},
			{ID: "2", Title: "Collection Completed", Message: "Westlands route completed", Type: models.NotificationSuccess, Time: "2 hours ago"},
		},
		Drivers: []models.Driver{
			{ID: "1", Name: "John Kamau", Phone: "+254701234567", Email: "john@demo.com", ActiveCollections: 2, TotalCollected: 125.5, Status: "active"},
			{ID: "2", Name: "Mary Wanjiku", Phone: "+254712345678", Email: "mary@demo.com", ActiveCollections: 1, TotalCollected: 89.2, Status: "active"},
		},
		Collections:      []models.Collection{},
		RecyclingRecords: []models.RecyclingRecord{},
	}
}

func (DemoData) ResidentCollections(user models.User) []models.Collection {
	name := user.DisplayName()
	tomorrow := "Tomorrow"
	return []models.Collection{
		{ID: "1", UserID: user.ID, Location: fmt.Sprintf("%s Home - Westlands", name), WasteType: "General Waste", Status: models.CollectionStatusCompleted, Weight: 15.5, CreatedAt: "Today 08:30"},
		{ID: "2", UserID: user.ID, Location: fmt.Sprintf("%s Office - CBD", name), WasteType: "Recycling", Status: models.CollectionStatusCompleted, Weight: 8.2, CreatedAt: "Yesterday 16:45"},
		{ID: "3", UserID: user.ID, Location: fmt.Sprintf("%s Apartment - Kilimani", name), WasteType: "Organic Waste", Status: models.CollectionStatusInProgress, Weight: 0, ScheduledDate: &tomorrow},
	}
}

func (DemoData) ResidentRecycling(user models.User) []models.RecyclingRecord {
	return []models.RecyclingRecord{
		{ID: "1", UserID: user.ID, Material: "Plastic Bottles", Weight: 5.2, Location: "Recycling Center - Westlands", EnvironmentalImpact: 10.4, CreatedAt: "Today"},
		{ID: "2", UserID: user.ID, Material: "Paper & Cardboard", Weight: 8.5, Location: "Recycling Center - CBD", EnvironmentalImpact: 12.75, CreatedAt: "Yesterday"},
		{ID: "3", UserID: user.ID, Material: "Glass Bottles", Weight: 3.8, Location: "Recycling Center - Kilimani", EnvironmentalImpact: 1.9, CreatedAt: "2 days ago"},
		{ID: "4", UserID: user.ID, Material: "Electronic Waste", Weight: 4.9, Location: "E-Waste Center", EnvironmentalImpact: 19.6, CreatedAt: "Last week"},
	}
}

func (DemoData) NextPickups(user models.User) []Pickup {
	name := user.DisplayName()
	return []Pickup{
		{Location: name + " Home - Westlands", Type: "General Waste", Date: "Tomorrow", Time: "08:00 AM", Status: "Confirmed", Driver: "John Kamau"},
		{Location: name + " Office - CBD", Type: "Recycling", Date: "Friday", Time: "02:00 PM", Status: "Scheduled", Driver: "Mary Wanjiku"},
	}
}

func (DemoData) EcoActivity() []EcoActivity {
	return []EcoActivity{
		{Activity: "Recycled Plastic Bottles", Points: "+52", Date: "Today", Impact: "10.4kg CO2 saved"},
		{Activity: "Recycled Paper & Cardboard", Points: "+85", Date: "Yesterday", Impact: "12.75kg CO2 saved"},
		{Activity: "Proper Waste Sorting", Points: "+15", Date: "2 days ago", Impact: "Helped sorting efficiency"},
	}
}

func (DemoData) DriverRoute() []RouteStop {
	return []RouteStop{
		{Location: "Westlands Shopping Mall", Time: "08:00", Status: models.CollectionStatusCompleted, Weight: "15.5kg", WasteType: "General Waste"},
		{Location: "Sarit Centre", Time: "09:30", Status: models.CollectionStatusCompleted, Weight: "8.2kg", WasteType: "Recycling"},
		{Location: "Karen Shopping Centre", Time: "11:00", Status: models.CollectionStatusInProgress, Weight: "Pending", WasteType: "Organic Waste"},
		{Location: "Yaya Centre", Time: "13:00", Status: models.CollectionStatusPending, Weight: "Pending", WasteType: "General Waste", Priority: "High"},
		{Location: "Junction Mall", Time: "14:30", Status: models.CollectionStatusPending, Weight: "Pending", WasteType: "Recycling", Priority: "Medium"},
		{Location: "Village Market", Time: "16:00", Status: models.CollectionStatusPending, Weight: "Pending", WasteType: "General Waste", Priority: "Medium"},
		{Location: "Two Rivers Mall", Time: "17:30", Status: models.CollectionStatusPending, Weight: "Pending", WasteType: "Recycling", Priority: "High"},
		{Location: "Galleria Mall", Time: "19:00", Status: models.CollectionStatusPending, Weight: "Pending", WasteType: "Organic Waste", Priority: "Low"},
	}
}

func (DemoData) WeightBreakdown() []WeightShare {
	return []WeightShare{
		{Type: "General Waste", Weight: "53.5kg", Percentage: 45},
		{Type: "Recycling", Weight: "22.4kg", Percentage: 30},
		{Type: "Organic Waste", Weight: "12.3kg", Percentage: 15},
		{Type: "Electronic Waste", Weight: "6.8kg", Percentage: 10},
	}
}

func (DemoData) SystemUsers() []SystemUser {
	return []SystemUser{
		{Name: "John Kamau", Role: "Driver", Status: "Active"},
		{Name: "Mary Wanjiku", Role: "Driver", Status: "Active"},
		{Name: "Peter Mwangi", Role: "Driver", Status: "Idle"},
	}
}

func (DemoData) Reports() []Report {
	return []Report{
		{Title: "Bin Overflow Alert", Message: "Bin #12 in Westlands is full", Type: models.NotificationError, Time: "2 hours ago"},
		{Title: "Route Delay", Message: "Truck T002 is 30 mins behind schedule", Type: models.NotificationWarning, Time: "1 hour ago"},
		{Title: "Collection Complete", Message: "CBD route completed successfully", Type: models.NotificationSuccess, Time: "3 hours ago"},
	}
}
