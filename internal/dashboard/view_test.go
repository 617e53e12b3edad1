package dashboard

import (
	"errors"
	"strings"
	"testing"

	"takatrack-client/internal/models"
)

func TestDeriveViewResidentExamples(t *testing.T) {
	user := models.User{ID: "5", Name: "Wanjiru", Role: models.RoleResident}
	st := State{
		Collections:      []models.Collection{{ID: "1", UserID: "99", Location: "Someone else"}},
		RecyclingRecords: []models.RecyclingRecord{},
	}

	v := DeriveView(user, st, nil)
	if v.Resident == nil || v.Driver != nil || v.Admin != nil {
		t.Fatalf("expected resident view only")
	}
	if len(v.Resident.Collections) != 3 {
		t.Fatalf("expected 3 example collections, got %d", len(v.Resident.Collections))
	}
	for _, c := range v.Resident.Collections {
		if !strings.HasPrefix(c.Location, "Wanjiru ") {
			t.Fatalf("expected display name in %q", c.Location)
		}
	}
	if len(v.Resident.Recycling) != 4 {
		t.Fatalf("expected 4 example recycling entries, got %d", len(v.Resident.Recycling))
	}
	if !v.Resident.UsingExamples {
		t.Fatalf("expected examples flag")
	}
	if v.Title != "Resident Dashboard" || v.Heading != "Recent Activity" {
		t.Fatalf("unexpected title/heading %q/%q", v.Title, v.Heading)
	}
}

func TestDeriveViewResidentUnnamed(t *testing.T) {
	v := DeriveView(models.User{ID: "5"}, State{}, nil)
	if got := v.Resident.Collections[0].Location; got != "My Home - Westlands" {
		t.Fatalf("expected My prefix, got %q", got)
	}
	if v.Role != models.RoleResident {
		t.Fatalf("expected resident default, got %s", v.Role)
	}
}

func TestDeriveViewResidentOwnData(t *testing.T) {
	user := models.User{ID: "5", Name: "Wanjiru"}
	st := State{
		Collections: []models.Collection{
			{ID: "1", UserID: "5", Location: "Mine"},
			{ID: "2", UserID: "6", Location: "Theirs"},
		},
		RecyclingRecords: []models.RecyclingRecord{
			{ID: "1", UserID: "5", Weight: 2, EnvironmentalImpact: 4},
			{ID: "2", UserID: "6", Weight: 9, EnvironmentalImpact: 9},
		},
	}

	v := DeriveView(user, st, nil)
	if len(v.Resident.Collections) != 1 || v.Resident.Collections[0].Location != "Mine" {
		t.Fatalf("expected only own collections, got %+v", v.Resident.Collections)
	}
	if v.Resident.RecycledWeight != 2 || v.Resident.EcoPoints != 40 {
		t.Fatalf("unexpected totals weight=%v points=%d", v.Resident.RecycledWeight, v.Resident.EcoPoints)
	}
	if v.Resident.UsingExamples {
		t.Fatalf("expected live data")
	}
}

func TestEcoPoints(t *testing.T) {
	got := EcoPoints([]models.RecyclingRecord{{EnvironmentalImpact: 10.4}, {EnvironmentalImpact: 12.75}})
	if got != 232 {
		t.Fatalf("expected 232, got %d", got)
	}
	if EcoPoints(nil) != 0 {
		t.Fatalf("expected 0 for no records")
	}
}

func TestDeriveViewDriverFallbackChains(t *testing.T) {
	driver := models.User{ID: "2", Role: models.RoleDriver}

	cases := []struct {
		name          string
		stats         models.DashboardStats
		wantDone      int
		wantRemaining int
	}{
		{"all absent", models.DashboardStats{}, 5, 3},
		{"primary set", models.DashboardStats{Completed: models.IntPtr(11), PendingCollections: models.IntPtr(4)}, 11, 4},
		{"secondary set", models.DashboardStats{CollectedToday: models.IntPtr(7), Pending: models.IntPtr(6)}, 7, 6},
		{"zero is kept", models.DashboardStats{Completed: models.IntPtr(0), PendingCollections: models.IntPtr(0)}, 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := DeriveView(driver, State{Stats: tc.stats}, nil)
			if v.Driver == nil {
				t.Fatalf("expected driver view")
			}
			if v.Driver.RouteSize != 8 {
				t.Fatalf("expected route size 8, got %d", v.Driver.RouteSize)
			}
			if v.Driver.CollectionsDone != tc.wantDone || v.Driver.Remaining != tc.wantRemaining {
				t.Fatalf("expected done=%d remaining=%d, got %+v", tc.wantDone, tc.wantRemaining, v.Driver)
			}
		})
	}
}

func TestDeriveViewAdmin(t *testing.T) {
	v := DeriveView(models.User{ID: "1", Role: models.RoleAdmin}, State{Stats: models.DashboardStats{ActiveDrivers: models.IntPtr(7)}}, nil)
	if v.Admin == nil {
		t.Fatalf("expected admin view")
	}
	if v.Admin.ActiveDrivers != 7 || v.Admin.TotalUsers != 156 || v.Admin.SystemHealth != 98 || v.Admin.Reports != 24 {
		t.Fatalf("unexpected admin view %+v", v.Admin)
	}
	if v.Widgets[2].Value != "98%" {
		t.Fatalf("expected health widget 98%%, got %s", v.Widgets[2].Value)
	}
}

func TestDeriveViewLimitsNotifications(t *testing.T) {
	var notes []models.Notification
	for i := 0; i < 8; i++ {
		notes = append(notes, models.Notification{Title: "n"})
	}
	v := DeriveView(models.User{ID: "1"}, State{Notifications: notes}, nil)
	if len(v.Notifications) != 5 {
		t.Fatalf("expected 5 notifications, got %d", len(v.Notifications))
	}
}

func TestBuildModal(t *testing.T) {
	user := models.User{ID: "2", Role: models.RoleDriver}
	st := State{Stats: models.DashboardStats{PendingCollections: models.IntPtr(2)}, Degraded: true}
	v := DeriveView(user, st, nil)

	m, err := BuildModal(ModalRemaining, v, st, user, nil)
	if err != nil {
		t.Fatalf("modal: %v", err)
	}
	stops, ok := m.Items.([]RouteStop)
	if !ok || len(stops) != 2 {
		t.Fatalf("expected two remaining stops, got %#v", m.Items)
	}
	if m.Title != "Remaining Collections" {
		t.Fatalf("unexpected title %q", m.Title)
	}

	m, _ = BuildModal(ModalHealth, v, st, user, nil)
	checks := m.Items.([]HealthCheck)
	if checks[0].Status != "Unreachable" {
		t.Fatalf("expected degraded health, got %+v", checks)
	}

	if _, err := BuildModal("nope", v, st, user, nil); !errors.Is(err, ErrUnknownModal) {
		t.Fatalf("expected ErrUnknownModal, got %v", err)
	}
}

func TestBuildModalRecyclingPoints(t *testing.T) {
	user := models.User{ID: "5"}
	v := DeriveView(user, State{}, nil)
	m, err := BuildModal(ModalRecycling, v, State{}, user, nil)
	if err != nil {
		t.Fatalf("modal: %v", err)
	}
	items := m.Items.([]RecyclingItem)
	if len(items) != 4 {
		t.Fatalf("unexpected recycling items %+v", items)
	}
	for i, want := range []int{52, 85, 38, 49} {
		if items[i].Points != want {
			t.Errorf("item %d points = %d, want %d", i, items[i].Points, want)
		}
	}
}

func TestRecordPointsUsesWeight(t *testing.T) {
	rec := models.RecyclingRecord{Weight: 5.2, EnvironmentalImpact: 10.4}
	if got := RecordPoints(rec); got != 52 {
		t.Fatalf("RecordPoints = %d, want 52", got)
	}
	if got := EcoPoints([]models.RecyclingRecord{rec}); got != 104 {
		t.Fatalf("EcoPoints = %d, want 104", got)
	}
}
