package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"takatrack-client/internal/models"
)

type stubSource struct {
	stats         models.DashboardStats
	notifications []models.Notification
	drivers       []models.Driver
	collections   []models.Collection
	records       []models.RecyclingRecord

	statsErr, notificationsErr, driversErr, collectionsErr, recordsErr error
}

func (s *stubSource) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return s.stats, s.statsErr
}
func (s *stubSource) Notifications(ctx context.Context) ([]models.Notification, error) {
	return s.notifications, s.notificationsErr
}
func (s *stubSource) Drivers(ctx context.Context) ([]models.Driver, error) {
	return s.drivers, s.driversErr
}
func (s *stubSource) Collections(ctx context.Context) ([]models.Collection, error) {
	return s.collections, s.collectionsErr
}
func (s *stubSource) RecyclingRecords(ctx context.Context) ([]models.RecyclingRecord, error) {
	return s.records, s.recordsErr
}

func assertInt(t *testing.T, name string, got *int, want int) {
	t.Helper()
	if got == nil || *got != want {
		t.Fatalf("expected %s=%d, got %v", name, want, got)
	}
}

func TestLoadAllFailuresUsesDemoData(t *testing.T) {
	down := errors.New("backend unreachable")
	agg := NewAggregator(&stubSource{
		statsErr: down, notificationsErr: down, driversErr: down, collectionsErr: down, recordsErr: down,
	}, nil)

	st := agg.Load(context.Background())
	if !st.Degraded || st.Notice != DemoNotice {
		t.Fatalf("expected degraded state with notice, got degraded=%v notice=%q", st.Degraded, st.Notice)
	}

	s := st.Stats
	assertInt(t, "totalBins", s.TotalBins, 15)
	assertInt(t, "collectedToday", s.CollectedToday, 8)
	assertInt(t, "pendingCollections", s.PendingCollections, 3)
	assertInt(t, "activeDrivers", s.ActiveDrivers, 3)
	assertInt(t, "completed", s.Completed, 5)
	assertInt(t, "pending", s.Pending, 3)
	assertInt(t, "inProgress", s.InProgress, 2)
	if s.RecycledWeight == nil || *s.RecycledWeight != 45.2 {
		t.Fatalf("expected recycledWeight=45.2, got %v", s.RecycledWeight)
	}
	if len(st.Notifications) != 2 {
		t.Fatalf("expected two demo notifications, got %d", len(st.Notifications))
	}
	if len(st.Drivers) != 2 {
		t.Fatalf("expected two demo drivers, got %d", len(st.Drivers))
	}
}

func TestLoadPartialFailureDiscardsLiveResults(t *testing.T) {
	agg := NewAggregator(&stubSource{
		stats:         models.DashboardStats{TotalBins: models.IntPtr(99)},
		notifications: []models.Notification{{ID: "9", Title: "Live"}},
		drivers:       []models.Driver{{ID: "9", Name: "Live Driver"}},
		collections:   []models.Collection{{ID: "9"}},
		recordsErr:    errors.New("timeout"),
	}, nil)

	st := agg.Load(context.Background())
	if !st.Degraded {
		t.Fatalf("expected degraded state")
	}
	assertInt(t, "totalBins", st.Stats.TotalBins, 15)
	for _, n := range st.Notifications {
		if n.Title == "Live" {
			t.Fatalf("live notification leaked into demo state")
		}
	}
	if len(st.Collections) != 0 {
		t.Fatalf("expected live collections discarded, got %d", len(st.Collections))
	}
}

func TestLoadEmptyNotificationsGetsWelcome(t *testing.T) {
	agg := NewAggregator(&stubSource{
		stats:         models.DashboardStats{TotalBins: models.IntPtr(4)},
		notifications: []models.Notification{},
		drivers:       []models.Driver{{ID: "1", Name: "Driver"}},
	}, nil)

	st := agg.Load(context.Background())
	if st.Degraded {
		t.Fatalf("expected live state")
	}
	if len(st.Notifications) != 1 || st.Notifications[0].Title != "Welcome to TakaTrack" {
		t.Fatalf("expected single welcome notification, got %+v", st.Notifications)
	}
	assertInt(t, "totalBins", st.Stats.TotalBins, 4)
	if st.Collections == nil || st.RecyclingRecords == nil {
		t.Fatalf("expected empty slices instead of nil")
	}
}

func TestLoadKeepsLiveNotifications(t *testing.T) {
	agg := NewAggregator(&stubSource{
		notifications: []models.Notification{{ID: "1", Title: "Bin Full Alert"}, {ID: "2", Title: "Collection Completed"}},
	}, nil)
	st := agg.Load(context.Background())
	if len(st.Notifications) != 2 || st.Notifications[0].Title != "Bin Full Alert" {
		t.Fatalf("expected live notifications, got %+v", st.Notifications)
	}
}

// gatedSource blocks each stats call until its gate is released, and tags
// the returned stats with the call number.
type gatedSource struct {
	stubSource
	calls atomic.Int32
	gates []chan struct{}
}

func (g *gatedSource) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	n := int(g.calls.Add(1)) - 1
	<-g.gates[n]
	return models.DashboardStats{TotalBins: models.IntPtr(n + 1)}, nil
}

func TestLoadStaleResultIsDiscarded(t *testing.T) {
	src := &gatedSource{gates: []chan struct{}{make(chan struct{}), make(chan struct{})}}
	agg := NewAggregator(src, nil)

	var wg sync.WaitGroup
	var first *State
	wg.Add(1)
	go func() {
		defer wg.Done()
		first = agg.Load(context.Background())
	}()
	for src.calls.Load() < 1 {
		time.Sleep(time.Millisecond)
	}

	// Second load is issued after the first and finishes first.
	close(src.gates[1])
	second := agg.Load(context.Background())
	assertInt(t, "second totalBins", second.Stats.TotalBins, 2)

	close(src.gates[0])
	wg.Wait()

	cur, ok := agg.Current()
	if !ok {
		t.Fatalf("expected committed state")
	}
	assertInt(t, "current totalBins", cur.Stats.TotalBins, 2)
	if first != second {
		t.Fatalf("expected stale load to return the newer snapshot")
	}
}

func TestCurrentBeforeLoad(t *testing.T) {
	agg := NewAggregator(&stubSource{}, nil)
	if _, ok := agg.Current(); ok {
		t.Fatalf("expected no state before first load")
	}
}

func TestResetForgetsSnapshot(t *testing.T) {
	agg := NewAggregator(&stubSource{stats: models.DashboardStats{TotalBins: models.IntPtr(4)}}, nil)
	agg.Load(context.Background())

	agg.Reset()
	if _, ok := agg.Current(); ok {
		t.Fatalf("expected no state after reset")
	}

	agg.Load(context.Background())
	if cur, ok := agg.Current(); !ok || cur.Stats.TotalBins == nil {
		t.Fatalf("expected a load after reset to commit, got %+v", cur)
	}
}

func TestResetDiscardsInFlightLoad(t *testing.T) {
	src := &gatedSource{gates: []chan struct{}{make(chan struct{})}}
	agg := NewAggregator(src, nil)

	done := make(chan *State)
	go func() { done <- agg.Load(context.Background()) }()
	for src.calls.Load() < 1 {
		time.Sleep(time.Millisecond)
	}

	agg.Reset()
	close(src.gates[0])
	got := <-done

	if got == nil {
		t.Fatalf("expected the caller to receive its own result")
	}
	if _, ok := agg.Current(); ok {
		t.Fatalf("load issued before reset must not commit")
	}
}
