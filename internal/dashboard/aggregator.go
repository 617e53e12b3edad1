// Package dashboard composes the home screen: it fetches every resource the
// dashboard needs, commits either a fully live or a fully demo snapshot, and
// derives the role-specific view-model from it.
package dashboard

import (
	"context"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"takatrack-client/internal/models"

	"golang.org/x/sync/errgroup"
)

// DemoNotice is surfaced to the caller whenever the demo dataset is committed.
const DemoNotice = "Failed to load dashboard data. Using demo data."

// Source is the set of live fetches a dashboard load issues.
type Source interface {
	DashboardStats(ctx context.Context) (models.DashboardStats, error)
	Notifications(ctx context.Context) ([]models.Notification, error)
	Drivers(ctx context.Context) ([]models.Driver, error)
	Collections(ctx context.Context) ([]models.Collection, error)
	RecyclingRecords(ctx context.Context) ([]models.RecyclingRecord, error)
}

// State is one committed dashboard snapshot. It is never modified after
// commit; a later load replaces it wholesale.
type State struct {
	Stats            models.DashboardStats    `json:"stats"`
	Notifications    []models.Notification    `json:"notifications"`
	Drivers          []models.Driver          `json:"drivers"`
	Collections      []models.Collection      `json:"collections"`
	RecyclingRecords []models.RecyclingRecord `json:"recyclingRecords"`
	Degraded         bool                     `json:"degraded"`
	Notice           string                   `json:"notice,omitempty"`
	LoadedAt         time.Time                `json:"loadedAt"`
}

// WelcomeNotification replaces an empty inbox on a live load.
func WelcomeNotification() models.Notification {
	return models.Notification{
		ID:      "1",
		Title:   "Welcome to TakaTrack",
		Message: "Your dashboard is ready!",
		Type:    models.NotificationInfo,
		Time:    "Just now",
	}
}

type Aggregator struct {
	source   Source
	fallback FallbackProvider
	now      func() time.Time

	issued atomic.Uint64

	mu        sync.Mutex
	committed uint64
	current   *State
}

func NewAggregator(source Source, fallback FallbackProvider) *Aggregator {
	if fallback == nil {
		fallback = DemoData{}
	}
	return &Aggregator{
		source:   source,
		fallback: fallback,
		now:      time.Now,
	}
}

// Fallback returns the provider injected at construction.
func (a *Aggregator) Fallback() FallbackProvider {
	return a.fallback
}

// Load issues the five fetches concurrently and waits for all of them to
// settle. If any fails, every partial result is dropped and the fallback
// dataset is committed instead.
//
// Loads commit in issue order: a load whose result arrives after a
// later-issued load already committed is discarded. Load returns whatever
// snapshot is current once it is done.
func (a *Aggregator) Load(ctx context.Context) *State {
	seq := a.issued.Add(1)

	var (
		stats         models.DashboardStats
		notifications []models.Notification
		drivers       []models.Driver
		collections   []models.Collection
		records       []models.RecyclingRecord
	)

	var g errgroup.Group
	g.Go(func() (err error) {
		stats, err = a.source.DashboardStats(ctx)
		return err
	})
	g.Go(func() (err error) {
		notifications, err = a.source.Notifications(ctx)
		return err
	})
	g.Go(func() (err error) {
		drivers, err = a.source.Drivers(ctx)
		return err
	})
	g.Go(func() (err error) {
		collections, err = a.source.Collections(ctx)
		return err
	})
	g.Go(func() (err error) {
		records, err = a.source.RecyclingRecords(ctx)
		return err
	})

	var next State
	if err := g.Wait(); err != nil {
		log.Printf("⚠️  Dashboard load #%d degraded, using demo data: %v", seq, err)
		next = a.fallback.Dashboard()
		next.Degraded = true
		next.Notice = DemoNotice
	} else {
		if len(notifications) == 0 {
			notifications = []models.Notification{WelcomeNotification()}
		}
		next = State{
			Stats:            stats,
			Notifications:    notifications,
			Drivers:          nonNil(drivers),
			Collections:      nonNil(collections),
			RecyclingRecords: nonNil(records),
		}
	}
	next.LoadedAt = a.now()

	a.mu.Lock()
	defer a.mu.Unlock()
	if seq > a.committed {
		a.committed = seq
		a.current = &next
	} else {
		log.Printf("⏭️  Dropping stale dashboard load #%d (already at #%d)", seq, a.committed)
		if a.current == nil {
			// reset since issue; hand the caller its own result uncommitted
			return &next
		}
	}
	return a.current
}

// Reset forgets the committed snapshot and discards every load already in
// flight. Call it whenever the session changes hands.
func (a *Aggregator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.committed = a.issued.Load()
	a.current = nil
	log.Println("🔄 Dashboard snapshot cleared")
}

// Current returns the last committed snapshot, if any.
func (a *Aggregator) Current() (*State, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.current, a.current != nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
