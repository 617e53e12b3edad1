// Package telemetry drives the live bin map: a periodic poll of bin fill
// levels plus the device position and placeholder truck positions.
package telemetry

import (
	"context"
	"log"
	"sync"
	"time"

	"takatrack-client/internal/models"
)

const DefaultInterval = 30 * time.Second

// FilterAll disables status filtering
const FilterAll = "all"

type Source interface {
	Bins(ctx context.Context) ([]models.Bin, error)
}

// Snapshot is what the map screen renders
type Snapshot struct {
	Bins       []models.Bin     `json:"bins"`
	Trucks     []models.Truck   `json:"trucks"`
	Online     bool             `json:"online"`
	LastUpdate *time.Time       `json:"lastUpdate,omitempty"`
	Location   *models.Position `json:"location,omitempty"`
}

// Ticker returns a tick channel and a stop function.
type Ticker func(d time.Duration) (<-chan time.Time, func())

func timeTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

type MapView struct {
	source   Source
	interval time.Duration
	locator  Locator
	geocoder Geocoder
	ticker   Ticker
	now      func() time.Time

	mu       sync.RWMutex
	snapshot Snapshot
	observer func(Snapshot)
}

type Option func(*MapView)

func WithInterval(d time.Duration) Option {
	return func(v *MapView) {
		if d > 0 {
			v.interval = d
		}
	}
}

func WithLocator(l Locator) Option {
	return func(v *MapView) { v.locator = l }
}

func WithGeocoder(g Geocoder) Option {
	return func(v *MapView) { v.geocoder = g }
}

func WithTicker(t Ticker) Option {
	return func(v *MapView) { v.ticker = t }
}

// WithObserver registers fn to receive every poll result.
func WithObserver(fn func(Snapshot)) Option {
	return func(v *MapView) { v.observer = fn }
}

func NewMapView(source Source, opts ...Option) *MapView {
	v := &MapView{
		source:   source,
		interval: DefaultInterval,
		ticker:   timeTicker,
		now:      time.Now,
		snapshot: Snapshot{Bins: []models.Bin{}, Trucks: []models.Truck{}},
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Poll is a running refresh loop
type Poll struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Stop cancels the loop and waits for it to exit. No fetch starts after
// Stop returns. Safe to call more than once.
func (p *Poll) Stop() {
	p.once.Do(func() {
		p.cancel()
		<-p.done
	})
}

// Start fetches bins immediately and then once per interval until the
// returned Poll is stopped or ctx is cancelled.
func (v *MapView) Start(ctx context.Context) *Poll {
	ctx, cancel := context.WithCancel(ctx)
	p := &Poll{cancel: cancel, done: make(chan struct{})}

	if v.locator != nil {
		go v.locate(ctx)
	}

	ticks, stopTicker := v.ticker(v.interval)
	go func() {
		defer close(p.done)
		defer stopTicker()

		log.Printf("🔄 Map poll started (every %s)", v.interval)
		v.Refresh(ctx)
		for {
			select {
			case <-ctx.Done():
				log.Println("🛑 Map poll stopped")
				return
			case <-ticks:
				// a tick can race with cancellation
				if ctx.Err() != nil {
					log.Println("🛑 Map poll stopped")
					return
				}
				v.Refresh(ctx)
			}
		}
	}()
	return p
}

// Refresh runs one poll. Online reflects this attempt; LastUpdate moves only
// on success and bins from the last good poll are kept on failure.
func (v *MapView) Refresh(ctx context.Context) Snapshot {
	bins, err := v.source.Bins(ctx)

	v.mu.Lock()
	if err != nil {
		log.Printf("⚠️  Bin poll failed: %v", err)
		v.snapshot.Online = false
	} else {
		now := v.now()
		v.snapshot.Bins = bins
		v.snapshot.Trucks = SynthesizeTrucks()
		v.snapshot.Online = true
		v.snapshot.LastUpdate = &now
	}
	snap := v.copyLocked()
	observer := v.observer
	v.mu.Unlock()

	if observer != nil {
		observer(snap)
	}
	return snap
}

func (v *MapView) locate(ctx context.Context) {
	pos, err := v.locator.Locate(ctx)
	if err != nil {
		log.Printf("⚠️  Could not acquire device location: %v", err)
		return
	}
	if v.geocoder != nil {
		label, err := v.geocoder.ReverseGeocode(ctx, pos.Lat, pos.Lng)
		if err != nil {
			log.Printf("⚠️  Reverse geocoding failed: %v", err)
		} else {
			pos.Label = label
		}
	}

	v.mu.Lock()
	v.snapshot.Location = &pos
	v.mu.Unlock()
	log.Printf("📍 Device located at %.4f, %.4f", pos.Lat, pos.Lng)
}

// Snapshot returns the latest map state with bins filtered by status.
func (v *MapView) Snapshot(filter string) Snapshot {
	v.mu.RLock()
	snap := v.copyLocked()
	v.mu.RUnlock()
	snap.Bins = Filter(snap.Bins, filter)
	return snap
}

func (v *MapView) copyLocked() Snapshot {
	snap := v.snapshot
	snap.Bins = append([]models.Bin(nil), v.snapshot.Bins...)
	snap.Trucks = append([]models.Truck(nil), v.snapshot.Trucks...)
	if snap.Bins == nil {
		snap.Bins = []models.Bin{}
	}
	if snap.Trucks == nil {
		snap.Trucks = []models.Truck{}
	}
	return snap
}

// Filter keeps bins whose status equals status; "all" or "" keeps everything.
func Filter(bins []models.Bin, status string) []models.Bin {
	if status == "" || status == FilterAll {
		return bins
	}
	out := []models.Bin{}
	for _, b := range bins {
		if string(b.Status) == status {
			out = append(out, b)
		}
	}
	return out
}

// SynthesizeTrucks returns the placeholder fleet shown until trucks report
// their own positions.
func SynthesizeTrucks() []models.Truck {
	return []models.Truck{
		{ID: "T001", Driver: "John Kamau", Status: models.TruckStatusCollecting, CollectionsToday: 12, Lat: -1.2900, Lng: 36.8200},
		{ID: "T002", Driver: "Mary Wanjiku", Status: models.TruckStatusEnRoute, CollectionsToday: 8, Lat: -1.2850, Lng: 36.8250},
		{ID: "T003", Driver: "Peter Mwangi", Status: models.TruckStatusIdle, CollectionsToday: 15, Lat: -1.3000, Lng: 36.8300},
	}
}

// StatusCounts tallies bins per fill status for the map legend.
func StatusCounts(bins []models.Bin) map[models.BinStatus]int {
	counts := map[models.BinStatus]int{
		models.BinStatusFull:  0,
		models.BinStatusHalf:  0,
		models.BinStatusEmpty: 0,
	}
	for _, b := range bins {
		counts[b.Status]++
	}
	return counts
}
