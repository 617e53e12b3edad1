package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"takatrack-client/internal/api"
	"takatrack-client/internal/config"
	"takatrack-client/internal/dashboard"
	"takatrack-client/internal/handlers"
	"takatrack-client/internal/session"
	"takatrack-client/internal/storage"
	"takatrack-client/internal/telemetry"
	"takatrack-client/internal/waste"
	"takatrack-client/internal/websocket"

	"github.com/joho/godotenv"
)

func main() {
	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("🚀 TAKATRACK CLIENT STARTING")
	log.Println("═══════════════════════════════════════════════════════════════════")

	log.Println("📂 Loading environment variables...")
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Warning: .env file not found, using environment variables from system")
	} else {
		log.Println("✅ .env file loaded successfully")
	}
	cfg := config.Load()
	log.Printf("✅ Backend API: %s (timeout %s)", cfg.APIBaseURL, cfg.HTTPTimeout)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	kv, err := storage.Open(cfg)
	if err != nil {
		log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		log.Println("❌ FATAL ERROR: Session storage unavailable")
		log.Printf("   Driver: %s", cfg.StorageDriver)
		log.Printf("   Error: %v", err)
		log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		log.Fatal(err)
	}
	defer kv.Close()

	// auth routes go out without a token; everything else carries the session's
	base := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	sessions := session.NewStore(kv, base)
	if err := sessions.Init(ctx); err != nil {
		log.Printf("⚠️  Could not clear invalid session: %v", err)
	}
	backend := base.WithTokens(sessions)

	wsHub := websocket.NewHub()

	opts := []telemetry.Option{
		telemetry.WithInterval(cfg.MapPollInterval),
		telemetry.WithLocator(telemetry.NewStaticLocator(cfg.HomeLat, cfg.HomeLng)),
		telemetry.WithObserver(func(s telemetry.Snapshot) { wsHub.Publish("map.updated", s) }),
	}
	if g := telemetry.NewGoogleGeocoder(cfg.GoogleMapsKey, cfg.HTTPTimeout); g != nil {
		opts = append(opts, telemetry.WithGeocoder(telemetry.NewGeocodeCache(g, 100, 24*time.Hour)))
		log.Println("✅ Reverse geocoding enabled")
	}
	mapView := telemetry.NewMapView(backend, opts...)
	poller := &mapPoller{view: mapView}

	wsHub.OnMessage(func(c *websocket.Client, msg websocket.IncomingMessage) {
		switch msg.Type {
		case "map.refresh":
			if _, ok := sessions.Current(); ok {
				go mapView.Refresh(ctx)
			}
		default:
			log.Printf("⚠️  Unknown message %q from %s", msg.Type, c.ID)
		}
	})
	go wsHub.Run(ctx)
	log.Println("✅ WebSocket hub started")

	// the shell navigates on these events; the map only polls while someone is logged in
	sessions.Subscribe(func(ev session.Event) {
		wsHub.Publish(string(ev.Type), ev.User)
		switch ev.Type {
		case session.EventLoggedIn:
			poller.start(ctx)
		case session.EventLoggedOut:
			poller.stop()
		}
	})
	if sess, ok := sessions.Current(); ok {
		log.Printf("✅ Restored session for %s (%s)", sess.User.Email, sess.User.Role)
		poller.start(ctx)
	}

	r := handlers.NewRouter(handlers.Deps{
		Sessions:       sessions,
		Dashboard:      dashboard.NewAggregator(backend, dashboard.DemoData{}),
		Collections:    waste.NewCollectionManager(backend),
		Recycling:      waste.NewRecyclingManager(backend),
		Map:            mapView,
		Events:         wsHub,
		WebSocket:      websocket.HandleWebSocket(wsHub, originChecker(cfg.AllowedOrigins)),
		AllowedOrigins: cfg.AllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Println("═══════════════════════════════════════════════════════════════════")
	log.Println("✅ ALL INITIALIZATION COMPLETE")
	log.Printf("🚀 Companion server starting on http://localhost:%s", cfg.Port)
	log.Println("═══════════════════════════════════════════════════════════════════")

	go func() {
		<-ctx.Done()
		log.Println("👋 Shutting down...")
		poller.stop()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		log.Println("❌ FATAL ERROR: Server failed to start")
		log.Printf("   Error: %v", err)
		log.Printf("   Port: %s", cfg.Port)
		log.Println("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
		log.Fatal(err)
	}
}

// mapPoller owns at most one running map poll.
type mapPoller struct {
	view *telemetry.MapView

	mu   sync.Mutex
	poll *telemetry.Poll
}

func (m *mapPoller) start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.poll != nil {
		return
	}
	m.poll = m.view.Start(ctx)
}

func (m *mapPoller) stop() {
	m.mu.Lock()
	p := m.poll
	m.poll = nil
	m.mu.Unlock()
	if p != nil {
		p.Stop()
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, a := range allowed {
			if a == "*" || a == origin {
				return true
			}
		}
		return false
	}
}
