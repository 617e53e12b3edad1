package handlers

import (
	"net/http"

	"takatrack-client/internal/middleware"
	"takatrack-client/internal/session"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Deps are the services behind the companion routes
type Deps struct {
	Sessions       SessionService
	Dashboard      DashboardLoader
	Collections    CollectionService
	Recycling      RecyclingService
	Map            MapSource
	Events         Publisher
	WebSocket      http.HandlerFunc
	AllowedOrigins []string
}

func NewRouter(d Deps) http.Handler {
	// a snapshot fetched under one session must never be shown to the next
	d.Sessions.Subscribe(func(session.Event) {
		d.Dashboard.Reset()
	})

	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)

	origins := d.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	if d.WebSocket != nil {
		r.Get("/ws", d.WebSocket)
	}

	r.Route("/app", func(r chi.Router) {
		r.Get("/session", GetSession(d.Sessions))
		r.Post("/session/login", Login(d.Sessions))
		r.Post("/session/register", Register(d.Sessions))
		r.Post("/session/logout", Logout(d.Sessions))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(d.Sessions))

			r.Get("/dashboard", GetDashboard(d.Dashboard))
			r.Get("/dashboard/modals/{key}", GetDashboardModal(d.Dashboard))

			r.Get("/collections", ListCollections(d.Collections))
			r.Post("/collections", CreateCollection(d.Collections, d.Events))
			r.Put("/collections/{id}", UpdateCollectionStatus(d.Collections, d.Events))

			r.Get("/recycling", ListRecycling(d.Recycling))
			r.Post("/recycling", CreateRecycling(d.Recycling, d.Events))

			r.Get("/map", GetMap(d.Map))
		})
	})

	return r
}
