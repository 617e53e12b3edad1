package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"takatrack-client/internal/models"
	"takatrack-client/internal/session"
	"takatrack-client/pkg/utils"
)

// SessionService is the session store as seen by the companion server
type SessionService interface {
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.Session, error)
	Logout(ctx context.Context) error
	Current() (models.Session, bool)
	Subscribe(fn func(session.Event)) func()
}

type SessionResponse struct {
	Authenticated bool         `json:"authenticated"`
	User          *models.User `json:"user,omitempty"`
}

func GetSession(sessions SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sess, ok := sessions.Current()
		if !ok {
			utils.Success(w, SessionResponse{Authenticated: false})
			return
		}
		utils.Success(w, SessionResponse{Authenticated: true, User: &sess.User})
	}
}

func Login(sessions SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" {
			utils.RespondError(w, http.StatusBadRequest, "Email and password are required")
			return
		}

		log.Printf("🔐 Login attempt for: %s", req.Email)
		sess, err := sessions.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondAuthFailure(w, err, http.StatusUnauthorized)
			return
		}

		utils.Success(w, SessionResponse{Authenticated: true, User: &sess.User})
	}
}

func Register(sessions SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if req.Email == "" || req.Password == "" || req.Name == "" {
			utils.RespondError(w, http.StatusBadRequest, "Name, email and password are required")
			return
		}
		if req.Role == "" {
			req.Role = models.RoleResident
		}

		log.Printf("📝 Registration attempt for: %s (%s)", req.Email, req.Role)
		sess, err := sessions.Register(r.Context(), req)
		if err != nil {
			respondAuthFailure(w, err, http.StatusBadRequest)
			return
		}

		utils.JSON(w, http.StatusCreated, SessionResponse{Authenticated: true, User: &sess.User})
	}
}

func respondAuthFailure(w http.ResponseWriter, err error, status int) {
	var authErr *session.AuthError
	if errors.As(err, &authErr) {
		log.Printf("❌ %v", err)
		utils.RespondError(w, status, authErr.Message)
		return
	}
	log.Printf("❌ Session error: %v", err)
	utils.RespondError(w, http.StatusInternalServerError, "Could not save session")
}

func Logout(sessions SessionService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := sessions.Logout(r.Context()); err != nil {
			// the in-memory session is gone either way
			log.Printf("⚠️  Logout could not clear storage: %v", err)
		}
		utils.Success(w, SessionResponse{Authenticated: false})
	}
}
