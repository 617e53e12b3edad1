package handlers

import (
	"errors"
	"log"
	"net/http"

	"takatrack-client/internal/api"
	"takatrack-client/internal/session"
	"takatrack-client/internal/waste"
	"takatrack-client/pkg/utils"
)

// respondFailure maps a domain error to the status the shell reacts to:
// 400 for form errors, 401 to return to login, 502 for upstream trouble.
func respondFailure(w http.ResponseWriter, err error, fallback string) {
	var verr *waste.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.RespondFieldError(w, verr.Field, verr.Message)
	case errors.Is(err, session.ErrNoSession), api.StatusCode(err) == http.StatusUnauthorized:
		utils.RespondError(w, http.StatusUnauthorized, "Session expired, please log in again")
	case errors.Is(err, api.ErrRequestFailed):
		log.Printf("❌ %s: %v", fallback, err)
		utils.RespondError(w, http.StatusBadGateway, api.MessageOr(err, fallback))
	default:
		log.Printf("❌ %s: %v", fallback, err)
		utils.RespondError(w, http.StatusInternalServerError, fallback)
	}
}
