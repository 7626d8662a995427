package http

import (
	"net/http"

	"github.com/MKhiriev/go-staff-keeper/internal/logger"
	"github.com/MKhiriev/go-staff-keeper/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.SignupRequest
	if err := decodeJSON(r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Signup(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.UserID).Msg("user signed up")
	writeResponse(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	payload, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", payload.User.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+payload.Token)
	writeResponse(w, r, payload, http.StatusOK)
}
