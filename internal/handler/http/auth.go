package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/agil-auth/internal/logger"
	"github.com/MKhiriev/agil-auth/internal/service"
	"github.com/MKhiriev/agil-auth/internal/utils"
	"github.com/MKhiriev/agil-auth/models"
)

// maxBodyBytes caps request bodies of the account routes.
const maxBodyBytes = 1 << 20

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}
	if request.FullName == "" {
		request.FullName = request.LegacyFullName
	}

	userID, err := h.services.AuthService.RegisterUser(ctx, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", userID).Msg("user successfully registered")
	utils.WriteJSON(w, models.RegisterResponse{UserID: userID}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := decodeJSON(w, r, &request); err != nil {
		writeError(w, r, err)
		return
	}

	session, user, err := h.services.AuthService.Authenticate(ctx, request.Email, request.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Msg("user successfully logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: session.Token, User: user}, http.StatusOK)
}

// session echoes the claims of the session attached by the auth middleware.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, r, service.ErrInvalidToken)
		return
	}

	utils.WriteJSON(w, session, http.StatusOK)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
