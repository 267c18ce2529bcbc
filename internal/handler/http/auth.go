package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/employee-registry/internal/logger"
	"github.com/MKhiriev/employee-registry/internal/service"
	"github.com/MKhiriev/employee-registry/internal/utils"
	"github.com/MKhiriev/employee-registry/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.MessageResponse{Message: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.Login(ctx, credentials); err != nil {
		switch {
		case errors.Is(err, service.ErrWrongCredentials):
			log.Err(err).Str("username", credentials.Username).Msg("login rejected")
			utils.WriteJSON(w, models.MessageResponse{Message: "Invalid username or password"}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, credentials.Username)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		utils.WriteJSON(w, models.MessageResponse{Message: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
		return
	}

	log.Debug().Str("username", credentials.Username).Msg("operator successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{AccessToken: token.SignedString}, http.StatusOK)
}
