package http

import (
	"net/http"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/models"
)

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("user_id", user.ID).Str("username", user.Username).Msg("user registered")
	utils.WriteJSON(w, user, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.AuthService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Str("username", resp.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, resp, http.StatusOK)
}
