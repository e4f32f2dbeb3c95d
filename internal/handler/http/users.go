package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	lookupMessages = map[int]string{
		http.StatusNotFound: app.MsgUserNotFound,
	}
	updateMessages = map[int]string{
		http.StatusBadRequest: app.MsgInvalidEmail,
		http.StatusNotFound:   app.MsgUserNotFound,
	}
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.ProfileService.ListProfiles(r.Context())
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	utils.WriteJSON(w, models.ProfileListResponse{
		Users:     users,
		Total:     len(users),
		Timestamp: time.Now().UTC(),
	}, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.ProfileService.GetProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, lookupMessages)
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{User: user}, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var update models.ProfileUpdate
	if !decodeRequest(w, r, &update) {
		return
	}

	user, err := h.services.ProfileService.UpdateProfile(r.Context(), chi.URLParam(r, "id"), update)
	if err != nil {
		writeError(w, r, err, updateMessages)
		return
	}

	utils.WriteJSON(w, models.ProfileUpdatedResponse{
		Message: app.MsgUserUpdated,
		User:    user,
	}, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.ProfileService.DeleteProfile(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err, lookupMessages)
		return
	}

	utils.WriteJSON(w, models.ProfileDeletedResponse{
		Message:     app.MsgUserDeleted,
		DeletedUser: user,
	}, http.StatusOK)
}

func (h *Handler) userStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.ProfileService.Stats(r.Context())
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}
