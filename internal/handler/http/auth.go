package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/service"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/internal/validators"
	"github.com/MKhiriev/go-user-auth/models"
)

var (
	registerMessages = map[int]string{
		http.StatusBadRequest: app.MsgRegistrationFieldsRequired,
		http.StatusConflict:   app.MsgUserAlreadyExists,
	}
	loginMessages = map[int]string{
		http.StatusBadRequest:   app.MsgLoginFieldsRequired,
		http.StatusUnauthorized: app.MsgInvalidCredentials,
	}
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var request models.RegisterRequest
	if !decodeRequest(w, r, &request) {
		return
	}

	user, err := h.services.AuthService.RegisterUser(r.Context(), request)
	if errors.Is(err, validators.ErrPasswordTooLong) {
		logger.FromRequest(r).Warn().Err(err).Msg("registration with oversized password")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgPasswordTooLong}, http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, r, err, registerMessages)
		return
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message: app.MsgUserRegistered,
		User:    user.Public(),
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var request models.LoginRequest
	if !decodeRequest(w, r, &request) {
		return
	}

	user, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		writeError(w, r, err, loginMessages)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		writeError(w, r, err, nil)
		return
	}

	logger.FromRequest(r).Info().Str("id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoginSuccessful,
		Token:   token.String(),
		User:    user.Public(),
	}, http.StatusOK)
}

// verify checks a token passed in the body. Every verification failure is a
// 401 carrying the failure reason.
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var request models.VerifyRequest
	if !decodeRequest(w, r, &request) {
		return
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), request.Token)
	if err != nil {
		h.writeVerifyError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{
		Valid: true,
		User:  token.Identity(),
	}, http.StatusOK)
}

func (h *Handler) writeVerifyError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch statusFromError(err) {
	case http.StatusBadRequest:
		log.Warn().Err(err).Msg("token verification without token")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgTokenRequired}, http.StatusBadRequest)
	case http.StatusUnauthorized:
		reason := service.TokenFailureReason(err)
		log.Warn().Err(err).Str("reason", reason).Msg("token verification failed")
		utils.WriteJSON(w, models.ErrorResponse{Error: app.MsgInvalidToken, Reason: reason}, http.StatusUnauthorized)
	default:
		writeError(w, r, err, nil)
	}
}
