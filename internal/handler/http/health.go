package http

import (
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/utils"
)

// health reports liveness. It runs behind optionalAuth, so the body also
// tells whether the caller's token was accepted.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	_, authenticated := utils.IdentityFromContext(r.Context())

	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context(), authenticated), http.StatusOK)
}
