// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-user-auth/internal/app"
	"github.com/MKhiriev/go-user-auth/internal/utils"
	"github.com/MKhiriev/go-user-auth/models"
)

// routeNotFound is registered both as the router's NotFound and
// MethodNotAllowed handler. A known path requested with an unsupported
// method is answered exactly like an unknown path, so callers cannot probe
// which routes exist.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:   app.MsgNotFound,
		Message: fmt.Sprintf(app.MsgRouteNotFound, r.URL.RequestURI()),
	}, http.StatusNotFound)
}
