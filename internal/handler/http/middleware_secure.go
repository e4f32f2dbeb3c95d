package http

import (
	"net/http"

	"github.com/unrolled/secure"
)

const environmentDevelopment = "development"

// withSecureHeaders sets the usual hardening headers. Outside development
// HSTS is sent on TLS connections as well.
func (h *Handler) withSecureHeaders() func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		ContentTypeNosniff:            true,
		FrameDeny:                     true,
		ContentSecurityPolicy:         "default-src 'self'",
		ReferrerPolicy:                "no-referrer",
		CrossOriginOpenerPolicy:       "same-origin",
		CrossOriginResourcePolicy:     "same-origin",
		XDNSPrefetchControl:           "off",
		XPermittedCrossDomainPolicies: "none",
		STSSeconds:                    15552000,
		STSIncludeSubdomains:          true,
		IsDevelopment:                 h.environment == environmentDevelopment,
	}).Handler
}
