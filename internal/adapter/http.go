package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-user-auth/internal/config"
	"github.com/MKhiriev/go-user-auth/internal/logger"
	"github.com/MKhiriev/go-user-auth/internal/utils"
)

type httpProfileAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPProfileAdapter constructs an HTTP/REST implementation of [ProfileAdapter].
// It normalises and validates the base URL from cfg.ProfileBaseURL and
// configures the underlying HTTP client with the request timeout and the
// User-Agent header.
//
// Returns an error if cfg.ProfileBaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPProfileAdapter(cfg config.Adapter, logger *logger.Logger) (ProfileAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.ProfileBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid profile base url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout, cfg.UserAgent)
	logger.Debug().Str("base_url", baseURL).Dur("timeout", cfg.RequestTimeout).Msg("profile adapter created")

	return &httpProfileAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// FetchProfile implements [ProfileAdapter] with GET /users/{id}.
func (h *httpProfileAdapter) FetchProfile(ctx context.Context, id string) (json.RawMessage, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", id).
		Get("/users/{id}")
	if err != nil {
		return nil, fmt.Errorf("fetch profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	body := resp.Body()
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: not JSON", ErrInvalidResponse)
	}

	logger.FromContext(ctx).Debug().
		Str("profile_id", id).
		Dur("took", resp.Time()).
		Msg("external profile fetched")

	return json.RawMessage(body), nil
}
