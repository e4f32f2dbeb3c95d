// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external services the server
// depends on.
//
// The primary abstraction is [ProfileAdapter], which decouples the profile
// service from the public profile API. The package ships an HTTP/REST
// implementation ([NewHTTPProfileAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrProfileNotFound] for 404).
package adapter

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/profile_adapter_mock.go -package=mock

// ProfileAdapter fetches public profile documents of directory users.
type ProfileAdapter interface {
	// FetchProfile returns the raw JSON document for the user id. The
	// document is passed through untouched. Returns an error if the request
	// fails, times out or the remote responds with a non-2xx status.
	FetchProfile(ctx context.Context, id string) (json.RawMessage, error)
}
