// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks incoming request payloads before they reach the
// services: required credentials on register, login and verify, and the
// email format on profile updates.
package validators

import "context"

// Validator checks a request value. When fields are given only those rules
// run; otherwise every rule for the value's type runs.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
