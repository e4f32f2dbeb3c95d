// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrRecoveredPanic is logged by the recovery middleware when a handler
// panics. The client only ever sees a generic 500 body.
var ErrRecoveredPanic = errors.New("recovered from panic in http handler")
