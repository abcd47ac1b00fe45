// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The boodschapp authors

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// "x-auth" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthHeader is returned by the auth middleware when the
	// incoming request does not include an "x-auth" header at all, or the
	// header value is an empty string.
	ErrEmptyAuthHeader = errors.New("empty `x-auth` header")
)
