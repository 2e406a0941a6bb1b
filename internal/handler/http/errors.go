// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the token extraction middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned when the incoming request does
	// not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the header carries the "Bearer " prefix
	// but no token after it.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	// ErrUnauthorized is returned when a protected handler runs without a
	// resolved user in the request context.
	ErrUnauthorized = errors.New("request is not authenticated")
)

// ErrMalformedBody is returned when a request body is not valid JSON for
// the expected payload.
var ErrMalformedBody = errors.New("malformatted request body")
