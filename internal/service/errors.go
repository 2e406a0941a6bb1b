// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-bloglist/internal/store"
	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/internal/validators"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed = errors.New("token creation failed")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrTokenWithoutUser    = errors.New("token does not identify a user")

	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrForbidden = errors.New("only the creator can modify a blog")
)

// Errors shared with lower layers so that callers only need this package.
var (
	ErrMissingField = validators.ErrMissingBlogData
	ErrMalformedID  = utils.ErrMalformedID
	ErrBlogNotFound = store.ErrBlogNotFound
)
