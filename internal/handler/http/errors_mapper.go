package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-bloglist/internal/logger"
	"github.com/MKhiriev/go-bloglist/internal/service"
	"github.com/MKhiriev/go-bloglist/internal/store"
	"github.com/MKhiriev/go-bloglist/internal/utils"
	"github.com/MKhiriev/go-bloglist/internal/validators"
)

const (
	messageUnauthorized  = "Unauthorized"
	messageInternalError = "internal server error"
	messageUnknownRoute  = "unknown endpoint"
)

type errorClass struct {
	target  error
	status  int
	message string
}

// errorClasses is checked in order; the first match wins.
var errorClasses = []errorClass{
	{service.ErrMissingField, http.StatusBadRequest, service.ErrMissingField.Error()},
	{service.ErrMalformedID, http.StatusBadRequest, service.ErrMalformedID.Error()},
	{ErrMalformedBody, http.StatusBadRequest, ErrMalformedBody.Error()},
	{store.ErrUsernameTaken, http.StatusBadRequest, store.ErrUsernameTaken.Error()},

	{service.ErrInvalidToken, http.StatusUnauthorized, service.ErrInvalidToken.Error()},
	{service.ErrTokenExpired, http.StatusUnauthorized, service.ErrTokenExpired.Error()},
	{service.ErrTokenWithoutUser, http.StatusUnauthorized, messageUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, service.ErrInvalidCredentials.Error()},
	{ErrUnauthorized, http.StatusUnauthorized, messageUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, messageUnauthorized},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, messageUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized, messageUnauthorized},

	{service.ErrForbidden, http.StatusForbidden, service.ErrForbidden.Error()},

	{service.ErrBlogNotFound, http.StatusNotFound, service.ErrBlogNotFound.Error()},
	{store.ErrUserNotFound, http.StatusNotFound, store.ErrUserNotFound.Error()},
}

// classifyError maps err to the status code and message sent to the client.
// Validation errors carry their own message. Anything unknown is a 500
// whose details stay in the log.
func classifyError(err error) (int, string) {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, vErr.Error()
	}

	for _, class := range errorClasses {
		if errors.Is(err, class.target) {
			return class.status, class.message
		}
	}

	return http.StatusInternalServerError, messageInternalError
}

// writeError renders err as {"error": message}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Int("status", status).Msg("unhandled error")
	} else {
		log.Debug().Err(err).Str("func", "writeError").Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}

// unknownEndpoint answers every request that matches no route or method.
func unknownEndpoint(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, messageUnknownRoute, http.StatusNotFound)
}
