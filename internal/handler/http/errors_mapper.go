// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
)

// errorMapping ties a sentinel error to the response it produces.
// An empty message means the sentinel's own text is sent.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order. Validator errors come before
// service.ErrInvalidDataProvided, which wraps them, so the client sees the
// precise reason.
var errorMappings = []errorMapping{
	{target: validators.ErrEmptyTitle, status: http.StatusBadRequest},
	{target: validators.ErrEmptyUsername, status: http.StatusBadRequest},
	{target: validators.ErrEmptyPassword, status: http.StatusBadRequest},
	{target: validators.ErrEmptyNoteID, status: http.StatusBadRequest},
	{target: validators.ErrEmptyOwnerID, status: http.StatusBadRequest},
	{target: service.ErrInvalidDataProvided, status: http.StatusBadRequest},
	{target: ErrInvalidJSON, status: http.StatusBadRequest},

	{target: store.ErrUsernameAlreadyExists, status: http.StatusBadRequest},
	{target: store.ErrNoUserWasFound, status: http.StatusBadRequest},
	{target: service.ErrWrongPassword, status: http.StatusBadRequest},

	{target: ErrEmptyAuthorizationHeader, status: http.StatusUnauthorized},
	{target: ErrInvalidAuthorizationHeader, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsMissing, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsExpired, status: http.StatusUnauthorized},
	{target: service.ErrTokenIsInvalid, status: http.StatusUnauthorized},
	{target: ErrNoUserInContext, status: http.StatusUnauthorized, message: http.StatusText(http.StatusUnauthorized)},

	{target: store.ErrNoteNotFound, status: http.StatusNotFound},
}

// statusFromError returns the HTTP status and client message for err.
// Anything unknown, including every persistence failure, is a 500 with a
// generic message so store details never reach the client.
func statusFromError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			if m.message != "" {
				return m.status, m.message
			}
			return m.status, m.target.Error()
		}
	}
	return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
}

// writeError logs err and answers with the mapped {"error": ...} body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
