// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// MessageResponse is a short confirmation returned by mutating endpoints.
type MessageResponse struct {
	Message string `json:"message"`

	// Deleted is the number of removed records for bulk deletions.
	Deleted *int64 `json:"deleted,omitempty"`
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}
