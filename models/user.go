// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the store-assigned unique identifier of the user.
	// It is embedded into issued tokens as the "sub" claim.
	ID string `json:"id,omitempty"`

	// Username is the unique user login identifier.
	Username string `json:"username"`

	// Password carries the plain-text password received from the client.
	// It is consumed by the auth service and never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the salted one-way hash of the password.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt,omitempty"`
}

// TableName returns the name of the table (or collection)
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
