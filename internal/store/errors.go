// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUsernameAlreadyExists is returned when an attempt to register a new
	// user fails because the username is already taken.
	ErrUsernameAlreadyExists = errors.New("Username already exists")

	// ErrNoUserWasFound is returned when no user matches the requested
	// username.
	ErrNoUserWasFound = errors.New("User not found")

	// ErrNoteNotFound is returned when a note does not exist, belongs to
	// another user or is addressed by an identifier the backend cannot parse.
	ErrNoteNotFound = errors.New("Note not found")

	// ErrNoteNotSaved is returned when an INSERT completes without error but
	// nothing was persisted.
	ErrNoteNotSaved = errors.New("note was not saved")

	// ErrUnsupportedDriver is returned by [NewStorages] when the DSN scheme
	// matches no known backend.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrChangeFeedClosed is returned by [Subscription.Next] when the
	// underlying stream ended without reporting an error.
	ErrChangeFeedClosed = errors.New("change feed closed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a database operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrDecodingChange is returned when a change feed payload cannot be
	// decoded.
	ErrDecodingChange = errors.New("failed to decode change event")
)
