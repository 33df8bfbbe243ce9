// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// postgresError returns the SQLSTATE code of err, or an empty string if err
// is not a PostgreSQL error.
func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

// isMalformedValue reports whether err is caused by an input value that
// does not fit the column type, e.g. a note id that is not a UUID.
func isMalformedValue(err error) bool {
	switch postgresError(err) {
	case pgerrcode.InvalidTextRepresentation,
		pgerrcode.InvalidParameterValue:
		return true
	}
	return false
}
