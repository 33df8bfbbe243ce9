// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// Driver names the storage backend selected by the DSN scheme.
type Driver string

const (
	DriverUnknown  Driver = ""
	DriverPostgres Driver = "postgres"
	DriverMongoDB  Driver = "mongodb"
)

// Driver returns the backend selected by the DSN scheme.
func (db DB) Driver() Driver {
	dsn := strings.ToLower(db.DSN)

	switch {
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return DriverPostgres
	case strings.HasPrefix(dsn, "mongodb://"), strings.HasPrefix(dsn, "mongodb+srv://"):
		return DriverMongoDB
	default:
		return DriverUnknown
	}
}
