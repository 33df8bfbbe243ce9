// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	_ = mock // no expectations: goose's first statement fails

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(embedMigrations, "*.sql")
	require.NoError(t, err)
	require.Len(t, files, 3)

	for _, name := range files {
		body, err := fs.ReadFile(embedMigrations, name)
		require.NoError(t, err)

		text := string(body)
		assert.True(t, strings.Contains(text, "-- +goose Up"), "%s has no Up section", name)
		assert.True(t, strings.Contains(text, "-- +goose Down"), "%s has no Down section", name)
	}
}

func TestTriggerPublishesToNoteChanges(t *testing.T) {
	body, err := fs.ReadFile(embedMigrations, "00003_notes_change_trigger.sql")
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, "pg_notify('note_changes'")
	assert.Contains(t, text, "-- +goose StatementBegin")
	assert.Contains(t, text, "AFTER INSERT OR UPDATE OR DELETE ON notes")
}
