// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testOwnerID = "0190f7a4-0000-7000-8000-0000000000aa"
	testNoteID  = "0190f7a4-0000-7000-8000-0000000000bb"
)

var noteRowColumns = []string{"id", "owner_id", "title", "content", "created_at"}

func newTestNoteRepo(t *testing.T) (*noteRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &noteRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
		ids:    utils.NewUUIDGenerator(),
	}
	return repo, mock, db
}

// ---------------------------------------------------------------------------
// CreateNote
// ---------------------------------------------------------------------------

func TestNoteRepository_CreateNote(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO notes \\(id,owner_id,title,content\\)").
		WithArgs(sqlmock.AnyArg(), testOwnerID, "Groceries", "milk").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(testNoteID, testOwnerID, "Groceries", "milk", now))

	note, err := repo.CreateNote(context.Background(), models.Note{
		OwnerID: testOwnerID,
		Title:   "Groceries",
		Content: "milk",
	})
	require.NoError(t, err)

	assert.Equal(t, testNoteID, note.ID)
	assert.Equal(t, testOwnerID, note.OwnerID)
	assert.Equal(t, now, note.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_CreateNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO notes").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateNote(context.Background(), models.Note{OwnerID: testOwnerID, Title: "t"})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ---------------------------------------------------------------------------
// ListNotes
// ---------------------------------------------------------------------------

func TestNoteRepository_ListNotes(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, owner_id, title, content, created_at FROM notes WHERE owner_id = \\$1").
		WithArgs(testOwnerID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(testNoteID, testOwnerID, "a", "", now).
			AddRow("0190f7a4-0000-7000-8000-0000000000cc", testOwnerID, "b", "x", now))

	notes, err := repo.ListNotes(context.Background(), testOwnerID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "a", notes[0].Title)
	assert.Equal(t, "b", notes[1].Title)
}

func TestNoteRepository_ListNotes_EmptyIsNotNil(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(testOwnerID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	notes, err := repo.ListNotes(context.Background(), testOwnerID)
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestNoteRepository_ListNotes_MalformedOwnerSkipsQuery(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	notes, err := repo.ListNotes(context.Background(), "not-a-uuid")
	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_ListNotes_QueryError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(testOwnerID).
		WillReturnError(errors.New("boom"))

	_, err := repo.ListNotes(context.Background(), testOwnerID)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNoteRepository_ListNotes_RowError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(testOwnerID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(testNoteID, testOwnerID, "a", "", time.Now()).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListNotes(context.Background(), testOwnerID)
	assert.ErrorIs(t, err, ErrScanningRows)
}

// ---------------------------------------------------------------------------
// GetNote
// ---------------------------------------------------------------------------

func TestNoteRepository_GetNote(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT id, owner_id, title, content, created_at FROM notes WHERE id = \\$1 AND owner_id = \\$2").
		WithArgs(testNoteID, testOwnerID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(testNoteID, testOwnerID, "a", "b", now))

	note, err := repo.GetNote(context.Background(), testOwnerID, testNoteID)
	require.NoError(t, err)
	assert.Equal(t, testNoteID, note.ID)
	assert.Equal(t, "b", note.Content)
}

func TestNoteRepository_GetNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(testNoteID, testOwnerID).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err := repo.GetNote(context.Background(), testOwnerID, testNoteID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_GetNote_MalformedID(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	_, err := repo.GetNote(context.Background(), testOwnerID, "123")
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_GetNote_InvalidTextRepresentation(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(testNoteID, testOwnerID).
		WillReturnError(pgError(pgerrcode.InvalidTextRepresentation))

	_, err := repo.GetNote(context.Background(), testOwnerID, testNoteID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_GetNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id").
		WithArgs(testNoteID, testOwnerID).
		WillReturnError(errors.New("boom"))

	_, err := repo.GetNote(context.Background(), testOwnerID, testNoteID)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ---------------------------------------------------------------------------
// DeleteNote / DeleteAllNotes
// ---------------------------------------------------------------------------

func TestNoteRepository_DeleteNote(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes WHERE id = \\$1 AND owner_id = \\$2").
		WithArgs(testNoteID, testOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteNote(context.Background(), testOwnerID, testNoteID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_DeleteNote_NotFound(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(testNoteID, testOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteNote(context.Background(), testOwnerID, testNoteID)
	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestNoteRepository_DeleteNote_MalformedID(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	err := repo.DeleteNote(context.Background(), testOwnerID, "zzz")
	assert.ErrorIs(t, err, ErrNoteNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNoteRepository_DeleteNote_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(testNoteID, testOwnerID).
		WillReturnError(errors.New("boom"))

	err := repo.DeleteNote(context.Background(), testOwnerID, testNoteID)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestNoteRepository_DeleteAllNotes(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes WHERE owner_id = \\$1").
		WithArgs(testOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteAllNotes(context.Background(), testOwnerID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestNoteRepository_DeleteAllNotes_Zero(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(testOwnerID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	n, err := repo.DeleteAllNotes(context.Background(), testOwnerID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestNoteRepository_DeleteAllNotes_DBError(t *testing.T) {
	repo, mock, db := newTestNoteRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM notes").
		WithArgs(testOwnerID).
		WillReturnError(errors.New("boom"))

	_, err := repo.DeleteAllNotes(context.Background(), testOwnerID)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
