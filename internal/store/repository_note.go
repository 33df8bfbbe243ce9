// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/google/uuid"
)

// noteRepository is the PostgreSQL-backed implementation of
// [NoteRepository]. Every statement filters by owner_id.
type noteRepository struct {
	*DB
	logger *logger.Logger
	ids    *utils.UUIDGenerator
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
		ids:    utils.NewUUIDGenerator(),
	}
}

// CreateNote inserts a note with a fresh UUIDv7 id. created_at is set by the
// database.
func (n *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	note.ID = n.ids.Generate()
	query, args, err := buildInsertNoteQuery(note)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to build query")
		return models.Note{}, err
	}

	created, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.CreateNote").
			Str("owner_id", note.OwnerID).
			Msg("error inserting note")
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotSaved
		}
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// ListNotes returns all notes of the owner. An owner id that is not a UUID
// cannot own anything, so the result is empty.
func (n *noteRepository) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes := make([]models.Note, 0)
	if !isUUID(ownerID) {
		return notes, nil
	}

	query, args, err := buildSelectNotesQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to build query")
		return nil, err
	}

	rows, err := n.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.ListNotes").
			Str("owner_id", ownerID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.ListNotes").
				Str("owner_id", ownerID).
				Int("iteration", len(notes)).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

// GetNote returns one note of the owner. Unknown, foreign and malformed ids
// all yield [ErrNoteNotFound].
func (n *noteRepository) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !isUUID(ownerID) || !isUUID(noteID) {
		return models.Note{}, ErrNoteNotFound
	}

	query, args, err := buildSelectNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.GetNote").Msg("failed to build query")
		return models.Note{}, err
	}

	note, err := scanNote(n.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || isMalformedValue(err) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.GetNote").
			Str("note_id", noteID).
			Msg("error getting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

// DeleteNote removes one note of the owner. Zero affected rows means the note
// is unknown or foreign and yields [ErrNoteNotFound].
func (n *noteRepository) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.FromContext(ctx)

	if !isUUID(ownerID) || !isUUID(noteID) {
		return ErrNoteNotFound
	}

	query, args, err := buildDeleteNoteQuery(ownerID, noteID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to build query")
		return err
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		if isMalformedValue(err) {
			return ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "noteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// DeleteAllNotes removes every note of the owner and reports the count.
func (n *noteRepository) DeleteAllNotes(ctx context.Context, ownerID string) (int64, error) {
	log := logger.FromContext(ctx)

	if !isUUID(ownerID) {
		return 0, nil
	}

	query, args, err := buildDeleteAllNotesQuery(ownerID)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteAllNotes").Msg("failed to build query")
		return 0, err
	}

	result, err := n.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.DeleteAllNotes").
			Str("owner_id", ownerID).
			Msg("error deleting notes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Content, &note.CreatedAt)
	return note, err
}

func isUUID(id string) bool {
	return uuid.Validate(id) == nil
}
