// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/models"
)

// noteService is the plain NoteService. It trusts its input; validation is
// layered on top by NoteValidationService.
type noteService struct {
	noteRepository store.NoteRepository
	logger         *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	created, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Str("owner_id", note.OwnerID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	log.Info().Str("owner_id", created.OwnerID).Str("note_id", created.ID).Msg("note created")
	return created, nil
}

func (s *noteService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	notes, err := s.noteRepository.ListNotes(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("owner_id", ownerID).Msg("listing notes ended with error")
		return nil, fmt.Errorf("listing notes ended with error: %w", err)
	}

	if notes == nil {
		notes = make([]models.Note, 0)
	}
	return notes, nil
}

func (s *noteService) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	note, err := s.noteRepository.GetNote(ctx, ownerID, noteID)
	if err != nil {
		return models.Note{}, fmt.Errorf("getting note ended with error: %w", err)
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.FromContext(ctx)

	if err := s.noteRepository.DeleteNote(ctx, ownerID, noteID); err != nil {
		return fmt.Errorf("deleting note ended with error: %w", err)
	}

	log.Info().Str("owner_id", ownerID).Str("note_id", noteID).Msg("note deleted")
	return nil
}

func (s *noteService) DeleteAllNotes(ctx context.Context, ownerID string) (int64, error) {
	log := logger.FromContext(ctx)

	deleted, err := s.noteRepository.DeleteAllNotes(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("owner_id", ownerID).Msg("deleting all notes ended with error")
		return 0, fmt.Errorf("deleting all notes ended with error: %w", err)
	}

	log.Info().Str("owner_id", ownerID).Int64("deleted", deleted).Msg("all notes deleted")
	return deleted, nil
}
