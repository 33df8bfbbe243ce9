// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
)

// NoteValidationService checks every request before handing it to the
// wrapped NoteService. Failures wrap both ErrInvalidDataProvided and the
// validator error.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := v.validator.Validate(ctx, note, validators.FieldOwnerID, validators.FieldTitle); err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.CreateNote(ctx, note)
}

func (v *NoteValidationService) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, models.Note{OwnerID: ownerID}, validators.FieldOwnerID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.ListNotes(ctx, ownerID)
}

func (v *NoteValidationService) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	if err := v.validateNoteRef(ctx, ownerID, noteID); err != nil {
		return models.Note{}, err
	}

	return v.inner.GetNote(ctx, ownerID, noteID)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	if err := v.validateNoteRef(ctx, ownerID, noteID); err != nil {
		return err
	}

	return v.inner.DeleteNote(ctx, ownerID, noteID)
}

func (v *NoteValidationService) DeleteAllNotes(ctx context.Context, ownerID string) (int64, error) {
	if err := v.validator.Validate(ctx, models.Note{OwnerID: ownerID}, validators.FieldOwnerID); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.DeleteAllNotes(ctx, ownerID)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

func (v *NoteValidationService) validateNoteRef(ctx context.Context, ownerID, noteID string) error {
	ref := models.Note{ID: noteID, OwnerID: ownerID}
	if err := v.validator.Validate(ctx, ref, validators.FieldOwnerID, validators.FieldID); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
