// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Field name constants used to specify which fields should be validated.
const (
	// FieldID targets the store-assigned note identifier.
	FieldID = "id"

	// FieldOwnerID targets the owner of a note.
	FieldOwnerID = "owner_id"

	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldUsername targets the login name of a user.
	FieldUsername = "username"

	// FieldPassword targets the plaintext password of a user.
	FieldPassword = "password"
)

// NoteValidator implements the Validator interface for notes and user
// credentials.
//
// It accepts both value and pointer forms of models.Note and models.User
// and allows optional field-level scoping via variadic field name arguments.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation to the type-specific method based on the
// dynamic type of obj.
//
// Returns ErrUnsupportedType if obj is neither a note nor a user.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateNote(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateNote checks a note.
//
// Default validated fields: OwnerID, Title.
// A title made only of whitespace counts as empty.
func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOwnerID, FieldTitle}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if strings.TrimSpace(note.ID) == "" {
				return ErrEmptyNoteID
			}
		case FieldOwnerID:
			if strings.TrimSpace(note.OwnerID) == "" {
				return ErrEmptyOwnerID
			}
		case FieldTitle:
			if strings.TrimSpace(note.Title) == "" {
				return ErrEmptyTitle
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateUser checks user credentials.
//
// Default validated fields: Username, Password.
func (v *NoteValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(user.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
