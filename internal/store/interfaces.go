// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser stores a new user and returns it with the store-assigned
	// ID and CreatedAt. Returns [ErrUsernameAlreadyExists] if the username
	// is taken; nothing is written in that case.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername returns the user with the exact username or
	// [ErrNoUserWasFound].
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// NoteRepository persists notes. Every method is scoped to a single owner:
// notes of other users are never returned or removed.
type NoteRepository interface {
	// CreateNote stores a new note and returns it with the store-assigned
	// ID and CreatedAt.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// ListNotes returns every note of the owner in store order. The result
	// is never nil.
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)

	// GetNote returns one note of the owner or [ErrNoteNotFound].
	GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error)

	// DeleteNote removes one note of the owner or returns [ErrNoteNotFound].
	DeleteNote(ctx context.Context, ownerID, noteID string) error

	// DeleteAllNotes removes every note of the owner and returns how many
	// were removed.
	DeleteAllNotes(ctx context.Context, ownerID string) (int64, error)
}

// ChangeFeed opens subscriptions to the note store's change notifications.
type ChangeFeed interface {
	// Subscribe opens a new subscription. The caller owns it and must
	// Close it.
	Subscribe(ctx context.Context) (Subscription, error)
}

// Subscription is a live stream of note change events.
type Subscription interface {
	// Next blocks until the next change arrives, ctx is done or the
	// stream fails.
	Next(ctx context.Context) (models.ChangeEvent, error)

	// Close releases the subscription's resources.
	Close(ctx context.Context) error
}
