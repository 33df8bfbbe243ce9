// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, verifies credentials and manages session
// tokens.
type AuthService interface {
	// RegisterUser stores a new user with a hashed password. No token is
	// issued.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login returns the stored user if the password matches.
	Login(ctx context.Context, user models.User) (models.User, error)

	// CreateToken issues a signed session token for the user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken verifies a session token and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// NoteService manages the notes of a single owner at a time.
type NoteService interface {
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	ListNotes(ctx context.Context, ownerID string) ([]models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID string) error
	DeleteAllNotes(ctx context.Context, ownerID string) (int64, error)
}

// AppInfoService exposes build and version information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
