// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the note server API.
//
// The primary abstraction is [ServerAdapter], which hides the REST and
// websocket transports from the command-line client. Error values defined in
// errors.go are mapped from HTTP status codes by mapHTTPError so that callers
// can use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// ServerAdapter defines communication with the note server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent
	// authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account. No token is issued; call Login next.
	Register(ctx context.Context, user models.User) error

	// Login authenticates the user, stores the returned token via SetToken
	// and returns it.
	Login(ctx context.Context, user models.User) (string, error)

	CreateNote(ctx context.Context, note models.NoteInput) (models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	GetNote(ctx context.Context, noteID string) (models.Note, error)
	DeleteNote(ctx context.Context, noteID string) error

	// DeleteAllNotes removes every note of the current user and returns how
	// many were removed.
	DeleteAllNotes(ctx context.Context) (int64, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Watch opens the real-time channel and calls onMessage for every frame
	// until ctx is cancelled or the connection fails.
	Watch(ctx context.Context, onMessage func(models.RealtimeMessage)) error
}
