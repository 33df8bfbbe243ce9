// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a single user note.
//
// The external JSON representation is {id, title, content, createdAt}:
// OwnerID is never serialised, so the owner of a note is not disclosed
// to API clients.
type Note struct {
	// ID is the store-assigned unique identifier of the note.
	ID string `json:"id"`

	// OwnerID references the user the note belongs to. It is always taken
	// from the verified session token, never from the request body.
	OwnerID string `json:"-"`

	// Title is required and must not be blank.
	Title string `json:"title"`

	// Content is optional free text.
	Content string `json:"content"`

	// CreatedAt is set once at creation time.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the table (or collection)
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteInput is the request body accepted when creating a note.
// Any owner-like field sent by a client is ignored.
type NoteInput struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
