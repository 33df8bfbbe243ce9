// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-note-keeper/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	usersCollection = "users"
	notesCollection = "notes"
)

// userDocument is the stored layout of a user in MongoDB.
type userDocument struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Username     string             `bson:"username"`
	PasswordHash string             `bson:"passwordHash"`
	CreatedAt    time.Time          `bson:"createdAt"`
}

func (d userDocument) toModel() models.User {
	return models.User{
		ID:           d.ID.Hex(),
		Username:     d.Username,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt,
	}
}

// noteDocument is the stored layout of a note in MongoDB. The owner is kept
// under userId.
type noteDocument struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"userId"`
	Title     string             `bson:"title"`
	Content   string             `bson:"content"`
	CreatedAt time.Time          `bson:"createdAt"`
}

func (d noteDocument) toModel() models.Note {
	return models.Note{
		ID:        d.ID.Hex(),
		OwnerID:   d.UserID.Hex(),
		Title:     d.Title,
		Content:   d.Content,
		CreatedAt: d.CreatedAt,
	}
}

// objectIDs parses every id. ok is false if any of them is not a valid
// ObjectID hex string.
func objectIDs(ids ...string) ([]primitive.ObjectID, bool) {
	parsed := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, false
		}
		parsed = append(parsed, oid)
	}
	return parsed, true
}
