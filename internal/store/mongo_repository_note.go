// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// mongoNoteRepository is the MongoDB-backed implementation of
// [NoteRepository]. Every filter includes userId.
type mongoNoteRepository struct {
	notes  *mongo.Collection
	logger *logger.Logger
}

// NewMongoNoteRepository constructs a [NoteRepository] over the notes
// collection of db.
func NewMongoNoteRepository(db *mongo.Database, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating mongo note repository")
	return &mongoNoteRepository{
		notes:  db.Collection(notesCollection),
		logger: logger,
	}
}

func (r *mongoNoteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	ids, ok := objectIDs(note.OwnerID)
	if !ok {
		return models.Note{}, fmt.Errorf("%w: invalid owner id", ErrNoteNotSaved)
	}

	doc := noteDocument{
		ID:        primitive.NewObjectID(),
		UserID:    ids[0],
		Title:     note.Title,
		Content:   note.Content,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}

	if _, err := r.notes.InsertOne(ctx, doc); err != nil {
		log.Err(err).
			Str("func", "mongoNoteRepository.CreateNote").
			Str("owner_id", note.OwnerID).
			Msg("error inserting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoNoteRepository) ListNotes(ctx context.Context, ownerID string) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes := make([]models.Note, 0)
	ids, ok := objectIDs(ownerID)
	if !ok {
		return notes, nil
	}

	cursor, err := r.notes.Find(ctx, ownerFilter(ids[0]))
	if err != nil {
		log.Err(err).
			Str("func", "mongoNoteRepository.ListNotes").
			Str("owner_id", ownerID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc noteDocument
		if err = cursor.Decode(&doc); err != nil {
			log.Err(err).
				Str("func", "mongoNoteRepository.ListNotes").
				Int("iteration", len(notes)).
				Msg("failed to decode note")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, doc.toModel())
	}

	if err = cursor.Err(); err != nil {
		log.Err(err).Str("func", "mongoNoteRepository.ListNotes").Msg("cursor iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *mongoNoteRepository) GetNote(ctx context.Context, ownerID, noteID string) (models.Note, error) {
	log := logger.FromContext(ctx)

	ids, ok := objectIDs(ownerID, noteID)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	var doc noteDocument
	err := r.notes.FindOne(ctx, noteFilter(ids[0], ids[1])).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "mongoNoteRepository.GetNote").
			Str("note_id", noteID).
			Msg("error getting note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return doc.toModel(), nil
}

func (r *mongoNoteRepository) DeleteNote(ctx context.Context, ownerID, noteID string) error {
	log := logger.FromContext(ctx)

	ids, ok := objectIDs(ownerID, noteID)
	if !ok {
		return ErrNoteNotFound
	}

	result, err := r.notes.DeleteOne(ctx, noteFilter(ids[0], ids[1]))
	if err != nil {
		log.Err(err).
			Str("func", "mongoNoteRepository.DeleteNote").
			Str("note_id", noteID).
			Msg("error deleting note")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if result.DeletedCount == 0 {
		return ErrNoteNotFound
	}

	return nil
}

func (r *mongoNoteRepository) DeleteAllNotes(ctx context.Context, ownerID string) (int64, error) {
	log := logger.FromContext(ctx)

	ids, ok := objectIDs(ownerID)
	if !ok {
		return 0, nil
	}

	result, err := r.notes.DeleteMany(ctx, ownerFilter(ids[0]))
	if err != nil {
		log.Err(err).
			Str("func", "mongoNoteRepository.DeleteAllNotes").
			Str("owner_id", ownerID).
			Msg("error deleting notes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return result.DeletedCount, nil
}

func ownerFilter(ownerID primitive.ObjectID) bson.D {
	return bson.D{{Key: "userId", Value: ownerID}}
}

func noteFilter(ownerID, noteID primitive.ObjectID) bson.D {
	return bson.D{
		{Key: "_id", Value: noteID},
		{Key: "userId", Value: ownerID},
	}
}
