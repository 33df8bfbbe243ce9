// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// mongoChangeFeed watches the notes collection. The resume token of the last
// delivered event is kept, so a new subscription continues where the
// previous one broke off.
type mongoChangeFeed struct {
	notes       *mongo.Collection
	ownerScoped bool
	logger      *logger.Logger

	mu          sync.Mutex
	resumeToken bson.Raw
}

// NewMongoChangeFeed constructs a [ChangeFeed] over a change stream. With
// ownerScoped set, update events carry the current document and delete
// events carry the pre-image when the server has one, so every event can be
// attributed to an owner.
func NewMongoChangeFeed(db *mongo.Database, ownerScoped bool, logger *logger.Logger) ChangeFeed {
	return &mongoChangeFeed{
		notes:       db.Collection(notesCollection),
		ownerScoped: ownerScoped,
		logger:      logger,
	}
}

func (f *mongoChangeFeed) Subscribe(ctx context.Context) (Subscription, error) {
	opts := options.ChangeStream()
	if f.ownerScoped {
		opts.SetFullDocument(options.UpdateLookup).
			SetFullDocumentBeforeChange(options.WhenAvailable)
	}

	token := f.token()
	if token != nil {
		opts.SetResumeAfter(token)
	}

	stream, err := f.notes.Watch(ctx, mongo.Pipeline{}, opts)
	if err != nil {
		if token != nil {
			// the token may have fallen off the oplog; start fresh next time
			f.saveToken(nil)
		}
		return nil, fmt.Errorf("error opening change stream: %w", err)
	}

	f.logger.Info().
		Str("func", "mongoChangeFeed.Subscribe").
		Bool("resumed", token != nil).
		Msg("watching note changes")

	return &mongoSubscription{stream: stream, feed: f}, nil
}

func (f *mongoChangeFeed) token() bson.Raw {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.resumeToken
}

func (f *mongoChangeFeed) saveToken(token bson.Raw) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resumeToken = token
}

type mongoSubscription struct {
	stream *mongo.ChangeStream
	feed   *mongoChangeFeed
}

func (s *mongoSubscription) Next(ctx context.Context) (models.ChangeEvent, error) {
	if !s.stream.Next(ctx) {
		if err := s.stream.Err(); err != nil {
			return models.ChangeEvent{}, err
		}
		if err := ctx.Err(); err != nil {
			return models.ChangeEvent{}, err
		}
		return models.ChangeEvent{}, ErrChangeFeedClosed
	}

	event, err := decodeMongoChange(s.stream.Current)
	s.feed.saveToken(s.stream.ResumeToken())

	return event, err
}

func (s *mongoSubscription) Close(ctx context.Context) error {
	return s.stream.Close(ctx)
}

type mongoOwnerDocument struct {
	UserID primitive.ObjectID `bson:"userId"`
}

// mongoChangeDocument is the subset of a change stream document needed for
// routing.
type mongoChangeDocument struct {
	OperationType            string              `bson:"operationType"`
	FullDocument             *mongoOwnerDocument `bson:"fullDocument"`
	FullDocumentBeforeChange *mongoOwnerDocument `bson:"fullDocumentBeforeChange"`
}

// decodeMongoChange converts a change stream document to relaxed Extended
// JSON and extracts its routing metadata.
func decodeMongoChange(raw bson.Raw) (models.ChangeEvent, error) {
	var doc mongoChangeDocument
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return models.ChangeEvent{}, fmt.Errorf("%w: %w", ErrDecodingChange, err)
	}

	data, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return models.ChangeEvent{}, fmt.Errorf("%w: %w", ErrDecodingChange, err)
	}

	event := models.ChangeEvent{
		Raw:       json.RawMessage(data),
		Operation: doc.OperationType,
	}

	switch {
	case doc.FullDocument != nil && !doc.FullDocument.UserID.IsZero():
		event.OwnerID = doc.FullDocument.UserID.Hex()
	case doc.FullDocumentBeforeChange != nil && !doc.FullDocumentBeforeChange.UserID.IsZero():
		event.OwnerID = doc.FullDocumentBeforeChange.UserID.Hex()
	}

	return event, nil
}
