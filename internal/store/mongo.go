// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoDB is a connected MongoDB client bound to the configured database.
type MongoDB struct {
	client   *mongo.Client
	database *mongo.Database
	logger   *logger.Logger
}

// NewConnectMongo connects to MongoDB, pings the primary and returns the
// handle of the configured database.
func NewConnectMongo(ctx context.Context, cfg config.DB, log *logger.Logger) (*MongoDB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	if err = client.Ping(ctx, nil); err != nil {
		log.Err(err).Str("func", "NewConnectMongo").Msg("error connecting database (ping)")
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("error connecting database (ping): %w", err)
	}
	log.Info().Str("func", "NewConnectMongo").Str("database", cfg.Name).Msg("connected to database successfully")

	return &MongoDB{
		client:   client,
		database: client.Database(cfg.Name),
		logger:   log,
	}, nil
}

// EnsureIndexes creates the unique username index. It is the MongoDB
// counterpart of the PostgreSQL migrations.
func (m *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := m.database.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("username_unique"),
	})
	if err != nil {
		return fmt.Errorf("error creating username index: %w", err)
	}

	_, err = m.database.Collection(notesCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetName("user_id"),
	})
	if err != nil {
		return fmt.Errorf("error creating notes owner index: %w", err)
	}

	return nil
}

// EnablePreImages turns on change stream pre-images for the notes
// collection, so delete events carry the owner of the removed note.
// Requires MongoDB 6.0 or newer.
func (m *MongoDB) EnablePreImages(ctx context.Context) error {
	err := m.database.CreateCollection(ctx, notesCollection)
	if err != nil && !isNamespaceExists(err) {
		return fmt.Errorf("error creating notes collection: %w", err)
	}

	cmd := bson.D{
		{Key: "collMod", Value: notesCollection},
		{Key: "changeStreamPreAndPostImages", Value: bson.D{{Key: "enabled", Value: true}}},
	}
	if err = m.database.RunCommand(ctx, cmd).Err(); err != nil {
		return fmt.Errorf("error enabling change stream pre-images: %w", err)
	}

	return nil
}

// Close disconnects the client.
func (m *MongoDB) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// isNamespaceExists reports whether err is MongoDB's NamespaceExists (48).
func isNamespaceExists(err error) bool {
	var cmdErr mongo.CommandError
	return errors.As(err, &cmdErr) && cmdErr.Code == 48
}
