// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// Storages bundles the repositories and the change feed of one backend.
type Storages struct {
	UserRepository UserRepository
	NoteRepository NoteRepository
	ChangeFeed     ChangeFeed

	closer func(ctx context.Context) error
}

// NewStorages connects to the backend selected by the DSN scheme, prepares
// its schema and wires the repositories.
//
// PostgreSQL runs the embedded goose migrations. MongoDB creates its indexes
// and, in owner-scoped relay mode, enables change stream pre-images.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	switch driver := cfg.Storage.DB.Driver(); driver {
	case config.DriverPostgres:
		return newPostgresStorages(ctx, cfg, log)
	case config.DriverMongoDB:
		return newMongoStorages(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

func newPostgresStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		log.Err(err).Str("func", "store.newPostgresStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		NoteRepository: NewNoteRepository(db, log),
		ChangeFeed:     NewPostgresChangeFeed(db, log),
		closer: func(context.Context) error {
			return db.Close()
		},
	}, nil
}

func newMongoStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	mdb, err := NewConnectMongo(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, err
	}

	if err = mdb.EnsureIndexes(ctx); err != nil {
		log.Err(err).Str("func", "store.newMongoStorages").Msg("error creating indexes")
		_ = mdb.Close(ctx)
		return nil, err
	}

	if cfg.Relay.OwnerScoped {
		if err = mdb.EnablePreImages(ctx); err != nil {
			log.Warn().Err(err).
				Str("func", "store.newMongoStorages").
				Msg("change stream pre-images unavailable; delete events will carry no owner")
		}
	}

	return &Storages{
		UserRepository: NewMongoUserRepository(mdb.database, log),
		NoteRepository: NewMongoNoteRepository(mdb.database, log),
		ChangeFeed:     NewMongoChangeFeed(mdb.database, cfg.Relay.OwnerScoped, log),
		closer:         mdb.Close,
	}, nil
}

// Close releases the backend connection.
func (s *Storages) Close(ctx context.Context) error {
	if s.closer == nil {
		return nil
	}
	return s.closer(ctx)
}
