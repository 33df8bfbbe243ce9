// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/jackc/pgx/v5"
)

// noteChangesChannel is the NOTIFY channel the notes trigger publishes to.
const noteChangesChannel = "note_changes"

// postgresChangeFeed streams note changes published by the notes trigger.
// Each subscription holds a dedicated connection outside the pool, because
// LISTEN is bound to a session.
type postgresChangeFeed struct {
	dsn    string
	logger *logger.Logger
}

// NewPostgresChangeFeed constructs a [ChangeFeed] over LISTEN/NOTIFY.
func NewPostgresChangeFeed(db *DB, logger *logger.Logger) ChangeFeed {
	return &postgresChangeFeed{
		dsn:    db.dsn,
		logger: logger,
	}
}

// Subscribe opens a new connection and starts listening on the changes
// channel.
func (f *postgresChangeFeed) Subscribe(ctx context.Context) (Subscription, error) {
	conn, err := pgx.Connect(ctx, f.dsn)
	if err != nil {
		return nil, fmt.Errorf("error connecting change feed: %w", err)
	}

	if _, err = conn.Exec(ctx, "LISTEN "+noteChangesChannel); err != nil {
		_ = conn.Close(ctx)
		return nil, fmt.Errorf("error listening to %s: %w", noteChangesChannel, err)
	}

	f.logger.Info().Str("func", "postgresChangeFeed.Subscribe").Msg("listening for note changes")
	return &postgresSubscription{conn: conn}, nil
}

type postgresSubscription struct {
	conn *pgx.Conn
}

func (s *postgresSubscription) Next(ctx context.Context) (models.ChangeEvent, error) {
	notification, err := s.conn.WaitForNotification(ctx)
	if err != nil {
		return models.ChangeEvent{}, err
	}

	return decodePostgresChange([]byte(notification.Payload))
}

func (s *postgresSubscription) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

// postgresChangeDocument is the subset of the trigger payload needed for
// routing. The payload follows the change stream document layout.
type postgresChangeDocument struct {
	OperationType string `json:"operationType"`
	FullDocument  *struct {
		UserID string `json:"userId"`
	} `json:"fullDocument"`
	FullDocumentBeforeChange *struct {
		UserID string `json:"userId"`
	} `json:"fullDocumentBeforeChange"`
}

// decodePostgresChange turns a NOTIFY payload into a change event. The raw
// payload is kept as is.
func decodePostgresChange(payload []byte) (models.ChangeEvent, error) {
	var doc postgresChangeDocument
	if err := json.Unmarshal(payload, &doc); err != nil {
		return models.ChangeEvent{}, fmt.Errorf("%w: %w", ErrDecodingChange, err)
	}

	event := models.ChangeEvent{
		Raw:       json.RawMessage(payload),
		Operation: doc.OperationType,
	}

	switch {
	case doc.FullDocument != nil && doc.FullDocument.UserID != "":
		event.OwnerID = doc.FullDocument.UserID
	case doc.FullDocumentBeforeChange != nil:
		event.OwnerID = doc.FullDocumentBeforeChange.UserID
	}

	return event, nil
}
