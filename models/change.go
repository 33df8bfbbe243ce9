// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// ChangeEventName is the name of the real-time event carrying note changes.
const ChangeEventName = "noteChange"

// Change operation types as reported by the change feed. They follow the
// MongoDB change stream vocabulary on every backend.
const (
	OperationInsert = "insert"
	OperationUpdate = "update"
	OperationDelete = "delete"
)

// ChangeEvent is a single mutation notification read from the note store's
// change feed.
type ChangeEvent struct {
	// Raw is the store's native change payload. It is relayed to real-time
	// clients verbatim.
	Raw json.RawMessage

	// Operation is the operation type extracted from the payload, if known.
	Operation string

	// OwnerID is the owner of the changed note, if the payload carries it.
	// It is used for logging and owner-scoped relaying only.
	OwnerID string
}

// RealtimeMessage is the frame written to real-time clients.
type RealtimeMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// NewChangeMessage wraps a change event into the noteChange frame.
func NewChangeMessage(event ChangeEvent) RealtimeMessage {
	return RealtimeMessage{
		Event: ChangeEventName,
		Data:  event.Raw,
	}
}
