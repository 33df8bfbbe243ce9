// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/go-note-keeper/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker gives up. Cancellation is
// the normal way to stop a worker and is not reported as an error.
type Worker interface {
	Run(ctx context.Context) error
}

// Broadcaster fans change events out to real-time clients.
type Broadcaster interface {
	// Broadcast returns the number of clients the event was queued for.
	Broadcast(event models.ChangeEvent) int
}
