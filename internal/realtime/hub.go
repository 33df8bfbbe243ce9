// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"encoding/json"
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Hub tracks live websocket clients. It is safe for concurrent use.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	closed  bool

	// bufferSize is the capacity of each client's send queue.
	bufferSize int

	// ownerScoped limits delivery of an event to clients of the note owner.
	ownerScoped bool

	logger *logger.Logger
}

func NewHub(cfg config.Relay, logger *logger.Logger) *Hub {
	bufferSize := cfg.ClientBuffer
	if bufferSize < 1 {
		bufferSize = 1
	}

	return &Hub{
		clients:     make(map[*Client]struct{}),
		bufferSize:  bufferSize,
		ownerScoped: cfg.OwnerScoped,
		logger:      logger,
	}
}

// OwnerScoped reports whether clients must identify themselves before
// connecting.
func (h *Hub) OwnerScoped() bool {
	return h.ownerScoped
}

// Serve registers conn as a client owned by ownerID and blocks until the
// connection is closed by the peer or by Close. ownerID may be empty when
// the hub is not owner-scoped.
func (h *Hub) Serve(conn *websocket.Conn, ownerID string) {
	client := &Client{
		id:      uuid.NewString(),
		ownerID: ownerID,
		conn:    conn,
		send:    make(chan []byte, h.bufferSize),
	}

	if !h.register(client) {
		_ = conn.Close()
		return
	}

	go client.writePump()
	client.readPump()

	h.unregister(client)
}

// Broadcast queues event for every eligible client and returns how many
// clients received it. Clients with a full queue miss the event.
func (h *Hub) Broadcast(event models.ChangeEvent) int {
	message, err := json.Marshal(models.NewChangeMessage(event))
	if err != nil {
		h.logger.Err(err).Str("operation", event.Operation).Msg("change event could not be encoded")
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.clients {
		if h.ownerScoped && client.ownerID != event.OwnerID {
			continue
		}

		select {
		case client.send <- message:
			delivered++
		default:
			h.logger.Warn().Str("client_id", client.id).Msg("client send buffer is full, message dropped")
		}
	}

	return delivered
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}

// Close disconnects every client and rejects new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for client := range h.clients {
		delete(h.clients, client)
		close(client.send)
	}
}

func (h *Hub) register(client *Client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return false
	}
	h.clients[client] = struct{}{}

	h.logger.Info().
		Str("client_id", client.id).
		Str("owner_id", client.ownerID).
		Str("remote_addr", client.conn.RemoteAddr().String()).
		Msg("realtime client connected")
	return true
}

func (h *Hub) unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Close may have removed the client already.
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}

	h.logger.Info().Str("client_id", client.id).Msg("realtime client disconnected")
}
