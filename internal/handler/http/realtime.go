// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// tokenQueryParam lets browser clients, which cannot set headers on a
// websocket handshake, pass their session token.
const tokenQueryParam = "token"

// watchChanges upgrades the request to a websocket and attaches it to the
// hub. In owner-scoped mode the caller must present a valid session token,
// either as a bearer header or as the token query parameter.
func (h *Handler) watchChanges(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var ownerID string
	if h.hub.OwnerScoped() {
		if token := r.URL.Query().Get(tokenQueryParam); token != "" && r.Header.Get("Authorization") == "" {
			r.Header.Set("Authorization", "Bearer "+token)
		}

		userID, err := h.authenticate(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		ownerID = userID
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the client
		log.Err(err).Msg("websocket upgrade failed")
		return
	}

	h.hub.Serve(conn, ownerID)
}
