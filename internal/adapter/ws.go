// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/gorilla/websocket"
)

// Watch dials /ws and delivers every frame to onMessage. Frames that are not
// valid JSON are logged and skipped.
func (h *httpServerAdapter) Watch(ctx context.Context, onMessage func(models.RealtimeMessage)) error {
	wsURL, err := h.websocketURL()
	if err != nil {
		return err
	}

	header := http.Header{}
	if h.token != "" {
		header.Set("Authorization", "Bearer "+h.token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, wsURL, header)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			return fmt.Errorf("%w: websocket handshake rejected", ErrUnauthorized)
		}
		return fmt.Errorf("websocket dial: %w", err)
	}
	defer conn.Close()

	h.logger.Debug().Str("url", wsURL).Msg("watching note changes")

	// unblock ReadMessage once ctx is done
	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		_ = conn.Close()
	})
	defer stop()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil || websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("websocket read: %w", err)
		}

		var message models.RealtimeMessage
		if err = json.Unmarshal(data, &message); err != nil {
			h.logger.Warn().Err(err).Msg("skipping malformed real-time frame")
			continue
		}
		onMessage(message)
	}
}

// websocketURL derives the ws(s):// address of the real-time channel from
// the REST base URL.
func (h *httpServerAdapter) websocketURL() (string, error) {
	u, err := url.Parse(h.baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", errors.New("unsupported server url scheme " + u.Scheme)
	}

	u.Path = strings.TrimRight(u.Path, "/") + "/ws"
	return u.String(), nil
}
