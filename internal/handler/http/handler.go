// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/realtime"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/gorilla/websocket"
)

type Handler struct {
	services *service.Services
	hub      *realtime.Hub
	upgrader websocket.Upgrader

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, hub *realtime.Hub, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		hub:      hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// any origin is accepted
			CheckOrigin: func(*http.Request) bool { return true },
		},
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
