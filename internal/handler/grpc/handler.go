// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc implements the gRPC transport of the application. It serves
// the standard grpc.health.v1.Health service, whose status follows the
// change relay's subscription.
package grpc

import (
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// RelayServiceName is the health service name reporting the change relay.
// The overall status ("") reports the same value.
const RelayServiceName = "notekeeper.ChangeRelay"

// Handler is the root gRPC transport handler.
//
// A handler instance is created once at startup and shared by the gRPC
// server. It starts in NOT_SERVING until the relay reports a live
// subscription.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(false)

	return h
}

// Register attaches every gRPC service of the handler to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing publishes the relay state. It matches the signature of the
// relay's status listener.
func (h *Handler) SetServing(live bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if live {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(RelayServiceName, status)
	h.logger.Debug().Str("status", status.String()).Msg("health status changed")
}

// Shutdown marks every service NOT_SERVING for good.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
