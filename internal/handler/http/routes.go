// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// the websocket endpoint hijacks the connection, so it stays out of the
	// gzip and timeout middlewares
	router.Get("/ws", h.watchChanges)

	router.Group(func(r chi.Router) {
		r.Use(withGZip)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		// routes without authorization
		r.Get("/api/version", h.getServerVersion)
		r.Post("/users/register", h.register)
		r.Post("/register", h.register)
		r.Post("/users/login", h.login)
		r.Post("/login", h.login)

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/notes", h.createNote)
			r.Get("/notes", h.listNotes)
			r.Delete("/notes", h.deleteAllNotes)
			r.Get("/notes/{id}", h.getNote)
			r.Delete("/notes/{id}", h.deleteNote)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
