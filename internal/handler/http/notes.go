// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	msgNoteDeleted     = "Note deleted successfully"
	msgAllNotesDeleted = "All notes have been deleted successfully"
)

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.NoteInput
	if err = json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, r, ErrInvalidJSON)
		return
	}

	note, err := h.services.NoteService.CreateNote(r.Context(), models.Note{
		OwnerID: ownerID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	notes, err := h.services.NoteService.ListNotes(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.Note{}
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), ownerID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), ownerID, chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgNoteDeleted}, http.StatusOK)
}

func (h *Handler) deleteAllNotes(w http.ResponseWriter, r *http.Request) {
	ownerID, err := ownerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	deleted, err := h.services.NoteService.DeleteAllNotes(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: msgAllNotesDeleted, Deleted: &deleted}, http.StatusOK)
}
