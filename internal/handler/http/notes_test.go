// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/validators"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testNoteID = "0192f4c8-6a7e-7c3a-9d1f-2b5e8a4c7d11"

func TestCreateNote(t *testing.T) {
	t.Run("owner comes from the token, not the body", func(t *testing.T) {
		env := newTestEnv(t, config.Relay{})
		env.expectValidToken()

		createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
		env.notes.EXPECT().
			CreateNote(gomock.Any(), models.Note{OwnerID: testUserID, Title: "groceries", Content: "milk"}).
			Return(models.Note{ID: testNoteID, OwnerID: testUserID, Title: "groceries", Content: "milk", CreatedAt: createdAt}, nil)

		body := `{"title":"groceries","content":"milk","ownerId":"someone-else","userId":"someone-else"}`
		rr := env.do(t, http.MethodPost, "/notes", body, true)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.JSONEq(t, `{"id":"`+testNoteID+`","title":"groceries","content":"milk","createdAt":"2026-01-02T03:04:05Z"}`, rr.Body.String())
	})

	t.Run("missing title", func(t *testing.T) {
		env := newTestEnv(t, config.Relay{})
		env.expectValidToken()
		env.notes.EXPECT().CreateNote(gomock.Any(), gomock.Any()).
			Return(models.Note{}, errors.Join(service.ErrInvalidDataProvided, validators.ErrEmptyTitle))

		rr := env.do(t, http.MethodPost, "/notes", `{"content":"no title"}`, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"error":"Title is required"}`, rr.Body.String())
	})

	t.Run("bad json", func(t *testing.T) {
		env := newTestEnv(t, config.Relay{})
		env.expectValidToken()

		rr := env.do(t, http.MethodPost, "/notes", `{"title":`, true)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListNotes(t *testing.T) {
	t.Run("empty list is an array", func(t *testing.T) {
		env := newTestEnv(t, config.Relay{})
		env.expectValidToken()
		env.notes.EXPECT().ListNotes(gomock.Any(), testUserID).Return(nil, nil)

		rr := env.do(t, http.MethodGet, "/notes", nil, true)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("owner notes", func(t *testing.T) {
		env := newTestEnv(t, config.Relay{})
		env.expectValidToken()
		env.notes.EXPECT().ListNotes(gomock.Any(), testUserID).
			Return([]models.Note{{ID: "n1", OwnerID: testUserID, Title: "a"}, {ID: "n2", OwnerID: testUserID, Title: "b"}}, nil)

		rr := env.do(t, http.MethodGet, "/notes", nil, true)

		require.Equal(t, http.StatusOK, rr.Code)
		notes := decodeBody[[]map[string]any](t, rr)
		require.Len(t, notes, 2)
		assert.NotContains(t, notes[0], "ownerId")
		assert.NotContains(t, notes[0], "OwnerID")
	})

	t.Run("store error", func(t *testing.T) {
		env := newTestEnv(t, config.Relay{})
		env.expectValidToken()
		env.notes.EXPECT().ListNotes(gomock.Any(), testUserID).Return(nil, store.ErrScanningRows)

		rr := env.do(t, http.MethodGet, "/notes", nil, true)

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
	})
}

func TestGetNote(t *testing.T) {
	tests := []struct {
		name       string
		note       models.Note
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "found",
			note:       models.Note{ID: testNoteID, Title: "t", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
			wantStatus: http.StatusOK,
			wantBody:   `{"id":"` + testNoteID + `","title":"t","content":"","createdAt":"2026-01-01T00:00:00Z"}`,
		},
		{
			name:       "missing or not owned",
			err:        store.ErrNoteNotFound,
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":"Note not found"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Relay{})
			env.expectValidToken()
			env.notes.EXPECT().GetNote(gomock.Any(), testUserID, testNoteID).Return(tt.note, tt.err)

			rr := env.do(t, http.MethodGet, "/notes/"+testNoteID, nil, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestDeleteNote(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "deleted", wantStatus: http.StatusOK, wantBody: `{"message":"Note deleted successfully"}`},
		{name: "not found", err: store.ErrNoteNotFound, wantStatus: http.StatusNotFound, wantBody: `{"error":"Note not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Relay{})
			env.expectValidToken()
			env.notes.EXPECT().DeleteNote(gomock.Any(), testUserID, testNoteID).Return(tt.err)

			rr := env.do(t, http.MethodDelete, "/notes/"+testNoteID, nil, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestDeleteAllNotes(t *testing.T) {
	tests := []struct {
		name       string
		deleted    int64
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "several",
			deleted:    3,
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"All notes have been deleted successfully","deleted":3}`,
		},
		{
			name:       "none",
			wantStatus: http.StatusOK,
			wantBody:   `{"message":"All notes have been deleted successfully","deleted":0}`,
		},
		{
			name:       "store error",
			err:        store.ErrExecutingQuery,
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Internal Server Error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Relay{})
			env.expectValidToken()
			env.notes.EXPECT().DeleteAllNotes(gomock.Any(), testUserID).Return(tt.deleted, tt.err)

			rr := env.do(t, http.MethodDelete, "/notes", nil, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}
