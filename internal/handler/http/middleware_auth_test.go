// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		parseErr   error
		parseToken string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid token",
			header:     "Bearer good",
			parseToken: "good",
			wantStatus: http.StatusOK,
		},
		{
			name:       "scheme is case-insensitive",
			header:     "bearer good",
			parseToken: "good",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"missing ` + "`Authorization`" + ` header"}`,
		},
		{
			name:       "no token after scheme",
			header:     "Bearer ",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid ` + "`Authorization`" + ` header"}`,
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"invalid ` + "`Authorization`" + ` header"}`,
		},
		{
			name:       "expired",
			header:     "Bearer old",
			parseToken: "old",
			parseErr:   service.ErrTokenIsExpired,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"token is expired"}`,
		},
		{
			name:       "bad signature",
			header:     "Bearer forged",
			parseToken: "forged",
			parseErr:   service.ErrTokenIsInvalid,
			wantStatus: http.StatusUnauthorized,
			wantBody:   `{"error":"token is invalid"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, config.Relay{})
			if tt.parseToken != "" {
				env.auth.EXPECT().ParseToken(gomock.Any(), tt.parseToken).Return(models.Token{UserID: testUserID}, tt.parseErr)
			}

			var seenUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seenUser, _ = utils.GetUserIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/notes", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			env.handler.auth(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, testUserID, seenUser)
				return
			}
			assert.Empty(t, seenUser)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestOwnerFromRequest_WithoutAuth(t *testing.T) {
	_, err := ownerFromRequest(httptest.NewRequest(http.MethodGet, "/notes", nil))
	assert.ErrorIs(t, err, ErrNoUserInContext)
}
