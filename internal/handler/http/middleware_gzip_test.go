// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/MKhiriev/go-ask-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gzipBytes(t *testing.T, data string) []byte {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(data))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return buf.Bytes()
}

func gunzipString(t *testing.T, data []byte) string {
	t.Helper()

	gz, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gz.Close()

	out, err := io.ReadAll(gz)
	require.NoError(t, err)
	return string(out)
}

// ─────────────────────────────────────────────
// middleware in isolation
// ─────────────────────────────────────────────

func TestGZip(t *testing.T) {
	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write(body)
	})

	tests := []struct {
		name            string
		body            []byte
		contentEncoding string
		acceptEncoding  string
		wantStatus      int
		wantEncoding    string
		wantBody        string
	}{
		{
			name:       "plain in plain out",
			body:       []byte(`{"text":"hi"}`),
			wantStatus: http.StatusCreated,
			wantBody:   `{"text":"hi"}`,
		},
		{
			name:            "gzip in plain out",
			body:            gzipBytes(t, `{"text":"hi"}`),
			contentEncoding: "gzip",
			wantStatus:      http.StatusCreated,
			wantBody:        `{"text":"hi"}`,
		},
		{
			name:           "plain in gzip out",
			body:           []byte(`{"text":"hi"}`),
			acceptEncoding: "gzip, deflate",
			wantStatus:     http.StatusCreated,
			wantEncoding:   "gzip",
			wantBody:       `{"text":"hi"}`,
		},
		{
			name:            "gzip in gzip out",
			body:            gzipBytes(t, `{"text":"hi"}`),
			contentEncoding: "gzip",
			acceptEncoding:  "gzip",
			wantStatus:      http.StatusCreated,
			wantEncoding:    "gzip",
			wantBody:        `{"text":"hi"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(tt.body))
			if tt.contentEncoding != "" {
				req.Header.Set("Content-Encoding", tt.contentEncoding)
			}
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()

			// Act
			withGZip(echo).ServeHTTP(rec, req)

			// Assert
			require.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantEncoding, rec.Header().Get("Content-Encoding"))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			got := rec.Body.String()
			if tt.wantEncoding == "gzip" {
				assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
				got = gunzipString(t, rec.Body.Bytes())
			}
			assert.Equal(t, tt.wantBody, got)
		})
	}
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	// Arrange
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	withGZip(next).ServeHTTP(rec, req)

	// Assert
	assert.False(t, called)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeErrorResponse(t, rec)
	assert.Equal(t, kindValidation, detail.Kind)
}

func TestGZip_EmptyResponseIsNotCompressed(t *testing.T) {
	// Arrange
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	withGZip(next).ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_CompressionRatio(t *testing.T) {
	// Arrange
	payload := strings.Repeat(`{"text":"what is your favourite colour?","answer":""},`, 200)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	withGZip(next).ServeHTTP(rec, req)

	// Assert
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Less(t, rec.Body.Len(), len(payload)/10)
	assert.Equal(t, payload, gunzipString(t, rec.Body.Bytes()))
}

func TestGZip_ConcurrentRequests(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		w.Write(body)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			body := strings.Repeat("x", 100+i)
			req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(gzipBytes(t, body)))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, body, gunzipString(t, rec.Body.Bytes()))
		}()
	}
	wg.Wait()
}

// ─────────────────────────────────────────────
// through the router
// ─────────────────────────────────────────────

func TestGZip_RouterCompressesJSON(t *testing.T) {
	// Arrange
	services := newTestServices()
	services.QuestionService = &mockQuestionService{
		listByUsernameFn: func(_ context.Context, _ string) ([]models.QuestionView, error) {
			return []models.QuestionView{}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/questions/user/alice", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	newTestRouter(t, services).ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, "[]", gunzipString(t, rec.Body.Bytes()))
}

func TestGZip_RouterInflatesRequest(t *testing.T) {
	// Arrange
	var gotReq models.AskRequest
	services := newTestServices()
	services.QuestionService = &mockQuestionService{
		askFn: func(_ context.Context, _ models.Principal, req models.AskRequest) error {
			gotReq = req
			return nil
		},
	}
	body := gzipBytes(t, `{"text":"why?","to_user":"`+testUserID+`"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/questions/", bytes.NewReader(body))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	// Act
	newTestRouter(t, services).ServeHTTP(rec, req)

	// Assert
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "why?", gotReq.Text)
	assert.Equal(t, testUserID, gotReq.ToUser)
}
