// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/internal/logger"
	"github.com/MKhiriev/go-ask-box/internal/service"
	"github.com/MKhiriev/go-ask-box/models"
	"github.com/stretchr/testify/require"
)

const (
	testAdminID    = "0192a8f0-0000-7000-8000-000000000001"
	testUserID     = "0192a8f0-0000-7000-8000-000000000002"
	testQuestionID = "0192a8f0-0000-7000-8000-000000000005"
)

// newTestServices returns services that fail loudly when a test reaches a
// service it did not configure.
func newTestServices() *service.Services {
	return &service.Services{
		PrincipalResolver: resolveAs(models.Guest()),
		AdminService:      &mockAdminService{},
		UserService:       &mockUserService{},
		QuestionService:   &mockQuestionService{},
		AppInfoService:    &mockAppInfoService{version: "test-version"},
		HealthService:     &mockHealthService{status: models.HealthStatus{Status: service.HealthStatusOK, Store: "up", Cache: "up"}},
	}
}

func newTestRouter(t *testing.T, services *service.Services) http.Handler {
	t.Helper()
	return NewHandler(services, config.Server{}, logger.Nop()).Init()
}

// do sends a request through router with an optional JSON body and token.
func do(t *testing.T, router http.Handler, method, path, body, token string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set(authTokenHeader, token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeErrorResponse(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorDetail {
	t.Helper()

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	return resp.Errors[0]
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// errStopAtResolver is not mapped to any response kind, so it surfaces as an
// internal error.
var errStopAtResolver = errors.New("stop")
