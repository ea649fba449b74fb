// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-ask-box/internal/config"
	"github.com/MKhiriev/go-ask-box/models"
)

const (
	adminID    = "0192a8f0-0000-7000-8000-000000000001"
	receiverID = "0192a8f0-0000-7000-8000-000000000002"
	askerID    = "0192a8f0-0000-7000-8000-000000000003"
	strangerID = "0192a8f0-0000-7000-8000-000000000004"
	questionID = "0192a8f0-0000-7000-8000-000000000005"
	newID      = "0192a8f0-0000-7000-8000-0000000000ff"
)

func testAppConfig() config.App {
	return config.App{
		PasswordHashKey:    "pepper",
		TokenSignKey:       "sign-key",
		TokenIssuer:        "go-ask-box-test",
		TokenDuration:      time.Hour,
		EmailTokenDuration: 24 * time.Hour,
		HashKey:            "digest-key",
		Version:            "1.0.0",
	}
}

// fixedIDs always hands out the same id.
type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

// ─────────────────────────────────────────────
// Mock: PermissionService
// ─────────────────────────────────────────────

type mockPermissionService struct {
	evaluateFn func(ctx context.Context, principal models.Principal, op models.Operation, target models.Resource) error
	calls      []models.Operation
}

func (m *mockPermissionService) Evaluate(ctx context.Context, principal models.Principal, op models.Operation, target models.Resource) error {
	m.calls = append(m.calls, op)
	if m.evaluateFn != nil {
		return m.evaluateFn(ctx, principal, op, target)
	}
	return nil
}

func allowAll() *mockPermissionService { return &mockPermissionService{} }

func denyAll() *mockPermissionService {
	return &mockPermissionService{
		evaluateFn: func(context.Context, models.Principal, models.Operation, models.Resource) error {
			return ErrUnauthorized
		},
	}
}

// ─────────────────────────────────────────────
// Mock: Pinger
// ─────────────────────────────────────────────

type stubPinger struct {
	storeErr error
	cacheErr error
}

func (s stubPinger) PingStore(context.Context) error { return s.storeErr }
func (s stubPinger) PingCache(context.Context) error { return s.cacheErr }

func askableUser(id, username string) models.User {
	return models.User{
		ID:               id,
		Username:         username,
		Email:            username + "@example.com",
		IsEmailConfirmed: true,
		Settings:         models.DefaultUserSettings(),
	}
}

func ptr[T any](v T) *T { return &v }
