// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-ask-box/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	want := models.NewUserPrincipal("0190c6b4-6a8e-7c4b-9f6b-1d2e3f4a5b6c")
	ctx := WithPrincipal(context.Background(), want)

	got, ok := GetPrincipalFromContext(ctx)
	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	got, ok := GetPrincipalFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if got != (models.Principal{}) {
		t.Errorf("expected zero principal, got %+v", got)
	}
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "admin")
	if _, ok := GetPrincipalFromContext(ctx); ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}
