// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The boodschapp authors

package utils

import (
	"context"
	"testing"

	"github.com/jvreeken/boodschapp/models"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetUserFromContext_Success(t *testing.T) {
	want := models.User{UserID: "abc", Name: "Erin", Email: "erin@me.com"}
	ctx := context.WithValue(context.Background(), UserCtxKey, want)

	user, ok := GetUserFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if user.UserID != want.UserID || user.Email != want.Email {
		t.Errorf("expected user %+v, got %+v", want, user)
	}
}

func TestGetUserFromContext_Missing(t *testing.T) {
	user, ok := GetUserFromContext(context.Background())

	if ok {
		t.Fatal("expected ok=false, got true")
	}
	if user.UserID != "" {
		t.Errorf("expected zero user, got %+v", user)
	}
}

func TestGetUserFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserCtxKey, "not-a-user")

	_, ok := GetUserFromContext(ctx)
	if ok {
		t.Fatal("expected ok=false for wrong type, got true")
	}
}

func TestGetTokenFromContext_Success(t *testing.T) {
	ctx := context.WithValue(context.Background(), TokenCtxKey, "raw-token")

	token, ok := GetTokenFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if token != "raw-token" {
		t.Errorf("expected 'raw-token', got '%s'", token)
	}
}

func TestGetTokenFromContext_Missing(t *testing.T) {
	_, ok := GetTokenFromContext(context.Background())
	if ok {
		t.Fatal("expected ok=false, got true")
	}
}
