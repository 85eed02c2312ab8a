package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	entitlementsvc "github.com/afromanapp/afroman-backend/internal/entitlement"
	"github.com/afromanapp/afroman-backend/pkg/enums"
)

type stubEntitlementService struct {
	loadFn    func(ctx context.Context, deviceID string) (entitlementsvc.Session, error)
	loginFn   func(ctx context.Context, deviceID string, user entitlementsvc.User) (entitlementsvc.Session, error)
	logoutFn  func(ctx context.Context, deviceID string) error
	refreshFn func(ctx context.Context, deviceID string) (entitlementsvc.Session, error)
}

func (s stubEntitlementService) LoadUser(ctx context.Context, deviceID string) (entitlementsvc.Session, error) {
	if s.loadFn != nil {
		return s.loadFn(ctx, deviceID)
	}
	return entitlementsvc.Session{}, nil
}

func (s stubEntitlementService) Login(ctx context.Context, deviceID string, user entitlementsvc.User) (entitlementsvc.Session, error) {
	if s.loginFn != nil {
		return s.loginFn(ctx, deviceID, user)
	}
	return entitlementsvc.Session{}, nil
}

func (s stubEntitlementService) Logout(ctx context.Context, deviceID string) error {
	if s.logoutFn != nil {
		return s.logoutFn(ctx, deviceID)
	}
	return nil
}

func (s stubEntitlementService) Refresh(ctx context.Context, deviceID string) (entitlementsvc.Session, error) {
	if s.refreshFn != nil {
		return s.refreshFn(ctx, deviceID)
	}
	return entitlementsvc.Session{}, nil
}

func (s stubEntitlementService) CheckSubscription(ctx context.Context, userID string) entitlementsvc.Status {
	return entitlementsvc.Status{}
}

func TestSessionFetchUnauthenticated(t *testing.T) {
	handler := SessionFetch(stubEntitlementService{loadFn: func(ctx context.Context, deviceID string) (entitlementsvc.Session, error) {
		return entitlementsvc.Session{State: enums.EntitlementStateUnauthenticated}, nil
	}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, deviceRequest(http.MethodGet, "/api/v1/session", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data entitlementsvc.Session `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.State != enums.EntitlementStateUnauthenticated {
		t.Fatalf("unexpected state %s", envelope.Data.State)
	}
	if envelope.Data.User != nil {
		t.Fatalf("expected no user, got %+v", envelope.Data.User)
	}
}

func TestSessionLoginForwardsIdentity(t *testing.T) {
	var gotUser entitlementsvc.User
	handler := SessionLogin(stubEntitlementService{loginFn: func(ctx context.Context, deviceID string, user entitlementsvc.User) (entitlementsvc.Session, error) {
		gotUser = user
		return entitlementsvc.Session{User: &user, State: enums.EntitlementStateNoSubscription}, nil
	}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, deviceRequest(http.MethodPost, "/api/v1/session/login",
		`{"id":"user-1","email":"fan@afroman.example","has_subscription":true}`))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if gotUser.ID != "user-1" || gotUser.Email != "fan@afroman.example" {
		t.Fatalf("unexpected user %+v", gotUser)
	}
}

func TestSessionLoginValidatesPayload(t *testing.T) {
	handler := SessionLogin(stubEntitlementService{loginFn: func(ctx context.Context, deviceID string, user entitlementsvc.User) (entitlementsvc.Session, error) {
		t.Fatal("service should not run for an invalid payload")
		return entitlementsvc.Session{}, nil
	}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, deviceRequest(http.MethodPost, "/api/v1/session/login", `{"email":"not-an-email"}`))

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestSessionLogout(t *testing.T) {
	var loggedOut bool
	handler := SessionLogout(stubEntitlementService{logoutFn: func(ctx context.Context, deviceID string) error {
		loggedOut = true
		return nil
	}}, nil)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, deviceRequest(http.MethodDelete, "/api/v1/session", ""))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !loggedOut {
		t.Fatal("expected logout to reach the service")
	}
}
