package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/luciaferrante/roomvibe-backend/pkg/config"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(ctx context.Context) error {
	return s.err
}

func healthTestConfig() *config.Config {
	return &config.Config{App: config.AppConfig{Env: "development"}}
}

func TestHealthLive(t *testing.T) {
	rec := httptest.NewRecorder()
	HealthLive(healthTestConfig()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/live", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if got := rec.Header().Get("X-RoomVibe-Env"); got != "development" {
		t.Fatalf("missing env header, got %q", got)
	}
}

func TestHealthReady(t *testing.T) {
	handler := HealthReady(healthTestConfig(), nil, &stubPinger{}, &stubPinger{})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHealthReadyDependencyDown(t *testing.T) {
	handler := HealthReady(healthTestConfig(), nil, &stubPinger{err: errors.New("connection refused")}, &stubPinger{})
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", rec.Code)
	}
}
