package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/ridenow/user-service/internal/api/handler"
	"github.com/ridenow/user-service/internal/core/domain"
)

type stubUserService struct {
	createErr error
	getErr    error
	users     map[string]domain.UserRecord
}

func (s *stubUserService) CreateUser(_ context.Context, user domain.UserRecord) (*domain.UserRecord, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &user, nil
}

func (s *stubUserService) GetUser(_ context.Context, id string) (*domain.UserRecord, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func newTestRouter(svc *stubUserService) http.Handler {
	return NewRouter(Deps{
		Users:      svc,
		Readiness:  map[string]handler.Dependency{},
		Logger:     zerolog.Nop(),
		Registerer: prometheus.NewRegistry(),
	})
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) (int, string) {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp errorResponse
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	return rec.Code, resp.Error
}

func TestRouter_ErrorContract(t *testing.T) {
	const validBody = `{"id":"u1","name":"Alice","role":"rider"}`

	cases := []struct {
		name     string
		svc      *stubUserService
		method   string
		path     string
		body     string
		wantCode int
		wantMsg  string
	}{
		{"cache duplicate", &stubUserService{createErr: domain.ErrAlreadyExists},
			http.MethodPost, "/users", validBody, http.StatusBadRequest, "User already exists"},
		{"store duplicate", &stubUserService{createErr: domain.ErrAlreadyExistsInStore},
			http.MethodPost, "/users", validBody, http.StatusBadRequest, "User already exists in DB"},
		{"invalid user", &stubUserService{createErr: &domain.ValidationError{Field: "id", Reason: "must not contain whitespace"}},
			http.MethodPost, "/users", validBody, http.StatusUnprocessableEntity, "id must not contain whitespace"},
		{"bad json", &stubUserService{},
			http.MethodPost, "/users", "{", http.StatusBadRequest, "invalid payload"},
		{"store down on create", &stubUserService{createErr: domain.NewBackendError("mongo", "find user", errors.New("timeout"))},
			http.MethodPost, "/users", validBody, http.StatusServiceUnavailable, "Service unavailable"},
		{"not found", &stubUserService{},
			http.MethodGet, "/users/ghost", "", http.StatusNotFound, "User not found"},
		{"unexpected", &stubUserService{getErr: errors.New("boom")},
			http.MethodGet, "/users/u1", "", http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, msg := doRequest(t, newTestRouter(tc.svc), tc.method, tc.path, tc.body)
			if code != tc.wantCode {
				t.Errorf("expected %d, got %d", tc.wantCode, code)
			}
			if msg != tc.wantMsg {
				t.Errorf("expected message %q, got %q", tc.wantMsg, msg)
			}
		})
	}
}

func TestRouter_CreateAndGet(t *testing.T) {
	svc := &stubUserService{users: map[string]domain.UserRecord{
		"u1": {ID: "u1", Name: "Alice", Role: "rider"},
	}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(`{"id":"u2","name":"Bob","role":"driver"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/users/u1", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got domain.UserRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got != svc.users["u1"] {
		t.Fatalf("unexpected user: %+v", got)
	}
}

func TestRouter_OperationalRoutes(t *testing.T) {
	router := newTestRouter(&stubUserService{})

	for _, path := range []string{"/health", "/health/ready", "/metrics"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: expected 200, got %d", path, rec.Code)
		}
	}
}
