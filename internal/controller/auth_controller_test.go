package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"formhub/internal/dto"
	"formhub/internal/service"
)

type stubAuthService struct {
	registerErr error
	loginErr    error
}

func (s *stubAuthService) Register(req dto.RegisterRequest) (*dto.UserResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &dto.UserResponse{ID: uuid.New(), Name: req.Name, Email: req.Email}, nil
}

func (s *stubAuthService) Login(req dto.LoginRequest) (*dto.UserResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &dto.UserResponse{ID: uuid.New(), Email: req.Email}, nil
}

func newAuthRouter(svc service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ctrl := NewAuthController(svc)
	r.POST("/auth/register", ctrl.Register)
	r.POST("/auth/login", ctrl.Login)
	return r
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshaling body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRegisterReturnsCreated(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	rec := postJSON(t, router, "/auth/register", dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter2"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp dto.AuthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.User.Email != "alice@example.com" {
		t.Errorf("unexpected user: %+v", resp.User)
	}
}

func TestRegisterRejectsMalformedBody(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	rec := postJSON(t, router, "/auth/register", map[string]string{"name": "Alice"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestRegisterDuplicateEmailMapsToConflict(t *testing.T) {
	router := newAuthRouter(&stubAuthService{registerErr: service.ErrConflict})

	rec := postJSON(t, router, "/auth/register", dto.RegisterRequest{Name: "Alice", Email: "alice@example.com", Password: "hunter2"})
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}

func TestLoginFailureMapsToUnauthorized(t *testing.T) {
	router := newAuthRouter(&stubAuthService{loginErr: service.ErrInvalidCredentials})

	rec := postJSON(t, router, "/auth/login", dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
