package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/RafifFarandHariri/jasaku/api"
	"github.com/RafifFarandHariri/jasaku/pkg/repository/mock"
	"golang.org/x/crypto/bcrypt"
)

func TestSignup(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
	}{
		{
			name:       "valid request",
			body:       `{"nrp":"5025211001","nama":"Budi","email":"budi@example.com","password":"rahasia"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "nrp is optional",
			body:       `{"nama":"Budi","email":"budi@example.com","password":"rahasia"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing nama",
			body:       `{"email":"budi@example.com","password":"rahasia"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing email",
			body:       `{"nama":"Budi","password":"rahasia"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing password",
			body:       `{"nama":"Budi","email":"budi@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed json",
			body:       `{"nama":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "duplicate email",
			body:       `{"nama":"Budi","email":"budi@example.com","password":"rahasia"}`,
			createErr:  errors.New("UNIQUE constraint failed: users.email"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "store failure",
			body:       `{"nama":"Budi","email":"budi@example.com","password":"rahasia"}`,
			createErr:  errors.New("disk I/O error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			mocks.UserRepo.CreateErr = tt.createErr
			h := api.NewAuthHandler(mocks.UserRepo, "test-secret", time.Hour)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/signup", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Signup(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}

			if tt.wantStatus == http.StatusCreated {
				var resp struct {
					ID    int64  `json:"id"`
					Token string `json:"token"`
				}
				if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
					t.Fatalf("decode response: %v", err)
				}
				if resp.ID != 1 || resp.Token == "" {
					t.Fatalf("unexpected response: %+v", resp)
				}
				if mocks.UserRepo.Stored == nil {
					t.Fatalf("expected a stored user")
				}
				if mocks.UserRepo.Stored.PasswordHash == "rahasia" {
					t.Fatalf("password must be hashed before storage")
				}
				if mocks.UserRepo.Stored.Role == nil || *mocks.UserRepo.Stored.Role != "user" {
					t.Fatalf("expected default role user, got %v", mocks.UserRepo.Stored.Role)
				}
			}
		})
	}
}

func TestSignin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash fixture password: %v", err)
	}

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{
			name:       "valid credentials",
			body:       `{"email":"budi@example.com","password":"rahasia"}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "wrong password",
			body:       `{"email":"budi@example.com","password":"salah"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unknown email",
			body:       `{"email":"nobody@example.com","password":"rahasia"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing fields",
			body:       `{"email":"budi@example.com"}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := mock.NewMocks()
			h := api.NewAuthHandler(mocks.UserRepo, "test-secret", time.Hour)

			// seed the account through the handler, then fix the hash cost
			seed := httptest.NewRequest(http.MethodPost, "/v1/auth/signup",
				bytes.NewBufferString(`{"nama":"Budi","email":"budi@example.com","password":"rahasia"}`))
			h.Signup(httptest.NewRecorder(), seed)
			mocks.UserRepo.Stored.PasswordHash = string(hash)

			req := httptest.NewRequest(http.MethodPost, "/v1/auth/signin", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			h.Signin(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status: got %d want %d, body %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestMe(t *testing.T) {
	mocks := mock.NewMocks()
	h := api.NewAuthHandler(mocks.UserRepo, "test-secret", time.Hour)

	seed := httptest.NewRequest(http.MethodPost, "/v1/auth/signup",
		bytes.NewBufferString(`{"nama":"Budi","email":"budi@example.com","password":"rahasia"}`))
	h.Signup(httptest.NewRecorder(), seed)

	// no user id in context
	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("without claim: got %d want %d", rec.Code, http.StatusUnauthorized)
	}

	// with the claim the middleware would have set
	req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), api.CtxUserID, int64(1)))
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("with claim: got %d want %d, body %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var profile map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile["email"] != "budi@example.com" {
		t.Fatalf("unexpected profile: %v", profile)
	}
	if _, leaked := profile["password_hash"]; leaked {
		t.Fatalf("password hash must never serialize")
	}

	// unknown id
	req = httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
	req = req.WithContext(context.WithValue(req.Context(), api.CtxUserID, int64(99)))
	rec = httptest.NewRecorder()
	h.Me(rec, req)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("unknown id: got %d want %d", rec.Code, http.StatusNotFound)
	}
}

func TestAuthFlow_EndToEnd(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	var signup map[string]any
	status := doJSON(t, ts, http.MethodPost, "/v1/auth/signup",
		`{"nama":"Budi","email":"budi@example.com","password":"rahasia"}`, &signup)
	if status != http.StatusCreated {
		t.Fatalf("signup status: got %d want %d", status, http.StatusCreated)
	}
	token, _ := signup["token"].(string)
	if token == "" {
		t.Fatalf("expected a token from signup")
	}

	// duplicate signup conflicts
	status = doJSON(t, ts, http.MethodPost, "/v1/auth/signup",
		`{"nama":"Budi","email":"budi@example.com","password":"rahasia"}`, nil)
	if status != http.StatusConflict {
		t.Fatalf("duplicate signup: got %d want %d", status, http.StatusConflict)
	}

	// /me rejects requests without a token
	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/auth/me", nil)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("me without token: got %d want %d", resp.StatusCode, http.StatusUnauthorized)
	}

	// and accepts the signup token
	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = ts.Client().Do(req)
	if err != nil {
		t.Fatalf("me request failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("me with token: got %d want %d", resp.StatusCode, http.StatusOK)
	}
	var profile map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode profile: %v", err)
	}
	if profile["email"] != "budi@example.com" {
		t.Fatalf("unexpected profile: %v", profile)
	}

	// signin with the same credentials
	var signin map[string]any
	status = doJSON(t, ts, http.MethodPost, "/v1/auth/signin",
		`{"email":"budi@example.com","password":"rahasia"}`, &signin)
	if status != http.StatusOK {
		t.Fatalf("signin status: got %d want %d", status, http.StatusOK)
	}
	if tok, _ := signin["token"].(string); tok == "" {
		t.Fatalf("expected a token from signin")
	}

	// signout needs a valid token and always succeeds
	req, _ = http.NewRequest(http.MethodPost, ts.URL+"/v1/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = ts.Client().Do(req)
	if err != nil {
		t.Fatalf("signout request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("signout: got %d want %d", resp.StatusCode, http.StatusOK)
	}
}
