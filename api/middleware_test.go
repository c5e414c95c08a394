package api_test

import (
	"net/http"
	"testing"
)

func TestRequestIDEcho(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if got := resp.Header.Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected client id echoed back, got %q", got)
	}

	// without a client id, one is generated
	req, _ = http.NewRequest(http.MethodGet, ts.URL+"/health", nil)
	resp, err = ts.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatalf("expected a generated request id header")
	}
}

func TestCORSPreflight(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodOptions, ts.URL+"/v1/chats", nil)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("preflight failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("preflight status: got %d want %d", resp.StatusCode, http.StatusNoContent)
	}
}

func TestCORSHeaders(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/chats", nil)
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Fatalf("missing CORS allow-origin header")
	}
	if resp.Header.Get("Access-Control-Allow-Methods") == "" {
		t.Fatalf("missing CORS allow-methods header")
	}
}

func TestProtectedRouteRejectsBadToken(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	req, _ := http.NewRequest(http.MethodGet, ts.URL+"/v1/auth/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	resp, err := ts.Client().Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("bad token: got %d want %d", resp.StatusCode, http.StatusUnauthorized)
	}
}
