package api_test

import (
	"fmt"
	"net/http"
	"testing"
)

func TestServices_CreateEmptyBodyDefaults(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	var created map[string]int64
	status := doJSON(t, ts, http.MethodPost, "/v1/services", `{}`, &created)
	if status != http.StatusCreated {
		t.Fatalf("create status: got %d want %d", status, http.StatusCreated)
	}
	if created["id"] <= 0 {
		t.Fatalf("expected store-assigned integer id, got %d", created["id"])
	}

	var got map[string]any
	doJSON(t, ts, http.MethodGet, fmt.Sprintf("/v1/services/%d", created["id"]), "", &got)
	if got["title"] != "" || got["seller"] != "" {
		t.Fatalf("expected empty title and seller by default, got %v", got)
	}
	if got["price"] != float64(0) || got["sold"] != float64(0) {
		t.Fatalf("expected zero numerics by default, got %v", got)
	}
	if got["is_verified"] != true || got["has_fast_response"] != true {
		t.Fatalf("expected verification flags true by default, got %v", got)
	}
	if got["category"] != nil {
		t.Fatalf("expected null category by default, got %v", got["category"])
	}
}

func TestServices_IDsIncrease(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	var first, second map[string]int64
	doJSON(t, ts, http.MethodPost, "/v1/services", `{"title":"Desain logo","price":50000}`, &first)
	doJSON(t, ts, http.MethodPost, "/v1/services", `{"title":"Les privat"}`, &second)
	if second["id"] <= first["id"] {
		t.Fatalf("expected increasing ids: %d then %d", first["id"], second["id"])
	}

	var list []map[string]any
	doJSON(t, ts, http.MethodGet, "/v1/services", "", &list)
	if len(list) != 2 || list[0]["title"] != "Les privat" {
		t.Fatalf("expected newest listing first: %v", list)
	}
}

func TestServices_InvalidIDIsBadRequest(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	var body map[string]string
	status := doJSON(t, ts, http.MethodGet, "/v1/services/abc", "", &body)
	if status != http.StatusBadRequest || body["error"] != "Invalid id" {
		t.Fatalf("non-numeric id: got status %d error %q", status, body["error"])
	}

	status = doJSON(t, ts, http.MethodPut, "/v1/services/abc", `{"title":"x"}`, &body)
	if status != http.StatusBadRequest {
		t.Fatalf("update with non-numeric id: got %d want %d", status, http.StatusBadRequest)
	}
}

func TestServices_GetMissReturnsEmptyObject(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	var body map[string]any
	status := doJSON(t, ts, http.MethodGet, "/v1/services/99999", "", &body)
	if status != http.StatusOK || len(body) != 0 {
		t.Fatalf("get miss: got status %d body %v", status, body)
	}
}

func TestServices_PartialUpdate(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	var created map[string]int64
	doJSON(t, ts, http.MethodPost, "/v1/services", `{"title":"Jasa ketik","seller":"Budi"}`, &created)
	path := fmt.Sprintf("/v1/services/%d", created["id"])

	var ok map[string]bool
	status := doJSON(t, ts, http.MethodPut, path, `{"sold":7,"category":"design"}`, &ok)
	if status != http.StatusOK || !ok["ok"] {
		t.Fatalf("update: got status %d body %v", status, ok)
	}

	var got map[string]any
	doJSON(t, ts, http.MethodGet, path, "", &got)
	if got["sold"] != float64(7) || got["category"] != "design" {
		t.Fatalf("patch not applied: %v", got)
	}
	if got["title"] != "Jasa ketik" || got["seller"] != "Budi" {
		t.Fatalf("untouched fields changed: %v", got)
	}
}

func TestServices_DeleteIdempotent(t *testing.T) {
	ts, cleanup := setupServer(t)
	defer cleanup()

	var created map[string]int64
	doJSON(t, ts, http.MethodPost, "/v1/services", `{"title":"x"}`, &created)
	path := fmt.Sprintf("/v1/services/%d", created["id"])

	for i := 0; i < 2; i++ {
		var ok map[string]bool
		status := doJSON(t, ts, http.MethodDelete, path, "", &ok)
		if status != http.StatusOK || !ok["ok"] {
			t.Fatalf("delete #%d: got status %d body %v", i+1, status, ok)
		}
	}
}
