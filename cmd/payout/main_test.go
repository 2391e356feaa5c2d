package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"admin/internal/affiliate"
	"admin/internal/domain"
)

func newClient(t *testing.T, h http.HandlerFunc) *affiliate.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	client, err := affiliate.NewClient(affiliate.Options{BaseURL: srv.URL + "/api"})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestRunListsWithdrawals(t *testing.T) {
	var query string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 200, "data": map[string]any{
			"items": []map[string]any{{"id": "w-1", "user_name": "Budi", "amount": 150000, "bank_name": "BCA", "account_number": "0123", "status": "pending", "created_at": "2024-05-02T00:00:00Z"}},
			"total": 1, "page": 1, "limit": 10, "total_pages": 1,
		}})
	})

	var out bytes.Buffer
	err := run(context.Background(), client, options{list: true, status: "pending", page: 1, limit: 10}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(query, "status=pending") {
		t.Fatalf("query = %q", query)
	}
	for _, want := range []string{"w-1", "Budi", "Rp 150.000", "2/5/2024", "page 1 of 1 (1 total)"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q:\n%s", want, out.String())
		}
	}
}

func TestRunProcessesWithdrawal(t *testing.T) {
	var method, path string
	var body map[string]any
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &body)
		_, _ = w.Write([]byte(`{"code":200,"data":null,"message":"ok"}`))
	})

	var out bytes.Buffer
	err := run(context.Background(), client, options{id: "w-1", action: "reject", reason: "Invalid account"}, &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if method != http.MethodPut || path != "/api/admin/withdrawals/w-1/process" {
		t.Fatalf("request = %s %s", method, path)
	}
	if body["status"] != "rejected" || body["rejection_reason"] != "Invalid account" {
		t.Fatalf("body = %v", body)
	}
	if got := out.String(); got != "Withdrawal w-1 rejected successfully\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRunValidatesBeforeCallingAPI(t *testing.T) {
	called := false
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	err := run(context.Background(), client, options{id: "w-1", action: "complete"}, io.Discard)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("err = %v", err)
	}
	if err := run(context.Background(), client, options{}, io.Discard); err == nil {
		t.Fatal("missing mode should fail")
	}
	if called {
		t.Fatal("API must not be called for invalid input")
	}
}

func TestRunRejectsBadListFlags(t *testing.T) {
	called := false
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	tests := []options{
		{list: true, status: "pendng", page: 1, limit: 10},
		{list: true, status: "pending", page: 0, limit: 10},
	}
	for _, opts := range tests {
		if err := run(context.Background(), client, opts, io.Discard); !errors.Is(err, domain.ErrInvalidInput) {
			t.Fatalf("run(%+v) err = %v, want ErrInvalidInput", opts, err)
		}
	}
	if called {
		t.Fatal("API must not be called for invalid flags")
	}
}

func TestRunListsAllStatuses(t *testing.T) {
	var query string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{"code": 200, "data": map[string]any{"items": []any{}, "total": 0}})
	})

	if err := run(context.Background(), client, options{list: true, status: "all", page: 1, limit: 10}, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(query, "status=") {
		t.Fatalf("query = %q, want no status filter", query)
	}
}
