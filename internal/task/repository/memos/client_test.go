package memos_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"task-portal/internal/task/repository/memos"
)

func TestMemosClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/memos", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if r.Method == http.MethodPost {
			var req memos.CreateMemoRequest
			json.NewDecoder(r.Body).Decode(&req)
			m := memos.Memo{Name: "memos/uid-1", UID: "uid-1", Content: req.Content, Visibility: req.Visibility}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(m)
			return
		}
		if r.Method == http.MethodGet {
			if r.URL.Query().Get("pageSize") != "1" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]interface{}{"memos": []memos.Memo{}})
			return
		}
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := memos.NewClient(ts.URL, "test-token")
	ctx := context.Background()

	t.Run("CreateMemo", func(t *testing.T) {
		res, err := client.CreateMemo(ctx, memos.CreateMemoRequest{Content: "Hello", Visibility: "PRIVATE"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.UID != "uid-1" || res.Content != "Hello" {
			t.Errorf("unexpected memo response: %+v", res)
		}
	})

	t.Run("Ping", func(t *testing.T) {
		if err := client.Ping(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Bad token", func(t *testing.T) {
		bad := memos.NewClient(ts.URL, "wrong")
		_, err := bad.CreateMemo(ctx, memos.CreateMemoRequest{Content: "Hello"})
		var apiErr *memos.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected 401 APIError, got %v", err)
		}
	})

	// Server Down
	t.Run("Server Down", func(t *testing.T) {
		badClient := memos.NewClient("http://localhost:59999", "token")
		if err := badClient.Ping(ctx); err == nil {
			t.Errorf("expected connection refused error")
		}
	})
}
