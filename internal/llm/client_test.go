package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func chatHandler(t *testing.T, status int, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method: %s", r.Method)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}
}

func successBody(content string) string {
	resp := map[string]any{
		"choices": []map[string]any{
			{"message": map[string]string{"content": content}},
		},
	}
	b, _ := json.Marshal(resp)
	return string(b)
}

func TestClientComplete(t *testing.T) {
	var gotReq struct {
		Model    string `json:"model"`
		Messages []struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		} `json:"messages"`
		ResponseFormat struct {
			Type string `json:"type"`
		} `json:"response_format"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected auth header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(successBody(`{"suggestions": ["A."], "scores": [3]}`)))
	}))
	defer ts.Close()

	client := NewClient(ts.URL, "test-key", "gpt-4-turbo")
	defer client.Close()

	reply, err := client.Complete(context.Background(), "system directive", "user message")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if reply != `{"suggestions": ["A."], "scores": [3]}` {
		t.Errorf("unexpected reply: %q", reply)
	}

	if gotReq.Model != "gpt-4-turbo" {
		t.Errorf("unexpected model: %q", gotReq.Model)
	}
	if gotReq.ResponseFormat.Type != "json_object" {
		t.Errorf("expected json_object response format, got %q", gotReq.ResponseFormat.Type)
	}
	if len(gotReq.Messages) != 2 || gotReq.Messages[0].Role != "system" || gotReq.Messages[1].Role != "user" {
		t.Errorf("unexpected messages: %+v", gotReq.Messages)
	}

	if snap := client.Stats.Snapshot(); snap.Count != 1 {
		t.Errorf("expected 1 recorded latency sample, got %d", snap.Count)
	}
}

func TestClientRetryableStatuses(t *testing.T) {
	for _, status := range []int{http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable} {
		ts := httptest.NewServer(chatHandler(t, status, "overloaded"))

		client := NewClient(ts.URL, "k", "m")
		_, err := client.Complete(context.Background(), "s", "u")

		var retryErr *RetryableError
		if !errors.As(err, &retryErr) {
			t.Errorf("status %d: expected RetryableError, got %v", status, err)
		} else if retryErr.StatusCode != status {
			t.Errorf("expected status %d in error, got %d", status, retryErr.StatusCode)
		}

		client.Close()
		ts.Close()
	}
}

func TestClientNonRetryableStatus(t *testing.T) {
	ts := httptest.NewServer(chatHandler(t, http.StatusUnauthorized, "bad key"))
	defer ts.Close()

	client := NewClient(ts.URL, "k", "m")
	defer client.Close()

	_, err := client.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error")
	}
	var retryErr *RetryableError
	if errors.As(err, &retryErr) {
		t.Errorf("401 must not be retryable: %v", err)
	}
}

func TestClientAPIErrorObject(t *testing.T) {
	body := `{"error": {"type": "invalid_request_error", "message": "model not found"}}`
	ts := httptest.NewServer(chatHandler(t, http.StatusOK, body))
	defer ts.Close()

	client := NewClient(ts.URL, "k", "m")
	defer client.Close()

	_, err := client.Complete(context.Background(), "s", "u")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model not found") {
		t.Errorf("error should carry api message, got %q", err)
	}
}

func TestClientEmptyChoices(t *testing.T) {
	ts := httptest.NewServer(chatHandler(t, http.StatusOK, `{"choices": []}`))
	defer ts.Close()

	client := NewClient(ts.URL, "k", "m")
	defer client.Close()

	if _, err := client.Complete(context.Background(), "s", "u"); err == nil {
		t.Fatal("expected error for empty choices")
	}
	if snap := client.Stats.Snapshot(); snap.Count != 0 {
		t.Errorf("failed call must not record latency, got %d samples", snap.Count)
	}
}

func TestClientContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ts := httptest.NewServer(chatHandler(t, http.StatusOK, successBody("x")))
	defer ts.Close()

	client := NewClient(ts.URL, "k", "m")
	defer client.Close()

	if _, err := client.Complete(ctx, "s", "u"); err == nil {
		t.Fatal("expected error from canceled context")
	}
}
