package insight

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func makeTestServer(t *testing.T, statusCode int, body any) (*httptest.Server, *http.Client) {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		if err := json.NewEncoder(w).Encode(body); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, srv.Client()
}

func chatReply(content string) chatResponse {
	var resp chatResponse
	resp.Choices = make([]struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	}, 1)
	resp.Choices[0].Message.Content = content
	return resp
}

func TestGroqComplete_Success(t *testing.T) {
	srv, client := makeTestServer(t, http.StatusOK, chatReply("the market is steady"))

	provider := NewGroqProvider(srv.URL, "test-key", "test-model", 0.4, client)
	got, err := provider.Complete(context.Background(), Prompt{System: "sys", User: "summarize"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "the market is steady" {
		t.Errorf("got %q", got)
	}
}

func TestGroqComplete_RateLimited(t *testing.T) {
	srv, client := makeTestServer(t, http.StatusTooManyRequests, map[string]string{"error": "rate limited"})

	provider := NewGroqProvider(srv.URL, "test-key", "test-model", 0.4, client)
	_, err := provider.Complete(context.Background(), Prompt{User: "x"})
	if err == nil {
		t.Fatal("expected error on 429 response")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error %q should mention the status", err)
	}
}

func TestGroqComplete_HTTPError(t *testing.T) {
	srv, client := makeTestServer(t, http.StatusInternalServerError, map[string]string{"error": "server error"})

	provider := NewGroqProvider(srv.URL, "test-key", "test-model", 0.4, client)
	if _, err := provider.Complete(context.Background(), Prompt{User: "x"}); err == nil {
		t.Fatal("expected error on 5xx response")
	}
}

func TestGroqComplete_EmptyChoices(t *testing.T) {
	srv, client := makeTestServer(t, http.StatusOK, chatResponse{})

	provider := NewGroqProvider(srv.URL, "test-key", "test-model", 0.4, client)
	if _, err := provider.Complete(context.Background(), Prompt{User: "x"}); err == nil {
		t.Fatal("expected error when the API returns no choices")
	}
}

func TestGroqComplete_RequestShape(t *testing.T) {
	var gotAuth string
	var gotBody chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(chatReply("{}")); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)

	provider := NewGroqProvider(srv.URL, "secret-key", "llama-3.3-70b-versatile", 0.4, srv.Client())
	_, err := provider.Complete(context.Background(), Prompt{
		System: "sys", User: "user text", MaxTokens: 512, JSONMode: true,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotAuth != "Bearer secret-key" {
		t.Errorf("auth header = %q", gotAuth)
	}
	if gotBody.Model != "llama-3.3-70b-versatile" {
		t.Errorf("model = %q", gotBody.Model)
	}
	if gotBody.Temperature != 0.4 {
		t.Errorf("temperature = %v, want 0.4", gotBody.Temperature)
	}
	if gotBody.ResponseFormat == nil || gotBody.ResponseFormat.Type != "json_object" {
		t.Errorf("response_format = %+v, want json_object", gotBody.ResponseFormat)
	}
	if len(gotBody.Messages) != 2 || gotBody.Messages[0].Role != "system" || gotBody.Messages[1].Content != "user text" {
		t.Errorf("messages = %+v", gotBody.Messages)
	}
}
