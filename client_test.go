package chatbot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

// TestClient_Send 测试请求与响应的 JSON 格式
func TestClient_Send(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %s, want /api/chat", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", ct)
		}

		var req struct {
			Messages []Message `json:"messages"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("request decode error = %v", err)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" || req.Messages[0].Content != "hi" {
			t.Errorf("messages = %+v, want single user message", req.Messages)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"result": "**hello**"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	reply, err := client.Send(context.Background(), "hi")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if reply != "**hello**" {
		t.Errorf("Send() = %q, want %q", reply, "**hello**")
	}
}

// TestClient_CustomEndpoint 测试自定义端点路径
func TestClient_CustomEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/ask" {
			t.Errorf("path = %s, want /v1/ask", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{"result": "ok"})
	}))
	defer server.Close()

	client := NewClient(server.URL, WithEndpoint("/v1/ask"))
	if _, err := client.Send(context.Background(), "hi"); err != nil {
		t.Fatalf("Send() error = %v", err)
	}
}

// TestClient_NonOKStatus 测试非 200 状态返回错误
func TestClient_NonOKStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Send(context.Background(), "hi"); err == nil {
		t.Error("Send() should fail on HTTP 500")
	}
}

// TestClient_MalformedResponse 测试畸形响应体返回错误
func TestClient_MalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("{not json"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Send(context.Background(), "hi"); err == nil {
		t.Error("Send() should fail on malformed JSON")
	}
}

// TestClient_ContextCancelled 测试上下文取消
func TestClient_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"result": "late"})
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	if _, err := client.Send(ctx, "hi"); err == nil {
		t.Error("Send() with cancelled context should fail")
	}
}
