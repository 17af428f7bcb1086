package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"
)

// Message 一条聊天消息
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatRequest 发送给后端的请求体
type chatRequest struct {
	Messages []Message `json:"messages"`
}

// chatResponse 后端返回的响应体
type chatResponse struct {
	Result string `json:"result"`
}

// Client 聊天后端客户端
//
// 以 POST JSON 的形式把用户消息发送到后端的聊天端点，
// 并取回回复的 Markdown 文本。同一 Client 上的请求串行执行：
// 上一条请求未完成时不会发出第二条。
type Client struct {
	baseURL    string
	endpoint   string
	httpClient *http.Client

	mu sync.Mutex // 保证同一时刻最多一条在途请求
}

// ClientOption is a function that configures a Client.
type ClientOption func(*Client)

// WithHTTPClient sets a custom http.Client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithEndpoint overrides the chat endpoint path (default "/api/chat").
func WithEndpoint(path string) ClientOption {
	return func(c *Client) {
		c.endpoint = path
	}
}

// NewClient 创建指向 baseURL 的聊天客户端
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		endpoint: "/api/chat",
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Send 发送一条用户消息并返回后端回复的 Markdown
func (c *Client) Send(ctx context.Context, content string) (string, error) {
	return c.SendMessages(ctx, []Message{{Role: "user", Content: content}})
}

// SendMessages 发送完整的消息列表并返回后端回复的 Markdown
func (c *Client) SendMessages(ctx context.Context, messages []Message) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	body, err := json.Marshal(chatRequest{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("chat backend returned HTTP %d", resp.StatusCode)
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return parsed.Result, nil
}
