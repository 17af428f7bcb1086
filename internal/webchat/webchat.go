// Package webchat 提供聊天挂件的 HTTP 服务端胶水层。
//
// GET / 返回内嵌的聊天页面，POST /api/chat 接收消息列表、调用
// Responder 取得回复 Markdown，转换并消毒为 HTML 后随响应返回。
// 页面收到的 html 字段可以直接插入 DOM：转换核心保证所有
// 不可信文本都已转义，服务端再用 bluemonday 策略兜底过滤一次。
package webchat

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"

	chatbot "github.com/Raqanzaa/gemini-chatbot-api"
)

//go:embed index.html
var indexHTML []byte

// Responder 为一组消息生成回复 Markdown（LLM 后端接缝）
type Responder interface {
	Reply(ctx context.Context, messages []chatbot.Message) (string, error)
}

// ResponderFunc 把普通函数适配为 Responder
type ResponderFunc func(ctx context.Context, messages []chatbot.Message) (string, error)

// Reply calls the underlying function.
func (f ResponderFunc) Reply(ctx context.Context, messages []chatbot.Message) (string, error) {
	return f(ctx, messages)
}

// Server 聊天挂件服务端
type Server struct {
	responder Responder
	config    *chatbot.RenderConfig
	mux       *http.ServeMux
}

// NewServer 创建服务端；config 为 nil 时使用默认渲染配置。
func NewServer(responder Responder, config *chatbot.RenderConfig) *Server {
	s := &Server{
		responder: responder,
		config:    config,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/chat", s.handleChat)
	s.mux = mux
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

type chatRequest struct {
	Messages []chatbot.Message `json:"messages"`
}

type chatResponse struct {
	Result string `json:"result"`
	HTML   string `json:"html"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
		return
	}

	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "messages must not be empty"})
		return
	}

	reply, err := s.responder.Reply(r.Context(), req.Messages)
	if err != nil {
		chatbot.Logger.Printf("responder failed: %v", err)
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: "chat backend unavailable"})
		return
	}

	html := chatbot.Sanitize(chatbot.Convert(reply, s.config))
	writeJSON(w, http.StatusOK, chatResponse{Result: reply, HTML: html})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		chatbot.Logger.Printf("write response failed: %v", err)
	}
}
