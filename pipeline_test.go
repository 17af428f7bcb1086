package chatbot

import (
	"context"
	"strings"
	"testing"
)

// TestProcessMarkdown_TextOnly 测试纯文本回复产生单个 HTML 片段
func TestProcessMarkdown_TextOnly(t *testing.T) {
	contents, err := ProcessMarkdown(context.Background(), "# Hi\n\nhello", nil)
	if err != nil {
		t.Fatalf("ProcessMarkdown() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	h, ok := contents[0].(*HTML)
	if !ok {
		t.Fatalf("contents[0] = %T, want *HTML", contents[0])
	}
	if !strings.Contains(h.Markup, "<h1>Hi</h1>") {
		t.Errorf("markup = %q, want heading", h.Markup)
	}
}

// TestProcessMarkdown_SmallCodeInline 测试小代码块内联渲染
func TestProcessMarkdown_SmallCodeInline(t *testing.T) {
	contents, err := ProcessMarkdown(context.Background(), "```go\nx := 1\n```", nil)
	if err != nil {
		t.Fatalf("ProcessMarkdown() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	h, ok := contents[0].(*HTML)
	if !ok {
		t.Fatalf("contents[0] = %T, want *HTML", contents[0])
	}
	if !strings.Contains(h.Markup, `<pre><code class="language-go">`) {
		t.Errorf("markup = %q, want inline code block", h.Markup)
	}
}

// TestProcessMarkdown_LargeCodeExtracted 测试超阈值代码块提取为附件
func TestProcessMarkdown_LargeCodeExtracted(t *testing.T) {
	code := strings.Repeat("line\n", 5)
	input := "before\n```go\n" + code + "```\nafter"

	contents, err := Chatbotify(context.Background(), input, WithAttachmentLineLimit(3))
	if err != nil {
		t.Fatalf("Chatbotify() error = %v", err)
	}
	if len(contents) != 3 {
		t.Fatalf("contents = %d, want 3 (html, attachment, html)", len(contents))
	}

	if _, ok := contents[0].(*HTML); !ok {
		t.Errorf("contents[0] = %T, want *HTML", contents[0])
	}
	att, ok := contents[1].(*Attachment)
	if !ok {
		t.Fatalf("contents[1] = %T, want *Attachment", contents[1])
	}
	if att.Language != "go" {
		t.Errorf("attachment language = %q, want go", att.Language)
	}
	if !strings.HasSuffix(att.FileName, ".go") {
		t.Errorf("attachment filename = %q, want .go suffix", att.FileName)
	}
	if string(att.FileData) != strings.TrimSpace(code) {
		t.Errorf("attachment data = %q", att.FileData)
	}
	if _, ok := contents[2].(*HTML); !ok {
		t.Errorf("contents[2] = %T, want *HTML", contents[2])
	}
}

// TestProcessMarkdown_DefaultLimitKeepsMediumCode 测试默认阈值下中等代码仍内联
func TestProcessMarkdown_DefaultLimitKeepsMediumCode(t *testing.T) {
	code := strings.Repeat("line\n", 20)
	contents, err := ProcessMarkdown(context.Background(), "```\n"+code+"```", nil)
	if err != nil {
		t.Fatalf("ProcessMarkdown() error = %v", err)
	}
	if len(contents) != 1 {
		t.Fatalf("contents = %d, want 1", len(contents))
	}
	if _, ok := contents[0].(*HTML); !ok {
		t.Errorf("contents[0] = %T, want *HTML", contents[0])
	}
}

// TestProcessMarkdown_Mermaid 测试 mermaid 图表提取为附件
func TestProcessMarkdown_Mermaid(t *testing.T) {
	input := "diagram:\n```mermaid\ngraph LR\n  A-->B\n```"
	contents, err := ProcessMarkdown(context.Background(), input, nil)
	if err != nil {
		t.Fatalf("ProcessMarkdown() error = %v", err)
	}
	if len(contents) != 2 {
		t.Fatalf("contents = %d, want 2", len(contents))
	}

	att, ok := contents[1].(*Attachment)
	if !ok {
		t.Fatalf("contents[1] = %T, want *Attachment", contents[1])
	}
	if att.FileName != "diagram.mmd" {
		t.Errorf("filename = %q, want diagram.mmd", att.FileName)
	}
	trace := att.GetContentTrace()
	if trace.SourceType != SourceTypeMermaid {
		t.Errorf("source type = %q, want %q", trace.SourceType, SourceTypeMermaid)
	}
	liveURL, _ := trace.Extra["live_url"].(string)
	if !strings.HasPrefix(liveURL, "https://mermaid.live/edit/#pako:") {
		t.Errorf("live_url = %q, want mermaid.live link", liveURL)
	}
}

// TestProcessMarkdown_ContextCancelled 测试已取消的上下文
func TestProcessMarkdown_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ProcessMarkdown(ctx, "hello", nil); err == nil {
		t.Error("ProcessMarkdown() with cancelled context should fail")
	}
}

// TestContentType_String 测试内容类型的字符串表示
func TestContentType_String(t *testing.T) {
	if ContentTypeHTML.String() != "html" {
		t.Errorf("ContentTypeHTML = %q", ContentTypeHTML.String())
	}
	if ContentTypeAttachment.String() != "attachment" {
		t.Errorf("ContentTypeAttachment = %q", ContentTypeAttachment.String())
	}
	if ContentType(42).String() != "unknown" {
		t.Errorf("ContentType(42) = %q", ContentType(42).String())
	}
	if ContentTypeHTML.String() == ContentTypeAttachment.String() {
		t.Error("content types must be distinct")
	}
}

// TestHTMLContent_Interface 测试 Content 接口实现
func TestHTMLContent_Interface(t *testing.T) {
	var c Content = &HTML{Markup: "<p>x</p>", ContentTrace: ContentTrace{SourceType: "html"}}
	if c.GetContentType() != ContentTypeHTML {
		t.Errorf("GetContentType() = %v", c.GetContentType())
	}
	if c.GetContentTrace().SourceType != "html" {
		t.Errorf("GetContentTrace() = %+v", c.GetContentTrace())
	}

	c = &Attachment{FileName: "a.go"}
	if c.GetContentType() != ContentTypeAttachment {
		t.Errorf("GetContentType() = %v", c.GetContentType())
	}
}
