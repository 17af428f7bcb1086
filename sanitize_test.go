package chatbot

import (
	"strings"
	"testing"
)

// TestSanitize_PassesConverterOutput 测试转换器输出经过策略后内容保留
func TestSanitize_PassesConverterOutput(t *testing.T) {
	inputs := []string{
		"# Title\n\n**bold** and *italic* and `code`",
		"- a\n- b\n\n1. c\n2. d",
		"```go\nx := 1 < 2\n```",
		"---\n\npara1\npara2",
	}
	for _, input := range inputs {
		rendered := Convert(input, nil)
		sanitized := Sanitize(rendered)
		// 策略允许转换器产生的全部元素，标签结构应当保留
		for _, tag := range []string{"<h1>", "<strong>", "<em>", "<code", "<ul>", "<ol>", "<li>", "<pre>", "<hr", "<p>"} {
			if strings.Contains(rendered, tag) && !strings.Contains(sanitized, tag) {
				t.Errorf("Sanitize() stripped %q from %q", tag, rendered)
			}
		}
	}
}

// TestSanitize_KeepsLanguageClass 测试语言 class 被放行
func TestSanitize_KeepsLanguageClass(t *testing.T) {
	sanitized := Sanitize(Convert("```go\nx\n```", nil))
	if !strings.Contains(sanitized, `class="language-go"`) {
		t.Errorf("Sanitize() = %q, want language class kept", sanitized)
	}
}

// TestSanitize_StripsForeignMarkup 测试越出元素集的标记被剥离
func TestSanitize_StripsForeignMarkup(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		excluded string
	}{
		{"script", `<p>x</p><script>alert(1)</script>`, "<script>"},
		{"iframe", `<iframe src="evil"></iframe>`, "<iframe"},
		{"onclick attr", `<p onclick="alert(1)">x</p>`, "onclick"},
		{"link", `<a href="javascript:alert(1)">x</a>`, "href"},
		{"foreign class", `<code class="evil">x</code>`, `class="evil"`},
		{"class on p", `<p class="language-go">x</p>`, "class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); strings.Contains(got, tt.excluded) {
				t.Errorf("Sanitize(%q) = %q, still contains %q", tt.input, got, tt.excluded)
			}
		})
	}
}
