// Package markup 实现聊天回复的 Markdown → HTML 转换核心。
//
// 核心是一个纯函数：输入任意不可信文本，输出只包含固定元素集的
// HTML 字符串。转换分两个阶段：先按代码围栏切分片段（SplitSegments），
// 再对普通片段逐行运行块状态机（RenderBlocks），行内语法由
// FormatInline 处理，所有文本经 Escape 消毒。
//
// 转换对任何输入都不失败：畸形的 Markdown 退化为字面转义文本。
package markup

import (
	"strings"

	"github.com/Raqanzaa/gemini-chatbot-api/internal/types"
)

// Render 把整段 Markdown 转换为 HTML。
//
// 片段按原始顺序渲染并拼接；cfg 为 nil 时使用默认配置。
func Render(markdown string, cfg *types.RenderConfig) string {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}

	var sb strings.Builder
	for _, seg := range SplitSegments(markdown) {
		if seg.Kind == SegmentCode {
			sb.WriteString(RenderCode(seg, cfg))
		} else {
			sb.WriteString(RenderBlocks(seg.Body))
		}
	}
	return sb.String()
}

// RenderCode 把一个代码段渲染为 <pre><code> 块。
//
// 内容修剪首尾空白后只做转义，带语言标记时在内层元素上
// 加 class 提示（前缀来自配置，默认 language-）。
func RenderCode(seg Segment, cfg *types.RenderConfig) string {
	if cfg == nil {
		cfg = types.DefaultRenderConfig()
	}
	code := Escape(strings.TrimSpace(seg.Body))
	if seg.Language == "" {
		return "<pre><code>" + code + "</code></pre>"
	}
	// Language 只含 \w 字符，可直接放入属性值
	return `<pre><code class="` + cfg.LanguageClassPrefix + seg.Language + `">` + code + "</code></pre>"
}
