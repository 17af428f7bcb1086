package chatbot

import (
	"github.com/Raqanzaa/gemini-chatbot-api/internal/preview"
)

// Preview 返回回复的纯文本摘要（用于会话列表或通知）
//
// Markdown 格式被剥离，代码块整体跳过；超过 maxRunes 个字符时
// 截断并加省略号，maxRunes <= 0 表示不限长。
func Preview(markdown string, maxRunes int) string {
	return preview.Snippet(markdown, maxRunes)
}
