// Package chatbot 将 LLM 回复的 Markdown 转换为可安全嵌入页面的 HTML
//
// 这个包面向聊天前端：后端返回的 Markdown（不可信文本）被转换为
// 只包含固定元素集的 HTML 字符串，可以直接作为信任标记插入 DOM。
//
// 核心功能：
//   - 将受限 Markdown 子集转换为已消毒的 HTML
//   - 代码块原样转义，绝不解释其内容
//   - 超长代码块与 mermaid 图表提取为附件
//   - 长回复按空行边界拆分为多个聊天气泡
//   - 提取纯文本摘要用于会话列表预览
//
// 主要 API：
//   - Convert(): 同步纯转换，返回 HTML 字符串
//   - Chatbotify(): 完整管道，返回可展示的内容列表
//
// 示例：
//
//	// 简单转换
//	html := chatbot.Convert(markdown, nil)
//
//	// 完整处理（含附件提取）
//	contents, err := chatbot.Chatbotify(ctx, markdown)
//	for _, content := range contents {
//	    switch c := content.(type) {
//	    case *chatbot.HTML:
//	        // 插入聊天气泡
//	    case *chatbot.Attachment:
//	        // 展示为可下载附件
//	    }
//	}
package chatbot

import (
	"context"
)

// Chatbotify 将 Markdown 回复转换为可直接展示的内容片段
//
// 这是主要的管道 API：除了 HTML 渲染，还会把超过行数阈值的代码块
// 和 mermaid 图表提取为附件。只需要纯 HTML 时使用 Convert()。
//
// 参数：
//   - ctx: 上下文
//   - content: 后端回复的原始 Markdown
//   - opts: 可选配置
//
// 返回：
//   - []Content: HTML 或 Attachment 对象的有序列表
//   - error: 错误信息
func Chatbotify(ctx context.Context, content string, opts ...Option) ([]Content, error) {
	options := applyOptions(opts...)
	return ProcessMarkdown(ctx, content, options.Config)
}
