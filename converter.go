package chatbot

import (
	"strings"

	"github.com/Raqanzaa/gemini-chatbot-api/internal/markup"
)

// 导出类型别名
type Segment = markup.Segment
type SegmentKind = markup.SegmentKind

const (
	SegmentOrdinary = markup.SegmentOrdinary
	SegmentCode     = markup.SegmentCode
)

// Convert 将 Markdown 转换为已消毒的 HTML
//
// 纯同步函数：对任何输入都不失败，空输入产生空输出，
// 畸形 Markdown 退化为字面转义文本。输出只包含
// h1–h6、hr、ul/ol/li、p、br、pre/code、strong、em 这些元素，
// 唯一的属性是代码块可选的语言 class。
//
// 参数:
//   - markdown: 原始 Markdown 文本（不可信）
//   - config: 渲染配置，如为 nil 则使用默认配置
//
// 返回:
//   - string: HTML 字符串
func Convert(markdown string, config *RenderConfig) string {
	return markup.Render(markdown, config)
}

// ConvertWithSegments 将 Markdown 转换为 HTML，同时返回片段信息
//
// 类似 Convert()，但还返回代码围栏切分出的片段序列供管道使用。
func ConvertWithSegments(markdown string, config *RenderConfig) (string, []Segment) {
	if config == nil {
		config = DefaultConfig()
	}

	segments := markup.SplitSegments(markdown)
	var sb strings.Builder
	for _, seg := range segments {
		if seg.Kind == markup.SegmentCode {
			sb.WriteString(markup.RenderCode(seg, config))
		} else {
			sb.WriteString(markup.RenderBlocks(seg.Body))
		}
	}
	return sb.String(), segments
}
