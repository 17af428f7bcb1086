// Package preview 从 Markdown 回复中提取纯文本摘要。
//
// 会话列表、桌面通知等场景只需要回复的文字内容，不需要任何格式。
// 这里用 goldmark 解析 AST 后遍历文本节点，比转换为 HTML 再剥离
// 标签更可靠：代码块、围栏等内容可以按节点类型直接跳过。
package preview

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// md 共享的 goldmark 实例，LLM 输出常见删除线语法
var md = goldmark.New(
	goldmark.WithExtensions(extension.Strikethrough),
)

// Text 提取 Markdown 的纯文本内容。
//
// 块级元素之间折叠为单个空格，代码块整体跳过。
func Text(markdown string) string {
	source := []byte(markdown)
	doc := md.Parser().Parse(text.NewReader(source))

	var buf textBuffer
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			switch n.(type) {
			case *ast.Paragraph, *ast.Heading, *ast.ListItem, *ast.Blockquote:
				buf.Break()
			}
			return ast.WalkContinue, nil
		}

		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			buf.Write(string(node.Segment.Value(source)))
			if node.SoftLineBreak() || node.HardLineBreak() {
				buf.Write(" ")
			}
		case *ast.AutoLink:
			buf.Write(string(node.URL(source)))
		}
		return ast.WalkContinue, nil
	})

	return buf.String()
}

// Snippet 返回不超过 maxRunes 个字符的纯文本摘要。
//
// 超长时在截断处加省略号；maxRunes <= 0 表示不限长。
func Snippet(markdown string, maxRunes int) string {
	t := Text(markdown)
	if maxRunes <= 0 || utf8.RuneCountInString(t) <= maxRunes {
		return t
	}
	runes := []rune(t)
	return strings.TrimSpace(string(runes[:maxRunes])) + "…"
}
