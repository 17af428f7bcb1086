package markup

import "regexp"

// 行内规则按声明顺序应用。粗体先于斜体，保证 **x** 的两个星号
// 被整体消费，不会被斜体规则误解析为嵌套的 <em>。
// span 内容不允许出现定界符本身，因此替换结果不会被后续规则重扫。
var (
	boldPattern   = regexp.MustCompile(`\*\*([^*]+?)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+?)\*`)
	codePattern   = regexp.MustCompile("`([^`]+?)`")
)

// FormatInline 处理一个逻辑行（不含换行符）：先整行转义，
// 再依次重写 **粗体**、*斜体* 和 `行内代码`。
//
// 未闭合的 * ** ` 保持为已转义的字面文本，不报错。
func FormatInline(line string) string {
	s := Escape(line)
	s = boldPattern.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicPattern.ReplaceAllString(s, "<em>$1</em>")
	s = codePattern.ReplaceAllString(s, "<code>$1</code>")
	return s
}
