package markup

import (
	"fmt"
	"regexp"
	"strings"
)

// listKind 当前打开的列表类型
type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// 行分类按声明顺序做首个匹配：标题、分隔线、无序项、有序项、默认。
// 块级标记在每个行边界都优先于流动文本。
var (
	headingPattern   = regexp.MustCompile(`^\s*(#{1,6})\s+(.*)$`)
	unorderedPattern = regexp.MustCompile(`^\s*[-*]\s+(.*)$`)
	orderedPattern   = regexp.MustCompile(`^\s*\d+\.\s+(.*)$`)
)

// blockState 行状态机的状态
//
// 不变式：同一时刻最多只有"列表打开"或"段落缓冲非空"之一在累积输出，
// 切换块类型之前必须先 flush 另一方。
type blockState struct {
	out  strings.Builder
	list listKind
	para strings.Builder
}

// flushParagraph 把段落缓冲作为 <p> 元素写出并清空
func (s *blockState) flushParagraph() {
	if s.para.Len() == 0 {
		return
	}
	s.out.WriteString("<p>")
	s.out.WriteString(s.para.String())
	s.out.WriteString("</p>")
	s.para.Reset()
}

// closeList 关闭当前打开的列表
func (s *blockState) closeList() {
	switch s.list {
	case listUnordered:
		s.out.WriteString("</ul>")
	case listOrdered:
		s.out.WriteString("</ol>")
	}
	s.list = listNone
}

// openList 确保指定类型的列表处于打开状态
func (s *blockState) openList(kind listKind) {
	if s.list == kind {
		return
	}
	s.closeList()
	if kind == listUnordered {
		s.out.WriteString("<ul>")
	} else {
		s.out.WriteString("<ol>")
	}
	s.list = kind
}

// feed 按优先级分类并处理一行
func (s *blockState) feed(line string) {
	if m := headingPattern.FindStringSubmatch(line); m != nil {
		s.flushParagraph()
		s.closeList()
		level := len(m[1])
		text := FormatInline(strings.TrimSpace(m[2]))
		fmt.Fprintf(&s.out, "<h%d>%s</h%d>", level, text, level)
		return
	}

	switch strings.TrimSpace(line) {
	case "---", "***", "___":
		s.flushParagraph()
		s.closeList()
		s.out.WriteString("<hr>")
		return
	}

	if m := unorderedPattern.FindStringSubmatch(line); m != nil {
		s.flushParagraph()
		s.openList(listUnordered)
		s.out.WriteString("<li>")
		s.out.WriteString(FormatInline(m[1]))
		s.out.WriteString("</li>")
		return
	}

	if m := orderedPattern.FindStringSubmatch(line); m != nil {
		// 数字本身不保留，浏览器默认从 1 重新编号
		s.flushParagraph()
		s.openList(listOrdered)
		s.out.WriteString("<li>")
		s.out.WriteString(FormatInline(m[1]))
		s.out.WriteString("</li>")
		return
	}

	// 默认：普通文本行。列表不支持惰性续行，遇到非列表行即关闭。
	s.closeList()
	text := strings.TrimSpace(line)
	if text == "" {
		s.flushParagraph()
		return
	}
	if s.para.Len() > 0 {
		s.para.WriteString("<br>")
	}
	s.para.WriteString(FormatInline(text))
}

// RenderBlocks 对一个普通段运行行状态机，返回拼接的块级 HTML。
//
// 连续的非空默认行合并为一个段落并以 <br> 分隔；空行结束段落。
func RenderBlocks(segment string) string {
	trimmed := strings.TrimSpace(segment)
	if trimmed == "" {
		return ""
	}

	var state blockState
	for _, line := range strings.Split(trimmed, "\n") {
		state.feed(line)
	}
	state.flushParagraph()
	state.closeList()
	return state.out.String()
}
