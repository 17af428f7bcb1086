package markup

import (
	"regexp"
	"strings"
)

// SegmentKind 区分代码段与普通段
type SegmentKind int

const (
	// SegmentOrdinary 围栏之外的普通 Markdown 内容
	SegmentOrdinary SegmentKind = iota
	// SegmentCode 三反引号围栏内的代码内容
	SegmentCode
)

// String returns the string representation of SegmentKind.
func (k SegmentKind) String() string {
	switch k {
	case SegmentOrdinary:
		return "ordinary"
	case SegmentCode:
		return "code"
	default:
		return "unknown"
	}
}

// Segment 输入的一个连续片段
//
// 所有片段按原始顺序无缺失地划分整个输入；代码段的内容只做转义，
// 绝不会再被块级或行内语法解释。
type Segment struct {
	Kind     SegmentKind
	Language string // 开围栏后紧跟的语言标记，可为空；仅代码段有效
	Body     string // 代码段：去掉围栏行后的原文；普通段：原文
}

const fenceMarker = "```"

// fenceInfoPattern 匹配开围栏后紧跟的语言标记
var fenceInfoPattern = regexp.MustCompile(`^\w+`)

// normalizeNewlines 把 CRLF 统一为 LF，后续全部按 \n 分行。
func normalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// SplitSegments 把输入切分为代码段与普通段的有序序列。
//
// 围栏以三反引号开始，可紧跟一个语言标记，至下一个三反引号闭合。
// 未闭合的围栏一直延伸到输入末尾，按代码处理（而不是退回普通文本）。
// 片段之间不丢失、不重复任何文本，空的普通段也会保留。
func SplitSegments(markdown string) []Segment {
	src := normalizeNewlines(markdown)
	segments := make([]Segment, 0, 4)

	for {
		open := strings.Index(src, fenceMarker)
		if open == -1 {
			segments = append(segments, Segment{Kind: SegmentOrdinary, Body: src})
			return segments
		}

		segments = append(segments, Segment{Kind: SegmentOrdinary, Body: src[:open]})
		rest := src[open+len(fenceMarker):]

		lang := fenceInfoPattern.FindString(rest)
		rest = rest[len(lang):]

		body := rest
		closing := strings.Index(rest, fenceMarker)
		if closing != -1 {
			body = rest[:closing]
			src = rest[closing+len(fenceMarker):]
		}

		// 丢弃开围栏行自身的换行；首尾空白在渲染时统一修剪
		body = strings.TrimPrefix(body, "\n")
		segments = append(segments, Segment{Kind: SegmentCode, Language: lang, Body: body})

		if closing == -1 {
			return segments
		}
	}
}
