package chatbot

import (
	"strings"
	"unicode/utf8"
)

// buildRuneOffsetTable builds a cumulative rune-count table for each byte position.
// Returns a slice where result[i] is the rune offset at byte position i.
func buildRuneOffsetTable(text string) []int {
	offsets := make([]int, len(text)+1)
	count := 0
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		for j := 0; j < size; j++ {
			offsets[i+j] = count
		}
		count++
		i += size
	}
	offsets[len(text)] = count
	return offsets
}

// findSplitPoints 找出围栏之外、空行之后的候选拆分位置（字节偏移）。
func findSplitPoints(text string) []int {
	var points []int
	inFence := false
	pos := 0
	for _, line := range strings.Split(text, "\n") {
		lineEnd := pos + len(line) + 1 // 含换行符
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			inFence = !inFence
		} else if !inFence && trimmed == "" && lineEnd < len(text) {
			points = append(points, lineEnd)
		}
		pos = lineEnd
	}
	return points
}

// SplitMarkdown 把长回复拆分为不超过 maxRunes 个字符的 Markdown 块
//
// 优先在代码围栏之外的空行处拆分，保证围栏不会被候选拆分点切开；
// 超长且没有空行可用时退化为按换行、再按字符硬拆。每个块修剪
// 首尾空行，空块被丢弃。各块可独立转换为 HTML 作为一个聊天气泡。
func SplitMarkdown(markdown string, maxRunes int) []string {
	if markdown == "" {
		return nil
	}
	if maxRunes <= 0 || CountText(markdown) <= maxRunes {
		return []string{markdown}
	}

	offsets := buildRuneOffsetTable(markdown)
	points := findSplitPoints(markdown)

	var chunks []string
	start := 0
	for start < len(markdown) {
		budget := offsets[start] + maxRunes

		if offsets[len(markdown)] <= budget {
			chunks = append(chunks, markdown[start:])
			break
		}

		// 预算内最后一个空行拆分点
		best := -1
		for _, p := range points {
			if p <= start {
				continue
			}
			if offsets[p] <= budget {
				best = p
			} else {
				break
			}
		}

		if best == -1 || best == start {
			best = hardSplit(markdown, offsets, start, budget)
		}

		chunks = append(chunks, markdown[start:best])
		start = best
	}

	result := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		chunk = strings.Trim(chunk, "\n")
		if strings.TrimSpace(chunk) != "" {
			result = append(result, chunk)
		}
	}
	return result
}

// hardSplit 在预算内找最大的拆分位置：先试换行边界，再退到字符边界。
func hardSplit(text string, offsets []int, start, budget int) int {
	limit := start
	for i := start + 1; i <= len(text); i++ {
		if i < len(text) && !utf8.RuneStart(text[i]) {
			continue // 不在字符边界上
		}
		if offsets[i] > budget {
			break
		}
		limit = i
	}
	if limit == start {
		// 单个字符就超出预算，强制前进一个字符
		_, size := utf8.DecodeRuneInString(text[start:])
		return start + size
	}

	// 预算内的最后一个换行优先
	if nl := strings.LastIndexByte(text[start:limit], '\n'); nl > 0 {
		return start + nl + 1
	}
	return limit
}
