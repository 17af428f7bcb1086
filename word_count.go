package chatbot

import "unicode/utf8"

// CountText 计算文本的气泡长度（Unicode 字符数）
//
// 拆分长回复时长度按字符计，而不是字节：多字节的中文或 emoji
// 各算一个字符。HTML 渲染发生在拆分之后，标签不参与计数。
//
// 参数：
//   - text: 要计数的文本
//
// 返回：
//   - int: Unicode 字符数
func CountText(text string) int {
	return utf8.RuneCountInString(text)
}
