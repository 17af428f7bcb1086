package chatbot

import (
	"regexp"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	sanitizePolicy     *bluemonday.Policy
	sanitizePolicyOnce sync.Once
)

// SanitizePolicy 返回与转换器输出元素集一致的 bluemonday 策略
//
// 转换器本身保证所有文本都经过转义，这个策略是嵌入页面前的
// 兜底防线：只放行转换器会产生的元素，唯一允许的属性是
// code 上的语言 class。
func SanitizePolicy() *bluemonday.Policy {
	sanitizePolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements(
			"h1", "h2", "h3", "h4", "h5", "h6",
			"hr", "ul", "ol", "li", "p", "br",
			"pre", "code", "strong", "em",
		)
		p.AllowAttrs("class").
			Matching(regexp.MustCompile(`^language-[a-zA-Z0-9_]*$`)).
			OnElements("code")
		sanitizePolicy = p
	})
	return sanitizePolicy
}

// Sanitize 对已渲染的 HTML 做兜底过滤
//
// 对 Convert 的输出这应当是恒等变换（最多做实体归一化）；
// 任何越出允许元素集的标记都会被剥离。
func Sanitize(html string) string {
	return SanitizePolicy().Sanitize(html)
}
