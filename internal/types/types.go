package types

// RenderConfig 渲染配置
//
// 控制 Markdown → HTML 转换器的输出细节。
type RenderConfig struct {
	// LanguageClassPrefix 代码块语言 class 的前缀，
	// 例如 "language-" 会把 ```go 渲染为 <code class="language-go">。
	LanguageClassPrefix string

	// AttachmentLineLimit 管道将代码块提取为附件的行数阈值，
	// 超过该行数的代码块不再内联渲染。
	AttachmentLineLimit int
}

// DefaultRenderConfig 返回默认渲染配置
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		LanguageClassPrefix: "language-",
		AttachmentLineLimit: 50,
	}
}
