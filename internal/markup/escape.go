package markup

import "strings"

// htmlEscaper 单趟替换五个 HTML 敏感字符。
//
// strings.Replacer 在一次扫描中完成所有替换，写入输出的实体
// 不会被重新扫描，因此 & 不会二次转义 &lt; 等已插入的实体。
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// Escape 转义 & < > " ' 为对应的 HTML 实体，其余字符原样保留。
//
// 这是整个转换器唯一的消毒边界：除转换器自身插入的固定标签外，
// 所有进入输出的文本都必须恰好经过一次 Escape。注意转义不是幂等的，
// 重复调用会产生双重编码。
func Escape(s string) string {
	return htmlEscaper.Replace(s)
}
