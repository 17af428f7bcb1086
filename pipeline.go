package chatbot

import (
	"context"
	"strings"

	"github.com/Raqanzaa/gemini-chatbot-api/internal/markup"
	"github.com/Raqanzaa/gemini-chatbot-api/internal/mermaid"
	"github.com/Raqanzaa/gemini-chatbot-api/internal/util"
)

// ProcessMarkdown 完整管道：markdown → 可展示的内容列表
//
// 步骤：
//  1. 按代码围栏切分片段
//  2. 按顺序遍历片段：
//     - mermaid 代码块 → 提取为附件，附带 mermaid.live 编辑链接
//     - 超过行数阈值的代码块 → 提取为附件
//     - 其余片段 → 渲染为 HTML 并合并进当前片段
//  3. 返回 HTML | Attachment 的有序列表
func ProcessMarkdown(ctx context.Context, content string, config *RenderConfig) ([]Content, error) {
	if config == nil {
		config = DefaultConfig()
	}

	segments := markup.SplitSegments(content)
	result := make([]Content, 0)

	var htmlBuf strings.Builder
	flushHTML := func() {
		if htmlBuf.Len() == 0 {
			return
		}
		result = append(result, &HTML{
			Markup: htmlBuf.String(),
			ContentTrace: ContentTrace{
				SourceType: "html",
			},
		})
		htmlBuf.Reset()
	}

	for _, seg := range segments {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		switch {
		case seg.Kind == markup.SegmentCode && seg.Language == "mermaid":
			flushHTML()
			handleMermaid(&result, seg)
		case seg.Kind == markup.SegmentCode && lineCount(seg.Body) > config.AttachmentLineLimit:
			flushHTML()
			handleCodeAttachment(&result, seg)
		case seg.Kind == markup.SegmentCode:
			htmlBuf.WriteString(markup.RenderCode(seg, config))
		default:
			htmlBuf.WriteString(markup.RenderBlocks(seg.Body))
		}
	}
	flushHTML()

	return result, nil
}

// lineCount 统计代码内容的行数
func lineCount(code string) int {
	return strings.Count(strings.TrimSpace(code), "\n") + 1
}

// handleCodeAttachment 将大代码块提取为附件
func handleCodeAttachment(result *[]Content, seg markup.Segment) {
	rawCode := strings.TrimSpace(seg.Body)
	lang := seg.Language
	if lang == "" {
		lang = "plaintext"
	}

	*result = append(*result, &Attachment{
		FileName: util.AttachmentName(rawCode, lang),
		FileData: []byte(rawCode),
		Language: lang,
		ContentTrace: ContentTrace{
			SourceType: "code_block",
			Extra: map[string]interface{}{
				"language": lang,
			},
		},
	})
}

// handleMermaid 将 mermaid 图表提取为附件并附带在线编辑链接
func handleMermaid(result *[]Content, seg markup.Segment) {
	rawCode := strings.TrimSpace(seg.Body)

	extra := map[string]interface{}{}
	liveURL, err := mermaid.LiveEditURL(rawCode)
	if err != nil {
		Logger.Printf("mermaid live url generation failed: %v", err)
	} else {
		extra["live_url"] = liveURL
	}

	*result = append(*result, &Attachment{
		FileName: "diagram.mmd",
		FileData: []byte(rawCode),
		Language: "mermaid",
		ContentTrace: ContentTrace{
			SourceType: SourceTypeMermaid,
			Extra:      extra,
		},
	})
}
