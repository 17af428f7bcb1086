// Package mermaid 为 mermaid 图表源码生成 mermaid.live 分享链接。
//
// 聊天页面本身不渲染图表；回复中的 mermaid 代码块由管道提取为附件，
// 并附带一个可在浏览器中打开的在线编辑链接。链接采用 mermaid.live
// 的 pako 格式：JSON 负载经 DEFLATE 压缩后 URL-safe base64 编码。
package mermaid

import (
	"bytes"
	"compress/zlib"
	"encoding/base64"
	"encoding/json"
	"fmt"
)

// Config mermaid 渲染配置，随图表源码一起编入链接
type Config struct {
	Theme string `json:"theme"`
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{Theme: "default"}
}

// deflate 使用 zlib 最高压缩级别压缩数据
func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	writer, err := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := writer.Write(data); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeneratePako 生成图表的 pako 负载
func GeneratePako(diagram string, config *Config) (string, error) {
	if config == nil {
		config = DefaultConfig()
	}

	payload := map[string]interface{}{
		"code":    diagram,
		"mermaid": config,
	}
	jsonBytes, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	compressed, err := deflate(jsonBytes)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("pako:%s", base64.URLEncoding.EncodeToString(compressed)), nil
}

// LiveEditURL 返回在 mermaid.live 中打开图表的编辑链接
func LiveEditURL(diagram string) (string, error) {
	pako, err := GeneratePako(diagram, nil)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("https://mermaid.live/edit/#%s", pako), nil
}
