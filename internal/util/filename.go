// Package util 为提取的代码附件推导文件名。
package util

import (
	"path/filepath"
	"regexp"
	"strings"
)

// languageExt maps language tags to file extensions.
var languageExt = map[string]string{
	"python":     "py",
	"javascript": "js",
	"typescript": "ts",
	"java":       "java",
	"c":          "c",
	"cpp":        "cpp",
	"go":         "go",
	"rust":       "rs",
	"ruby":       "rb",
	"php":        "php",
	"html":       "html",
	"css":        "css",
	"bash":       "sh",
	"shell":      "sh",
	"sql":        "sql",
	"json":       "json",
	"yaml":       "yaml",
	"toml":       "toml",
	"xml":        "xml",
	"markdown":   "md",
	"mermaid":    "mmd",
	"plaintext":  "txt",
}

var filenamePattern = regexp.MustCompile(`[a-zA-Z0-9_\-.]+\.[a-zA-Z0-9]+`)

// ExtractFilename 从一行文本中提取合法文件名（须带扩展名），找不到返回空串。
func ExtractFilename(line string) string {
	for _, match := range filenamePattern.FindAllString(line, -1) {
		if filepath.Ext(match) != "" {
			return match
		}
	}
	return ""
}

// Ext 返回语言标记对应的文件扩展名，未知语言回退为 txt。
func Ext(language string) string {
	ext, ok := languageExt[strings.ToLower(language)]
	if !ok {
		return "txt"
	}
	return ext
}

// AttachmentName 为代码附件生成文件名。
//
// 优先从代码前两行提取文件名（常见于 LLM 在注释里给出的路径），
// 否则按语言扩展名回退为 snippet.<ext>。
func AttachmentName(code, language string) string {
	lines := strings.Split(strings.TrimSpace(code), "\n")
	sample := ""
	if len(lines) > 0 {
		sample = lines[0]
		if len(lines) > 1 {
			sample += " " + lines[1]
		}
	}
	sample = strings.ReplaceAll(sample, "\\", "")

	ext := Ext(language)
	if name := ExtractFilename(sample); name != "" {
		if strings.HasSuffix(name, "."+ext) && len(name) <= 24 {
			return name
		}
		return name + "." + ext
	}
	return "snippet." + ext
}
