package chatbot

// ContentType represents the type of content.
type ContentType int

const (
	// ContentTypeHTML represents a rendered HTML fragment.
	ContentTypeHTML ContentType = iota
	// ContentTypeAttachment represents an extracted code attachment.
	ContentTypeAttachment
)

// String returns the string representation of ContentType.
func (ct ContentType) String() string {
	switch ct {
	case ContentTypeHTML:
		return "html"
	case ContentTypeAttachment:
		return "attachment"
	default:
		return "unknown"
	}
}

const (
	// SourceTypeMermaid marks content extracted from a mermaid diagram block.
	SourceTypeMermaid = "mermaid"
)

// ContentTrace tracks the source and metadata of content.
type ContentTrace struct {
	SourceType string
	Extra      map[string]interface{}
}

// Content represents a piece of content ready to be shown in the chat page.
type Content interface {
	GetContentType() ContentType
	GetContentTrace() ContentTrace
}

// HTML represents a rendered, sanitized HTML fragment.
type HTML struct {
	Markup       string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeHTML.
func (h *HTML) GetContentType() ContentType {
	return ContentTypeHTML
}

// GetContentTrace returns the content trace.
func (h *HTML) GetContentTrace() ContentTrace {
	return h.ContentTrace
}

// Attachment represents a code block extracted as a downloadable file.
type Attachment struct {
	FileName     string
	FileData     []byte
	Language     string
	ContentTrace ContentTrace
}

// GetContentType returns ContentTypeAttachment.
func (a *Attachment) GetContentType() ContentType {
	return ContentTypeAttachment
}

// GetContentTrace returns the content trace.
func (a *Attachment) GetContentTrace() ContentTrace {
	return a.ContentTrace
}
