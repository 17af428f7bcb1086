package preview

import "strings"

// textBuffer accumulates plain text fragments and tracks rune length.
// Block boundaries collapse into a single space separator.
type textBuffer struct {
	parts []string
	runes int
}

// Write appends a text fragment to the buffer.
func (b *textBuffer) Write(s string) {
	if s == "" {
		return
	}
	b.parts = append(b.parts, s)
	b.runes += len([]rune(s))
}

// Break marks a block boundary. Consecutive breaks produce one separator.
func (b *textBuffer) Break() {
	if len(b.parts) == 0 {
		return
	}
	if b.parts[len(b.parts)-1] == " " {
		return
	}
	b.parts = append(b.parts, " ")
	b.runes++
}

// Len returns the accumulated length in runes.
func (b *textBuffer) Len() int {
	return b.runes
}

// String joins the fragments and trims surrounding whitespace.
func (b *textBuffer) String() string {
	return strings.TrimSpace(strings.Join(b.parts, ""))
}
