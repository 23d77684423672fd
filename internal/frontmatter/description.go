package frontmatter

import "strings"

// maxParagraphRunes caps the fallback description length.
const maxParagraphRunes = 100

// Description returns the header's description with one layer of surrounding
// double quotes removed. Without a header description it falls back to the
// first paragraph of the raw document.
func Description(content string, header *Block) string {
	if v, ok := header.Get("description"); ok {
		return Unquote(v)
	}
	return FirstParagraph(content)
}

// Unquote strips one pair of surrounding double quotes, if present.
func Unquote(s string) string {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1]
	}
	return s
}

// FirstParagraph returns the text before the first blank line, joined onto a
// single line, trimmed, and truncated to 100 characters.
func FirstParagraph(content string) string {
	para, _, _ := strings.Cut(content, "\n\n")
	para = strings.TrimSpace(strings.ReplaceAll(para, "\n", " "))
	return truncateRunes(para, maxParagraphRunes)
}

// truncateRunes keeps the first n characters without splitting a multi-byte
// character.
func truncateRunes(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
