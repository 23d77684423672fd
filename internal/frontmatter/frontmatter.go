package frontmatter

import "strings"

const delimiter = "---"

// Block is an ordered set of header keys and their trimmed values.
// Keys are case-sensitive. A key repeated later in the header keeps its
// original position and takes the later value.
type Block struct {
	keys   []string
	values map[string]string
}

// NewBlock returns an empty header block.
func NewBlock() *Block {
	return &Block{values: make(map[string]string)}
}

// Set stores value under key.
func (b *Block) Set(key, value string) {
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = value
}

// Get returns the value for key and whether it was present.
func (b *Block) Get(key string) (string, bool) {
	if b == nil {
		return "", false
	}
	v, ok := b.values[key]
	return v, ok
}

// Keys returns header keys in first-seen order.
func (b *Block) Keys() []string {
	if b == nil {
		return nil
	}
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Len returns the number of distinct keys.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Parse extracts the header block from the start of content. The document
// must open with a "---" line, and the header ends at the next "---" line
// with at least one line between them. ok is false when there is no header.
// Lines without a colon are ignored.
func Parse(content string) (block *Block, ok bool) {
	lines := strings.Split(content, "\n")
	if len(lines) < 3 || trimCR(lines[0]) != delimiter {
		return nil, false
	}

	end := -1
	for i := 2; i < len(lines); i++ {
		if trimCR(lines[i]) == delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, false
	}

	block = NewBlock()
	for _, line := range lines[1:end] {
		key, value, found := strings.Cut(trimCR(line), ":")
		if !found {
			continue
		}
		block.Set(strings.TrimSpace(key), strings.TrimSpace(value))
	}
	return block, true
}

func trimCR(s string) string {
	return strings.TrimSuffix(s, "\r")
}
