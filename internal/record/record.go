// Package record splits raw launch-log text into blocks of ordered key/value
// fields. A block is a run of "key：value" lines terminated by a blank line;
// lines without a key continue the value of the previous key.
package record

import (
	"regexp"
	"strings"
)

const (
	// FieldSeparator separates a key from its value (full-width colon).
	FieldSeparator = "："
	// BlockSeparator separates two launch blocks.
	BlockSeparator = "\n\n"
)

var citationPattern = regexp.MustCompile(`\[.*?\]`)

// Field is a single key/value pair of a block.
type Field struct {
	Key   string
	Value string
}

// RawBlock is the ordered set of fields parsed from one text block.
type RawBlock struct {
	Fields []Field
	// Text is the block as it appeared in the input, kept for error reports.
	Text string

	index map[string]int
}

// Get returns the value for key, or "" when the key is absent.
func (b RawBlock) Get(key string) string {
	v, _ := b.Lookup(key)
	return v
}

// Lookup returns the value for key and whether the key was present.
func (b RawBlock) Lookup(key string) (string, bool) {
	if b.index != nil {
		i, ok := b.index[key]
		if !ok {
			return "", false
		}
		return b.Fields[i].Value, true
	}
	for _, f := range b.Fields {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}

// Keys returns the keys in declaration order.
func (b RawBlock) Keys() []string {
	keys := make([]string, len(b.Fields))
	for i, f := range b.Fields {
		keys[i] = f.Key
	}
	return keys
}

// Len returns the number of distinct keys.
func (b RawBlock) Len() int { return len(b.Fields) }

// set stores value under key. A repeated key keeps its first position.
func (b *RawBlock) set(key, value string) {
	if b.index == nil {
		b.index = make(map[string]int)
	}
	if i, ok := b.index[key]; ok {
		b.Fields[i].Value = value
		return
	}
	b.index[key] = len(b.Fields)
	b.Fields = append(b.Fields, Field{Key: key, Value: value})
}

func (b *RawBlock) appendTo(key, text string) {
	i := b.index[key]
	b.Fields[i].Value += text
}

// StripCitations removes bracketed citation markers such as "[3]".
func StripCitations(s string) string {
	if !strings.Contains(s, "[") {
		return s
	}
	return citationPattern.ReplaceAllString(s, "")
}
