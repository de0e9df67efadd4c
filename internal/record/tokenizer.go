package record

import "strings"

// Tokenize splits text into blocks and each block into ordered fields.
// Whitespace-only blocks are skipped. The first malformed block aborts
// tokenization with a *BlockError.
func Tokenize(text string) ([]RawBlock, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var blocks []RawBlock
	for _, chunk := range strings.Split(text, BlockSeparator) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		b, err := TokenizeBlock(chunk)
		if err != nil {
			return blocks, err
		}
		blocks = append(blocks, b)
	}
	return blocks, nil
}

// TokenizeBlock parses a single block. Blank or whitespace-only lines around
// the block are dropped; the first remaining line must open a key.
func TokenizeBlock(text string) (RawBlock, error) {
	lines := trimBlankLines(strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n"))
	text = strings.Join(lines, "\n")
	block := RawBlock{Text: text}

	key, value, ok := splitField(lines[0])
	if !ok {
		return RawBlock{}, &BlockError{Line: lines[0], Block: text, Err: ErrMalformedRecord}
	}
	block.set(key, StripCitations(value))
	last := key

	for _, line := range lines[1:] {
		if k, v, ok := splitField(line); ok {
			block.set(k, StripCitations(v))
			last = k
			continue
		}
		// Continuation: raw concatenation onto the previous key.
		block.appendTo(last, StripCitations(strings.TrimPrefix(line, FieldSeparator)))
	}
	return block, nil
}

// splitField reports whether line opens a key, i.e. carries a separator
// after at least one byte of key text.
func splitField(line string) (key, value string, ok bool) {
	j := strings.Index(line, FieldSeparator)
	if j <= 0 {
		return "", "", false
	}
	key = strings.TrimSpace(line[:j])
	if key == "" {
		return "", "", false
	}
	return key, line[j+len(FieldSeparator):], true
}

// trimBlankLines drops whitespace-only lines from both ends, keeping at
// least one line.
func trimBlankLines(lines []string) []string {
	for len(lines) > 1 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
