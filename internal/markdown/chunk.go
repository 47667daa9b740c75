// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"
	"unicode"
)

// DefaultBlockLimit is the Notion per-block character limit.
const DefaultBlockLimit = 2000

// Chunk splits text into ordered pieces of at most limit characters. Text
// within the limit is returned as a single chunk. Longer text is split on
// the blank-line paragraph separator first, greedily packing paragraphs into
// chunks; a single paragraph over the limit is force-split on word
// boundaries. The "\n\n" separators between paragraphs that land in
// different chunks are consumed, not reinserted.
func Chunk(text string, limit int) []string {
	if limit <= 0 {
		limit = DefaultBlockLimit
	}
	if len(text) <= limit {
		return []string{text}
	}

	var chunks []string
	current := ""

	for _, para := range strings.Split(text, "\n\n") {
		if len(current)+len(para)+2 <= limit {
			if current != "" {
				current += "\n\n"
			}
			current += para
			continue
		}

		if current != "" {
			chunks = append(chunks, current)
		}
		if len(para) <= limit {
			current = para
		} else {
			chunks = append(chunks, forceChunk(para, limit)...)
			current = ""
		}
	}
	if current != "" {
		chunks = append(chunks, current)
	}

	if len(chunks) == 0 {
		return []string{text[:limit]}
	}
	return chunks
}

// forceChunk splits text that exceeds the limit, cutting at the last space
// before the limit when one exists and hard-cutting mid-word otherwise.
// Leading whitespace is stripped from each remainder so cut points do not
// leak separator spaces into the next chunk.
func forceChunk(text string, limit int) []string {
	var chunks []string
	for len(text) > limit {
		cut := strings.LastIndex(text[:limit], " ")
		if cut == -1 {
			cut = limit
		}
		chunks = append(chunks, text[:cut])
		text = strings.TrimLeftFunc(text[cut:], unicode.IsSpace)
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}
