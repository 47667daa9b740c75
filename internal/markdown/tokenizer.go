// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown parses LaTeX-annotated Markdown into semantic blocks and
// provides the length-aware chunking and inline-math scanning used when
// converting transcriptions into Notion blocks. All functions in this
// package are total over string inputs: malformed Markdown degrades to
// plain-text treatment rather than producing errors.
package markdown

import (
	"strings"

	"github.com/pdiddy/notesmith/pkg/types"
)

// Tokenize splits Markdown into an ordered sequence of semantic blocks using
// a single line-oriented scan. Headings and list items are one line each;
// $$-fenced equations and paragraphs accumulate across lines. An unterminated
// $$ fence consumes the rest of the input.
func Tokenize(markdown string) []types.SemanticBlock {
	var blocks []types.SemanticBlock
	lines := strings.Split(markdown, "\n")

	for i := 0; i < len(lines); {
		stripped := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(stripped, "### "):
			blocks = append(blocks, types.SemanticBlock{Kind: types.Heading3, Content: stripped[4:], Level: 3})
			i++

		case strings.HasPrefix(stripped, "## "):
			blocks = append(blocks, types.SemanticBlock{Kind: types.Heading2, Content: stripped[3:], Level: 2})
			i++

		case strings.HasPrefix(stripped, "# "):
			blocks = append(blocks, types.SemanticBlock{Kind: types.Heading1, Content: stripped[2:], Level: 1})
			i++

		case stripped == "$$":
			var equation []string
			i++
			for i < len(lines) && strings.TrimSpace(lines[i]) != "$$" {
				equation = append(equation, lines[i])
				i++
			}
			i++ // past the closing $$, or past the end on unterminated input
			blocks = append(blocks, types.SemanticBlock{
				Kind:    types.Equation,
				Content: strings.TrimSpace(strings.Join(equation, "\n")),
			})

		case isBulletItem(stripped):
			blocks = append(blocks, types.SemanticBlock{Kind: types.BulletedListItem, Content: stripped[2:]})
			i++

		case isNumberedItem(stripped):
			_, content, _ := strings.Cut(stripped, ". ")
			blocks = append(blocks, types.SemanticBlock{Kind: types.NumberedListItem, Content: content})
			i++

		case stripped == "":
			i++

		default:
			var para []string
			for i < len(lines) && strings.TrimSpace(lines[i]) != "" && !isSpecialLine(lines[i]) {
				para = append(para, strings.TrimSpace(lines[i]))
				i++
			}
			if len(para) > 0 {
				blocks = append(blocks, types.SemanticBlock{Kind: types.Paragraph, Content: strings.Join(para, "\n")})
			}
		}
	}

	return blocks
}

// isBulletItem reports whether a trimmed line is a bulleted list item.
func isBulletItem(stripped string) bool {
	return strings.HasPrefix(stripped, "- ") || strings.HasPrefix(stripped, "* ")
}

// isNumberedItem reports whether a trimmed line looks like a numbered list
// item. The check is purely lexical (leading digit plus a ". " anywhere in
// the line), so a sentence like "3. 1415 is close to pi" matches too. That
// matches the transcription output we see in practice; tightening it to an
// anchored pattern would change how existing notes render.
func isNumberedItem(stripped string) bool {
	return stripped != "" && stripped[0] >= '0' && stripped[0] <= '9' && strings.Contains(stripped, ". ")
}

// isSpecialLine reports whether a line opens a non-paragraph block. The
// paragraph accumulator uses it as its stopping condition, so it must agree
// exactly with the dispatch above.
func isSpecialLine(line string) bool {
	stripped := strings.TrimSpace(line)
	return strings.HasPrefix(stripped, "# ") ||
		strings.HasPrefix(stripped, "## ") ||
		strings.HasPrefix(stripped, "### ") ||
		stripped == "$$" ||
		isBulletItem(stripped) ||
		isNumberedItem(stripped)
}
