// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"

	"github.com/pdiddy/notesmith/pkg/types"
)

// ScanLine splits a single line into an ordered sequence of plain-text and
// math-expression spans. $$...$$ is checked before $...$ at each position;
// block-math content is trimmed, inline-math content is kept exactly. A
// delimiter with no matching close is ordinary text. The spans cover the
// whole line in order: concatenating their text, with math spans re-wrapped
// in their delimiters, reconstructs the input. An empty line yields a single
// empty plain-text span.
func ScanLine(line string) []types.Span {
	var spans []types.Span

	for i := 0; i < len(line); {
		if strings.HasPrefix(line[i:], "$$") {
			if end := strings.Index(line[i+2:], "$$"); end != -1 {
				spans = append(spans, types.Span{
					Kind: types.MathExpression,
					Text: strings.TrimSpace(line[i+2 : i+2+end]),
				})
				i += end + 4
				continue
			}
		}

		if line[i] == '$' && i+1 < len(line) && line[i+1] != '$' {
			if end := strings.Index(line[i+1:], "$"); end != -1 {
				spans = append(spans, types.Span{
					Kind: types.MathExpression,
					Text: line[i+1 : i+1+end],
				})
				i += end + 2
				continue
			}
		}

		next := strings.IndexByte(line[i:], '$')
		if next == -1 {
			next = len(line) - i
		}
		if next > 0 {
			spans = append(spans, types.Span{Kind: types.PlainText, Text: line[i : i+next]})
			i += next
			continue
		}

		// Unmatched $: emit it as a one-character plain span so the scan
		// advances and the line stays fully covered.
		spans = append(spans, types.Span{Kind: types.PlainText, Text: line[i : i+1]})
		i++
	}

	if len(spans) == 0 {
		return []types.Span{{Kind: types.PlainText, Text: line}}
	}
	return spans
}
