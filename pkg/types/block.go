// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// BlockKind identifies the semantic role of one Markdown block.
type BlockKind string

const (
	Heading1         BlockKind = "heading_1"
	Heading2         BlockKind = "heading_2"
	Heading3         BlockKind = "heading_3"
	Paragraph        BlockKind = "paragraph"
	Equation         BlockKind = "equation"
	BulletedListItem BlockKind = "bulleted_list_item"
	NumberedListItem BlockKind = "numbered_list_item"
)

// SemanticBlock is one logical unit of Markdown structure (heading,
// paragraph, equation, or list item) produced by the tokenizer, prior to
// conversion into the Notion block schema.
type SemanticBlock struct {
	// Kind is the semantic role of the block.
	Kind BlockKind

	// Content is the raw text of the block. Paragraphs and equations may
	// contain embedded newlines.
	Content string

	// Level is set for headings only (1-3); zero otherwise.
	Level int
}

// SpanKind classifies a substring of a line as plain text or math.
type SpanKind string

const (
	PlainText      SpanKind = "text"
	MathExpression SpanKind = "equation"
)

// Span is a typed, non-overlapping substring of a single line, produced by
// the inline-math scanner. Math spans carry their content with the dollar
// delimiters stripped.
type Span struct {
	Kind SpanKind
	Text string
}
