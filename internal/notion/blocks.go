// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notion renders semantic blocks into the Notion block schema and
// provides the pages API client.
package notion

import (
	"strings"

	"github.com/pdiddy/notesmith/internal/markdown"
	"github.com/pdiddy/notesmith/pkg/types"
)

// RichText is one inline content element, either plain text or an equation.
type RichText struct {
	Type     string        `json:"type"`
	Text     *TextContent  `json:"text,omitempty"`
	Equation *EquationBody `json:"equation,omitempty"`
}

// TextContent is the payload of a plain-text rich-text element.
type TextContent struct {
	Content string `json:"content"`
}

// EquationBody is the payload of both equation rich-text elements and
// top-level equation blocks.
type EquationBody struct {
	Expression string `json:"expression"`
}

// RichTextBody is the payload shared by paragraph, heading, and list blocks.
type RichTextBody struct {
	RichText []RichText `json:"rich_text"`
}

// Block is one Notion block object. Exactly one of the type-specific fields
// is set, matching the Type discriminator.
type Block struct {
	Object           string        `json:"object"`
	Type             string        `json:"type"`
	Paragraph        *RichTextBody `json:"paragraph,omitempty"`
	Heading1         *RichTextBody `json:"heading_1,omitempty"`
	Heading2         *RichTextBody `json:"heading_2,omitempty"`
	Heading3         *RichTextBody `json:"heading_3,omitempty"`
	BulletedListItem *RichTextBody `json:"bulleted_list_item,omitempty"`
	NumberedListItem *RichTextBody `json:"numbered_list_item,omitempty"`
	Equation         *EquationBody `json:"equation,omitempty"`
}

// Renderer converts semantic blocks into Notion blocks, splitting list and
// paragraph content that exceeds the per-block character limit and
// truncating heading and equation content to it.
type Renderer struct {
	limit int
}

// NewRenderer creates a renderer with the given per-block character limit.
// Non-positive limits fall back to the Notion default (2000).
func NewRenderer(limit int) *Renderer {
	if limit <= 0 {
		limit = markdown.DefaultBlockLimit
	}
	return &Renderer{limit: limit}
}

// Render converts an ordered sequence of semantic blocks into Notion blocks,
// preserving source order.
func (r *Renderer) Render(blocks []types.SemanticBlock) []Block {
	var out []Block
	for _, b := range blocks {
		out = append(out, r.renderBlock(b)...)
	}
	return out
}

func (r *Renderer) renderBlock(b types.SemanticBlock) []Block {
	switch b.Kind {
	case types.Equation:
		// Equation content is not re-scanned for nested math; it is the
		// expression, truncated to the block limit.
		return []Block{{
			Object:   "block",
			Type:     "equation",
			Equation: &EquationBody{Expression: truncate(b.Content, r.limit)},
		}}

	case types.Heading1, types.Heading2, types.Heading3:
		return []Block{r.headingBlock(b)}

	case types.BulletedListItem, types.NumberedListItem:
		return r.listBlocks(b)

	default:
		return r.paragraphBlocks(b.Content)
	}
}

// headingBlock builds a single heading block. Heading content is truncated
// rather than chunked: a heading split across blocks would render as several
// headings, which reads worse than a clipped one.
func (r *Renderer) headingBlock(b types.SemanticBlock) Block {
	body := &RichTextBody{RichText: r.richText(truncate(b.Content, r.limit))}

	block := Block{Object: "block", Type: string(b.Kind)}
	switch b.Kind {
	case types.Heading1:
		block.Heading1 = body
	case types.Heading2:
		block.Heading2 = body
	default:
		block.Heading3 = body
	}
	return block
}

func (r *Renderer) listBlocks(b types.SemanticBlock) []Block {
	var out []Block
	for _, chunk := range markdown.Chunk(b.Content, r.limit) {
		body := &RichTextBody{RichText: r.richText(chunk)}
		block := Block{Object: "block", Type: string(b.Kind)}
		if b.Kind == types.BulletedListItem {
			block.BulletedListItem = body
		} else {
			block.NumberedListItem = body
		}
		out = append(out, block)
	}
	return out
}

func (r *Renderer) paragraphBlocks(text string) []Block {
	var out []Block
	for _, chunk := range markdown.Chunk(text, r.limit) {
		out = append(out, Block{
			Object:    "block",
			Type:      "paragraph",
			Paragraph: &RichTextBody{RichText: r.richText(chunk)},
		})
	}
	return out
}

// richText converts a possibly multi-line chunk into rich-text elements.
// Each line is scanned for inline math; an explicit newline text element
// separates consecutive lines so Notion preserves the breaks.
func (r *Renderer) richText(chunk string) []RichText {
	lines := strings.Split(chunk, "\n")

	var out []RichText
	for i, line := range lines {
		for _, span := range markdown.ScanLine(line) {
			out = append(out, spanToRichText(span))
		}
		if i < len(lines)-1 {
			out = append(out, RichText{Type: "text", Text: &TextContent{Content: "\n"}})
		}
	}

	if len(out) == 0 {
		return []RichText{{Type: "text", Text: &TextContent{Content: chunk}}}
	}
	return out
}

func spanToRichText(span types.Span) RichText {
	if span.Kind == types.MathExpression {
		return RichText{Type: "equation", Equation: &EquationBody{Expression: span.Text}}
	}
	return RichText{Type: "text", Text: &TextContent{Content: span.Text}}
}

func truncate(s string, limit int) string {
	if len(s) > limit {
		return s[:limit]
	}
	return s
}
