// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"reflect"
	"testing"

	"github.com/pdiddy/notesmith/pkg/types"
)

func TestTokenizeHeadings(t *testing.T) {
	blocks := Tokenize("# A\n## B\n### C")

	want := []types.SemanticBlock{
		{Kind: types.Heading1, Content: "A", Level: 1},
		{Kind: types.Heading2, Content: "B", Level: 2},
		{Kind: types.Heading3, Content: "C", Level: 3},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Tokenize() = %+v, want %+v", blocks, want)
	}
}

func TestTokenizeEquationBetweenParagraphs(t *testing.T) {
	blocks := Tokenize("Text before\n$$\n\\int x dx\n$$\nText after")

	want := []types.SemanticBlock{
		{Kind: types.Paragraph, Content: "Text before"},
		{Kind: types.Equation, Content: "\\int x dx"},
		{Kind: types.Paragraph, Content: "Text after"},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Tokenize() = %+v, want %+v", blocks, want)
	}
}

func TestTokenizeLists(t *testing.T) {
	blocks := Tokenize("- Item 1\n- Item 2\n\n1. First\n2. Second")

	want := []types.SemanticBlock{
		{Kind: types.BulletedListItem, Content: "Item 1"},
		{Kind: types.BulletedListItem, Content: "Item 2"},
		{Kind: types.NumberedListItem, Content: "First"},
		{Kind: types.NumberedListItem, Content: "Second"},
	}
	if !reflect.DeepEqual(blocks, want) {
		t.Errorf("Tokenize() = %+v, want %+v", blocks, want)
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []types.SemanticBlock
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "blank lines only",
			input: "\n\n   \n",
			want:  nil,
		},
		{
			name:  "star bullets",
			input: "* one\n* two",
			want: []types.SemanticBlock{
				{Kind: types.BulletedListItem, Content: "one"},
				{Kind: types.BulletedListItem, Content: "two"},
			},
		},
		{
			name:  "paragraph accumulates consecutive lines",
			input: "first line\n  second line  \nthird line",
			want: []types.SemanticBlock{
				{Kind: types.Paragraph, Content: "first line\nsecond line\nthird line"},
			},
		},
		{
			name:  "blank line separates paragraphs",
			input: "one\n\ntwo",
			want: []types.SemanticBlock{
				{Kind: types.Paragraph, Content: "one"},
				{Kind: types.Paragraph, Content: "two"},
			},
		},
		{
			name:  "heading terminates paragraph without swallowing it",
			input: "intro text\n# Title",
			want: []types.SemanticBlock{
				{Kind: types.Paragraph, Content: "intro text"},
				{Kind: types.Heading1, Content: "Title", Level: 1},
			},
		},
		{
			name:  "unterminated equation consumes to end of input",
			input: "$$\nE = mc^2\nmore math",
			want: []types.SemanticBlock{
				{Kind: types.Equation, Content: "E = mc^2\nmore math"},
			},
		},
		{
			name:  "equation content keeps inner lines verbatim",
			input: "$$\n  a + b\n  c + d\n$$",
			want: []types.SemanticBlock{
				{Kind: types.Equation, Content: "a + b\n  c + d"},
			},
		},
		{
			name:  "heading without space is a paragraph",
			input: "#NoSpace",
			want: []types.SemanticBlock{
				{Kind: types.Paragraph, Content: "#NoSpace"},
			},
		},
		{
			name: "numbered item detection is lexical",
			// A sentence with a leading digit and ". " anywhere also
			// classifies as a numbered item. Known quirk, kept on purpose.
			input: "3 is prime. Obviously",
			want: []types.SemanticBlock{
				{Kind: types.NumberedListItem, Content: "Obviously"},
			},
		},
		{
			name:  "list item keeps inline math",
			input: "- energy $E = mc^2$",
			want: []types.SemanticBlock{
				{Kind: types.BulletedListItem, Content: "energy $E = mc^2$"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestTokenizeOrderPreserved(t *testing.T) {
	input := "# Notes\n\nIntro paragraph\n\n$$\nx^2\n$$\n\n- bullet\n1. numbered\n\nClosing"
	blocks := Tokenize(input)

	wantKinds := []types.BlockKind{
		types.Heading1,
		types.Paragraph,
		types.Equation,
		types.BulletedListItem,
		types.NumberedListItem,
		types.Paragraph,
	}
	if len(blocks) != len(wantKinds) {
		t.Fatalf("len(blocks) = %d, want %d (%+v)", len(blocks), len(wantKinds), blocks)
	}
	for i, kind := range wantKinds {
		if blocks[i].Kind != kind {
			t.Errorf("blocks[%d].Kind = %q, want %q", i, blocks[i].Kind, kind)
		}
	}
}
