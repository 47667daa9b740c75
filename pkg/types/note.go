// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// NoteStatus indicates how far a note made it through the pipeline.
type NoteStatus string

const (
	StatusTranscribed NoteStatus = "transcribed"
	StatusPushed      NoteStatus = "pushed"
	StatusFailed      NoteStatus = "failed"
)

// Note holds metadata for one processed PDF of notes.
type Note struct {
	// ID is a slug derived from the PDF filename (e.g. "lecture_01").
	ID string `json:"id" yaml:"id"`

	// PDFPath is the local filesystem path to the source PDF.
	PDFPath string `json:"pdf_path" yaml:"pdf_path"`

	// SHA256 is the hex digest of the PDF contents, used to detect
	// already-pushed files.
	SHA256 string `json:"sha256" yaml:"sha256"`

	// Title is the Notion page title.
	Title string `json:"title" yaml:"title"`

	// PageURL is the URL of the created Notion page, if any.
	PageURL string `json:"page_url,omitempty" yaml:"page_url,omitempty"`

	// Status tracks the pipeline outcome for this note.
	Status NoteStatus `json:"status" yaml:"status"`

	// CreatedAt is when the note was recorded.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
