// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdf validates PDF files before they are uploaded for
// transcription.
package pdf

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var (
	// ErrNotPDF indicates the file does not have a .pdf extension.
	ErrNotPDF = errors.New("file is not a PDF")

	// ErrTooLarge indicates the file exceeds the configured size limit.
	ErrTooLarge = errors.New("PDF exceeds size limit")

	// ErrUnreadable indicates the file could not be parsed as a PDF.
	ErrUnreadable = errors.New("PDF could not be parsed")
)

// TinyFileThreshold is the size in bytes below which a PDF is suspicious
// (likely empty or corrupted). Callers warn but proceed.
const TinyFileThreshold = 1024

// pageCount reports the page count of a PDF file. Declared as a var so
// tests can substitute a fake instead of crafting real PDF fixtures.
var pageCount = api.PageCountFile

// Info describes a validated PDF.
type Info struct {
	// SizeBytes is the file size on disk.
	SizeBytes int64

	// Pages is the page count reported by the PDF structure.
	Pages int
}

// Validate checks that path names an existing, structurally sound PDF no
// larger than maxSizeMB megabytes. The returned Info carries size and page
// count for logging.
func Validate(path string, maxSizeMB int64) (Info, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Info{}, fmt.Errorf("PDF not found: %s", path)
	}

	if ext := strings.ToLower(filepath.Ext(path)); ext != ".pdf" {
		return Info{}, fmt.Errorf("%w: got extension %q", ErrNotPDF, ext)
	}

	if maxSizeMB > 0 && fi.Size() > maxSizeMB*1024*1024 {
		return Info{}, fmt.Errorf("%w: %.1fMB (max %dMB)",
			ErrTooLarge, float64(fi.Size())/(1024*1024), maxSizeMB)
	}

	pages, err := pageCount(path)
	if err != nil {
		return Info{}, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}

	return Info{SizeBytes: fi.Size(), Pages: pages}, nil
}
