// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package transcribe turns PDFs of handwritten notes into LaTeX-annotated
// Markdown through a multimodal transcription backend.
package transcribe

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/notesmith/internal/pdf"
	"github.com/pdiddy/notesmith/pkg/types"
)

// minTranscriptionLength is the trimmed length below which a transcription
// is suspicious (empty scan, image-only PDF).
const minTranscriptionLength = 10

// validate checks the PDF before upload. Declared as a var so tests can
// substitute a fake instead of shipping real PDF fixtures.
var validate = pdf.Validate

// Backend abstracts the transcription provider so tests can supply a mock.
type Backend interface {
	// Transcribe converts the PDF at pdfPath into Markdown with LaTeX math.
	Transcribe(ctx context.Context, pdfPath string) (string, error)
}

// TranscribePDF validates the PDF and runs it through the backend. Very
// small inputs and very short outputs are logged as warnings but returned:
// the caller decides whether a thin transcription is worth pushing.
func TranscribePDF(ctx context.Context, backend Backend, pdfPath string, cfg types.TranscriptionConfig, log *logrus.Logger) (string, error) {
	info, err := validate(pdfPath, cfg.MaxFileSizeMB)
	if err != nil {
		return "", err
	}

	if info.SizeBytes < pdf.TinyFileThreshold {
		log.Warnf("%s is very small (%d bytes); it may be empty or corrupted", pdfPath, info.SizeBytes)
	}
	log.Infof("transcribing %s (%d pages)", pdfPath, info.Pages)

	markdown, err := backend.Transcribe(ctx, pdfPath)
	if err != nil {
		return "", fmt.Errorf("transcribing %s: %w", pdfPath, err)
	}

	if len(strings.TrimSpace(markdown)) < minTranscriptionLength {
		log.Warn("transcription is very short or empty; the PDF may contain only images")
	}

	return markdown, nil
}
