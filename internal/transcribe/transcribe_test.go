// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package transcribe

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notesmith/internal/pdf"
	"github.com/pdiddy/notesmith/pkg/types"
)

type mockBackend struct {
	markdown string
	err      error
	calls    int
}

func (m *mockBackend) Transcribe(_ context.Context, _ string) (string, error) {
	m.calls++
	return m.markdown, m.err
}

func fakeValidate(t *testing.T, info pdf.Info, err error) {
	t.Helper()
	old := validate
	validate = func(string, int64) (pdf.Info, error) { return info, err }
	t.Cleanup(func() { validate = old })
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestTranscribePDF(t *testing.T) {
	fakeValidate(t, pdf.Info{SizeBytes: 4096, Pages: 2}, nil)

	backend := &mockBackend{markdown: "# Lecture 1\n\nSome content here."}
	got, err := TranscribePDF(context.Background(), backend, "notes.pdf", types.TranscriptionConfig{}, quietLogger())

	require.NoError(t, err)
	assert.Equal(t, "# Lecture 1\n\nSome content here.", got)
	assert.Equal(t, 1, backend.calls)
}

func TestTranscribePDFValidationError(t *testing.T) {
	fakeValidate(t, pdf.Info{}, pdf.ErrNotPDF)

	backend := &mockBackend{markdown: "should not be called"}
	_, err := TranscribePDF(context.Background(), backend, "notes.txt", types.TranscriptionConfig{}, quietLogger())

	assert.ErrorIs(t, err, pdf.ErrNotPDF)
	assert.Zero(t, backend.calls)
}

func TestTranscribePDFBackendError(t *testing.T) {
	fakeValidate(t, pdf.Info{SizeBytes: 4096, Pages: 1}, nil)

	backend := &mockBackend{err: errors.New("quota exhausted")}
	_, err := TranscribePDF(context.Background(), backend, "notes.pdf", types.TranscriptionConfig{}, quietLogger())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exhausted")
}

func TestTranscribePDFShortOutputIsReturned(t *testing.T) {
	fakeValidate(t, pdf.Info{SizeBytes: 100, Pages: 1}, nil)

	// Short or empty transcriptions warn but still come back to the caller.
	backend := &mockBackend{markdown: "  "}
	got, err := TranscribePDF(context.Background(), backend, "notes.pdf", types.TranscriptionConfig{}, quietLogger())

	require.NoError(t, err)
	assert.Equal(t, "  ", got)
}
