// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pdf

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePDF creates a fake .pdf file of the given size and returns its path.
func writePDF(t *testing.T, name string, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	return path
}

// fakePageCount substitutes the pdfcpu page counter for the duration of a test.
func fakePageCount(t *testing.T, pages int, err error) {
	t.Helper()
	old := pageCount
	pageCount = func(string) (int, error) { return pages, err }
	t.Cleanup(func() { pageCount = old })
}

func TestValidate(t *testing.T) {
	fakePageCount(t, 3, nil)

	path := writePDF(t, "notes.pdf", 2048)
	info, err := Validate(path, 50)
	require.NoError(t, err)

	assert.Equal(t, int64(2048), info.SizeBytes)
	assert.Equal(t, 3, info.Pages)
}

func TestValidateMissingFile(t *testing.T) {
	_, err := Validate(filepath.Join(t.TempDir(), "missing.pdf"), 50)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PDF not found")
}

func TestValidateWrongExtension(t *testing.T) {
	fakePageCount(t, 1, nil)

	path := writePDF(t, "notes.txt", 100)
	_, err := Validate(path, 50)
	assert.ErrorIs(t, err, ErrNotPDF)
}

func TestValidateTooLarge(t *testing.T) {
	fakePageCount(t, 1, nil)

	path := writePDF(t, "big.pdf", 2*1024*1024)
	_, err := Validate(path, 1)
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestValidateUnreadable(t *testing.T) {
	fakePageCount(t, 0, errors.New("xref table corrupt"))

	path := writePDF(t, "broken.pdf", 100)
	_, err := Validate(path, 50)
	assert.ErrorIs(t, err, ErrUnreadable)
	assert.Contains(t, err.Error(), "xref table corrupt")
}

func TestValidateNoSizeLimit(t *testing.T) {
	fakePageCount(t, 1, nil)

	path := writePDF(t, "any.pdf", 4096)
	info, err := Validate(path, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4096), info.SizeBytes)
}
