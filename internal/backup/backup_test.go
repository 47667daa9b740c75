// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package backup

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "backups")

	path, err := Save(dir, "lecture_01", "notes/lecture_01.pdf", "# Notes\n\nContent.")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "lecture_01.md"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "---\n"), "backup starts with frontmatter")
	assert.Contains(t, content, "title: lecture_01")
	assert.Contains(t, content, "source_pdf: notes/lecture_01.pdf")
	assert.Contains(t, content, "saved_at:")
	assert.True(t, strings.HasSuffix(content, "# Notes\n\nContent."), "markdown body is preserved")
}

func TestSaveSanitizesTitle(t *testing.T) {
	dir := t.TempDir()

	path, err := Save(dir, "week 3: Fourier/Laplace?", "w3.pdf", "body")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "week 3_ Fourier_Laplace_.md"), path)
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"with spaces-and_mixed", "with spaces-and_mixed"},
		{"slash/back\\slash", "slash_back_slash"},
		{"émigré", "_migr_"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SanitizeTitle(tt.in); got != tt.want {
			t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
