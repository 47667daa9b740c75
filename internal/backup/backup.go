// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package backup writes transcribed Markdown to local files so a failed
// Notion push never loses a transcription.
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

// frontmatter is the metadata block prepended to every backup file.
type frontmatter struct {
	Title     string `yaml:"title"`
	SourcePDF string `yaml:"source_pdf"`
	SavedAt   string `yaml:"saved_at"`
}

// Save writes markdown to dir/<sanitized title>.md with YAML frontmatter
// and returns the written path. The directory is created if needed.
func Save(dir, title, sourcePDF, markdown string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}

	meta, err := yaml.Marshal(frontmatter{
		Title:     title,
		SourcePDF: sourcePDF,
		SavedAt:   time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return "", fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n\n")
	b.WriteString(markdown)

	path := filepath.Join(dir, SanitizeTitle(title)+".md")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("writing backup: %w", err)
	}
	return path, nil
}

// SanitizeTitle replaces filesystem-unfriendly characters with underscores,
// keeping letters, digits, spaces, dashes, and underscores.
func SanitizeTitle(title string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, title)
}
