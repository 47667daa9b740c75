// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ledger

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

// ExportYAML writes all ledger entries to w as a YAML document, newest
// first. Used by the "ledger export" subcommand for backups and scripting.
func (s *Store) ExportYAML(w io.Writer) error {
	notes, err := s.List()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(notes)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
