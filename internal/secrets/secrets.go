// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads API credentials from a directory of plain-text key
// files: the filename is the key name and the file contents (trimmed) are
// the value. Only the key names notesmith understands are read; anything
// else in the directory is ignored.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// knownKeys lists the credential files notesmith reads from the secrets
// directory.
var knownKeys = []string{
	"google-api-key",
	"notion-api-key",
	"notion-database-id",
}

// Load reads the known key files under dir and returns a map of key name to
// trimmed contents. A missing directory or missing key files are not errors;
// Load returns whatever keys are present. Unreadable key files produce a
// warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, name := range knownKeys {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			}
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
