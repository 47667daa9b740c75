// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// TranscriptionConfig holds settings for the Gemini transcription stage.
type TranscriptionConfig struct {
	// Model is the Gemini model identifier (e.g. "gemini-2.0-flash").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the Generative Language API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// UploadTimeout is the maximum time to wait for an uploaded PDF to
	// become ACTIVE on the provider side.
	UploadTimeout time.Duration `json:"upload_timeout" yaml:"upload_timeout"`

	// PollInterval is the delay between file-state checks while waiting.
	PollInterval time.Duration `json:"poll_interval" yaml:"poll_interval"`

	// MaxFileSizeMB is the maximum accepted PDF size in megabytes.
	MaxFileSizeMB int64 `json:"max_file_size_mb" yaml:"max_file_size_mb"`

	// MaxRetries is the number of retry attempts for rate-limited API calls.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// NotionConfig holds settings for the Notion page-creation stage.
type NotionConfig struct {
	// Token is the Notion integration token.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// DatabaseID is the target Notion database for created pages.
	DatabaseID string `json:"database_id" yaml:"database_id"`

	// BlockLimit is the maximum number of characters per Notion block.
	BlockLimit int `json:"block_limit" yaml:"block_limit"`

	// MaxRetries is the number of retry attempts for rate-limited API calls.
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// PipelineConfig holds settings shared across the push pipeline.
type PipelineConfig struct {
	// BackupDir is the directory for local Markdown backups written when
	// page creation fails.
	BackupDir string `json:"backup_dir" yaml:"backup_dir"`

	// StateDir is the directory holding the ledger database.
	StateDir string `json:"state_dir" yaml:"state_dir"`
}

// Config groups all stage configurations.
type Config struct {
	Transcription TranscriptionConfig `json:"transcription" yaml:"transcription"`
	Notion        NotionConfig        `json:"notion" yaml:"notion"`
	Pipeline      PipelineConfig      `json:"pipeline" yaml:"pipeline"`
}

// DefaultConfig returns the configuration defaults used when no config file
// or flags override them.
func DefaultConfig() Config {
	return Config{
		Transcription: TranscriptionConfig{
			Model:         "gemini-2.0-flash",
			UploadTimeout: 120 * time.Second,
			PollInterval:  2 * time.Second,
			MaxFileSizeMB: 50,
			MaxRetries:    5,
		},
		Notion: NotionConfig{
			BlockLimit: 2000,
			MaxRetries: 5,
		},
		Pipeline: PipelineConfig{
			BackupDir: "backups",
			StateDir:  ".notesmith",
		},
	}
}
