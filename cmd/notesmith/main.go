// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the notesmith CLI, which transcribes
// handwritten PDF notes with Gemini and publishes them as Notion pages.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/notesmith/internal/secrets"
	"github.com/pdiddy/notesmith/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the shared logger; its level is set from the --log-level flag.
var log = logrus.New()

// loadedSecrets holds API credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// credential resolves an API credential: environment variables (including
// values loaded from .env) win over .secrets/ files.
func credential(envVar, secretKey string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	return loadedSecrets[secretKey]
}

// rootCmd is the base command for the notesmith CLI.
var rootCmd = &cobra.Command{
	Use:   "notesmith",
	Short: "Publish handwritten PDF notes to Notion as typeset pages",
	Long: `notesmith turns PDFs of handwritten notes into Notion pages. A multimodal
model transcribes the scan into LaTeX-annotated Markdown, which is parsed
into Notion blocks (headings, paragraphs, lists, equations) and pushed to a
Notion database.

Each pipeline stage is also available as its own subcommand: transcribe
produces the Markdown, convert turns Markdown into Notion block JSON, and
ledger inspects the record of pushed notes.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; absence is not an error.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}

		levelName, _ := cmd.Flags().GetString("log-level")
		level, err := logrus.ParseLevel(levelName)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", levelName, err)
		}
		log.SetLevel(level)
		log.SetOutput(os.Stderr)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./notesmith.yaml or ~/.config/notesmith/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, or error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("notesmith")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "notesmith"))
		}
	}

	viper.SetEnvPrefix("NOTESMITH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	defaults := types.DefaultConfig()
	viper.SetDefault("transcription.model", defaults.Transcription.Model)
	viper.SetDefault("transcription.upload_timeout", defaults.Transcription.UploadTimeout)
	viper.SetDefault("transcription.poll_interval", defaults.Transcription.PollInterval)
	viper.SetDefault("transcription.max_file_size_mb", defaults.Transcription.MaxFileSizeMB)
	viper.SetDefault("transcription.max_retries", defaults.Transcription.MaxRetries)
	viper.SetDefault("notion.database_id", defaults.Notion.DatabaseID)
	viper.SetDefault("notion.block_limit", defaults.Notion.BlockLimit)
	viper.SetDefault("notion.max_retries", defaults.Notion.MaxRetries)
	viper.SetDefault("pipeline.backup_dir", defaults.Pipeline.BackupDir)
	viper.SetDefault("pipeline.state_dir", defaults.Pipeline.StateDir)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig assembles the effective configuration from config file, env,
// and credentials.
func loadConfig() types.Config {
	var cfg types.Config

	cfg.Transcription.Model = viper.GetString("transcription.model")
	cfg.Transcription.UploadTimeout = viper.GetDuration("transcription.upload_timeout")
	cfg.Transcription.PollInterval = viper.GetDuration("transcription.poll_interval")
	cfg.Transcription.MaxFileSizeMB = viper.GetInt64("transcription.max_file_size_mb")
	cfg.Transcription.MaxRetries = viper.GetInt("transcription.max_retries")
	cfg.Transcription.APIKey = credential("GOOGLE_API_KEY", "google-api-key")

	cfg.Notion.DatabaseID = viper.GetString("notion.database_id")
	cfg.Notion.BlockLimit = viper.GetInt("notion.block_limit")
	cfg.Notion.MaxRetries = viper.GetInt("notion.max_retries")
	cfg.Notion.Token = credential("NOTION_API_KEY", "notion-api-key")
	if cfg.Notion.DatabaseID == "" {
		cfg.Notion.DatabaseID = credential("NOTION_DATABASE_ID", "notion-database-id")
	}

	cfg.Pipeline.BackupDir = viper.GetString("pipeline.backup_dir")
	cfg.Pipeline.StateDir = viper.GetString("pipeline.state_dir")

	return cfg
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
