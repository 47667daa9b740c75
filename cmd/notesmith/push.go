// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notesmith/internal/ledger"
	"github.com/pdiddy/notesmith/internal/notion"
	"github.com/pdiddy/notesmith/internal/pipeline"
	"github.com/pdiddy/notesmith/internal/transcribe"
)

var pushCmd = &cobra.Command{
	Use:   "push <pdf>",
	Short: "Transcribe a PDF of notes and create a Notion page from it",
	Long: `Push runs the full pipeline on one PDF: validate, transcribe with Gemini,
parse the Markdown into Notion blocks, and create a page in the configured
Notion database. Successful pushes are recorded in the local ledger and
skipped on subsequent runs unless --force is given. When page creation
fails the transcription is saved to the backup directory so the upload can
be retried without re-transcribing by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: runPush,
}

func runPush(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()

	if databaseID, _ := cmd.Flags().GetString("database-id"); databaseID != "" {
		cfg.Notion.DatabaseID = databaseID
	}

	if cfg.Transcription.APIKey == "" {
		return fmt.Errorf("Google API key required: set GOOGLE_API_KEY or .secrets/google-api-key")
	}
	if cfg.Notion.Token == "" {
		return fmt.Errorf("Notion token required: set NOTION_API_KEY or .secrets/notion-api-key")
	}
	if cfg.Notion.DatabaseID == "" {
		return fmt.Errorf("Notion database required: set NOTION_DATABASE_ID, .secrets/notion-database-id, or --database-id")
	}

	store, err := ledger.Open(cfg.Pipeline.StateDir)
	if err != nil {
		return err
	}
	defer store.Close()

	title, _ := cmd.Flags().GetString("title")
	force, _ := cmd.Flags().GetBool("force")

	p := &pipeline.Pipeline{
		Backend: &transcribe.GeminiBackend{
			APIKey: cfg.Transcription.APIKey,
			Config: cfg.Transcription,
			Log:    log,
		},
		Notion: &notion.Client{
			Token:      cfg.Notion.Token,
			MaxRetries: cfg.Notion.MaxRetries,
		},
		Store:  store,
		Config: cfg,
		Log:    log,
	}

	res, err := p.Push(context.Background(), args[0], title, force)
	if err != nil {
		if res.BackupPath != "" {
			fmt.Fprintf(os.Stderr, "Transcription saved to %s\n", res.BackupPath)
		}
		return err
	}

	if res.Skipped {
		fmt.Printf("Already pushed: %s\n", res.Note.PageURL)
		return nil
	}
	fmt.Printf("Created page %q (%d blocks): %s\n", res.Note.Title, res.Blocks, res.Note.PageURL)
	return nil
}

func init() {
	pushCmd.Flags().String("title", "", "page title (default: PDF filename)")
	pushCmd.Flags().String("database-id", "", "target Notion database (overrides config)")
	pushCmd.Flags().Bool("force", false, "push even if this PDF was already pushed")

	rootCmd.AddCommand(pushCmd)
}
