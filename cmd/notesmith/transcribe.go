// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notesmith/internal/transcribe"
)

var transcribeCmd = &cobra.Command{
	Use:   "transcribe <pdf>",
	Short: "Transcribe a PDF of notes to LaTeX-annotated Markdown",
	Long: `Transcribe uploads the PDF to Gemini and prints the transcription as
Markdown with LaTeX math, without touching Notion. Useful for checking
the model output before pushing, or for keeping a local copy.`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscribe,
}

func runTranscribe(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	if cfg.Transcription.APIKey == "" {
		return fmt.Errorf("Google API key required: set GOOGLE_API_KEY or .secrets/google-api-key")
	}

	backend := &transcribe.GeminiBackend{
		APIKey: cfg.Transcription.APIKey,
		Config: cfg.Transcription,
		Log:    log,
	}

	markdown, err := transcribe.TranscribePDF(context.Background(), backend, args[0], cfg.Transcription, log)
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Println(markdown)
		return nil
	}
	if err := os.WriteFile(output, []byte(markdown), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	fmt.Fprintf(os.Stderr, "Transcription written to %s\n", output)
	return nil
}

func init() {
	transcribeCmd.Flags().StringP("output", "o", "", "write the Markdown to a file instead of stdout")

	rootCmd.AddCommand(transcribeCmd)
}
