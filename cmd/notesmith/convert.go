// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notesmith/internal/markdown"
	"github.com/pdiddy/notesmith/internal/notion"
)

var convertCmd = &cobra.Command{
	Use:   "convert [markdown-file]",
	Short: "Convert LaTeX-annotated Markdown to Notion block JSON",
	Long: `Convert parses Markdown (from a file, or stdin when no file is given)
into the Notion block payload the push command would send, and prints it
as JSON. Useful for inspecting how a transcription will render.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	var source []byte
	var err error
	if len(args) == 1 {
		source, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading %s: %w", args[0], err)
		}
	} else {
		source, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	blockLimit, _ := cmd.Flags().GetInt("block-limit")
	if blockLimit <= 0 {
		blockLimit = loadConfig().Notion.BlockLimit
	}

	renderer := notion.NewRenderer(blockLimit)
	blocks := renderer.Render(markdown.Tokenize(string(source)))

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(blocks)
}

func init() {
	convertCmd.Flags().Int("block-limit", 0, "maximum characters per block (0 = use config)")

	rootCmd.AddCommand(convertCmd)
}
