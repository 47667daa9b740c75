// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/notesmith/internal/ledger"
)

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "Inspect the record of pushed notes",
	Long: `Ledger manages the local SQLite record of transcribed and pushed notes.
Use subcommands to list entries or export them.`,
}

// --- list subcommand ---

var ledgerListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded notes, newest first",
	RunE:  runLedgerList,
}

func runLedgerList(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	notes, err := store.List()
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(notes)
	}

	if len(notes) == 0 {
		fmt.Println("No notes recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-24s  %-11s  %-12s  %-19s  %s\n",
		"Note", "Status", "SHA256", "Created", "Page")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, n := range notes {
		id := n.ID
		if len(id) > 24 {
			id = id[:21] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-24s  %-11s  %-12s  %-19s  %s\n",
			id, n.Status, shortDigest(n.SHA256), n.CreatedAt.Format("2006-01-02 15:04:05"), n.PageURL)
	}

	fmt.Fprintf(os.Stdout, "\n%d notes\n", len(notes))
	return nil
}

// --- export subcommand ---

var ledgerExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to YAML",
	RunE:  runLedgerExport,
}

func runLedgerExport(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		return store.ExportYAML(os.Stdout)
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating %s: %w", output, err)
	}
	defer f.Close()

	if err := store.ExportYAML(f); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported to %s\n", output)
	return nil
}

// --- shared helpers ---

func openStore() (*ledger.Store, error) {
	return ledger.Open(loadConfig().Pipeline.StateDir)
}

// shortDigest abbreviates a digest for the listing. Digests recorded by the
// pipeline are 64 hex characters, but a hand-edited database may hold
// shorter values.
func shortDigest(sha string) string {
	if len(sha) > 12 {
		return sha[:12]
	}
	return sha
}

func init() {
	ledgerListCmd.Flags().Bool("json", false, "output entries as JSON")
	ledgerExportCmd.Flags().StringP("output", "o", "", "write YAML to a file instead of stdout")

	ledgerCmd.AddCommand(ledgerListCmd)
	ledgerCmd.AddCommand(ledgerExportCmd)

	rootCmd.AddCommand(ledgerCmd)
}
