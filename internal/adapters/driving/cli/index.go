package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

var indexCmd = &cobra.Command{
	Use:   "index <path>...",
	Short: "Add HTML files to the index",
	Long: `Parses HTML files and stores their title, text and chunks in the index.
Directories are walked recursively. Hidden files and directories are
skipped. Re-indexing a file replaces its previous entry.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runIndex,
}

func init() {
	rootCmd.AddCommand(indexCmd)
}

func runIndex(cmd *cobra.Command, args []string) error {
	if err := requireDocuments(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	indexed, failed := 0, 0
	report := func(r driving.IndexResult) {
		if r.Err != nil {
			failed++
			fmt.Fprintf(out, "  ✗ %s: %v\n", r.Path, r.Err)
			return
		}
		indexed++
		fmt.Fprintf(out, "  ✓ %s (%s)\n", r.Path, r.Document.Title)
	}

	for _, path := range args {
		if err := documentService.IndexAll(cmd.Context(), path, report); err != nil {
			return fmt.Errorf("index %s: %w", path, err)
		}
	}

	fmt.Fprintf(out, "\nIndexed %d files", indexed)
	if failed > 0 {
		fmt.Fprintf(out, ", %d failed\n", failed)
		return fmt.Errorf("%d files could not be indexed", failed)
	}
	fmt.Fprintln(out, ".")
	return nil
}
