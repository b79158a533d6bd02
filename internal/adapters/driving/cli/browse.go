package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [file]",
	Short: "Explore HTML or the index interactively",
	Long: `Opens a terminal UI. With a file, its node tree is shown beside the
details of the selected node. Without one, the list of indexed documents
is shown. Press ? for key bindings.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if err := requireMarkup(); err != nil {
		return err
	}

	var html string
	if len(args) > 0 {
		var err error
		if html, err = readInput(cmd, args); err != nil {
			return err
		}
	}

	app, err := tui.NewApp(&tui.Ports{
		Markup:   markupService,
		Document: documentService,
	}, html)
	if err != nil {
		return err
	}
	return app.WithContext(cmd.Context()).Run()
}
