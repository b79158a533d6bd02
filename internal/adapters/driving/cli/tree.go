package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/tui/views/tree"
	"github.com/custodia-labs/hyperless/internal/markup"
)

var (
	treeAll      bool
	treeComments bool
	treeStrays   bool
	treeNoColor  bool
)

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Print the node tree of HTML",
	Long: `Parses HTML from a file or standard input and prints one line per node,
indented by depth. Whitespace-only text, comments and stray closing tags
are hidden unless requested.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	treeCmd.Flags().BoolVarP(&treeAll, "all", "a", false, "show every node, including whitespace-only text")
	treeCmd.Flags().BoolVar(&treeComments, "comments", false, "show comments")
	treeCmd.Flags().BoolVar(&treeStrays, "strays", false, "show stray closing tags")
	treeCmd.Flags().BoolVar(&treeNoColor, "no-color", false, "disable colours")

	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	if err := requireMarkup(); err != nil {
		return err
	}
	html, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	var s *styles.Styles
	if !treeNoColor && isTerminal(cmd) {
		s = styles.DefaultStyles()
	}

	out := cmd.OutOrStdout()
	emit := func(n *markup.Node, depth int) {
		line := tree.Label(n)
		if s != nil {
			line = s.Node(n.Type()).Render(line)
		}
		fmt.Fprintln(out, strings.Repeat("  ", depth)+line)
	}

	root := markupService.Parse(html)
	emit(root, 0)
	depth := map[*markup.Node]int{root: 0}
	root.Traverse(func(n *markup.Node) bool {
		depth[n] = depth[n.Parent()] + 1
		if showInTree(n) {
			emit(n, depth[n])
		}
		return true
	})
	return nil
}

func showInTree(n *markup.Node) bool {
	if treeAll {
		return true
	}
	switch n.Type() {
	case markup.TextNode:
		return !tree.IsBlank(n)
	case markup.CommentNode:
		return treeComments
	case markup.StrayNode:
		return treeStrays
	default:
		return true
	}
}

// isTerminal reports whether the command writes to a terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
