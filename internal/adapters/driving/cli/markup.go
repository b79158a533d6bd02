package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
	"github.com/custodia-labs/hyperless/internal/markup"
)

var (
	renderComments bool
	renderStrays   bool

	excerptMaxLength int
	excerptSuffix    string

	attrsTag  string
	attrsJSON bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Parse HTML and print it as normalised markup",
	Long: `Parses HTML from a file or standard input and writes it back.

Tag names are lower-cased, attributes are re-quoted and unclosed elements
are closed. Comments and stray closing tags are dropped unless requested.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

var textCmd = &cobra.Command{
	Use:   "text [file]",
	Short: "Print the readable text of HTML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runText,
}

var excerptCmd = &cobra.Command{
	Use:   "excerpt [file]",
	Short: "Print a short excerpt of the text of HTML",
	Long: `Prints an excerpt of the readable text, cut at a sentence end when one
is close to the maximum length and at a word boundary otherwise.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExcerpt,
}

var attrsCmd = &cobra.Command{
	Use:   "attrs [file]",
	Short: "List element attributes",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAttrs,
}

func init() {
	renderCmd.Flags().BoolVar(&renderComments, "comments", false, "keep comments")
	renderCmd.Flags().BoolVar(&renderStrays, "strays", false, "keep stray closing tags")

	excerptCmd.Flags().IntVarP(&excerptMaxLength, "max-length", "n", 0, "maximum length (default from config)")
	excerptCmd.Flags().StringVar(&excerptSuffix, "suffix", "", "suffix for shortened text (default from config)")

	attrsCmd.Flags().StringVarP(&attrsTag, "tag", "t", "", "only elements with this tag")
	attrsCmd.Flags().BoolVar(&attrsJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(textCmd)
	rootCmd.AddCommand(excerptCmd)
	rootCmd.AddCommand(attrsCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	if err := requireMarkup(); err != nil {
		return err
	}
	html, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out := markupService.Render(html, markup.RenderOptions{
		Comments: renderComments,
		Strays:   renderStrays,
	})
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runText(cmd *cobra.Command, args []string) error {
	if err := requireMarkup(); err != nil {
		return err
	}
	html, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), markupService.Text(html))
	return nil
}

func runExcerpt(cmd *cobra.Command, args []string) error {
	if err := requireMarkup(); err != nil {
		return err
	}
	html, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	req := driving.ExcerptRequest{MaxLength: excerptMaxLength}
	if cmd.Flags().Changed("suffix") {
		req.Suffix = &excerptSuffix
	}
	fmt.Fprintln(cmd.OutOrStdout(), markupService.Excerpt(html, req))
	return nil
}

func runAttrs(cmd *cobra.Command, args []string) error {
	if err := requireMarkup(); err != nil {
		return err
	}
	html, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	elements := markupService.Attributes(html, attrsTag)
	if attrsJSON {
		data, err := json.MarshalIndent(elements, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal attributes: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	out := cmd.OutOrStdout()
	if len(elements) == 0 {
		fmt.Fprintln(out, "No elements found.")
		return nil
	}
	for _, el := range elements {
		fmt.Fprintln(out, el.Path)
		for _, attr := range el.Attributes {
			fmt.Fprintf(out, "  %s=%q\n", attr.Name, attr.Value)
		}
		if el.Error != "" {
			fmt.Fprintf(out, "  ! %s\n", el.Error)
		}
	}
	return nil
}
