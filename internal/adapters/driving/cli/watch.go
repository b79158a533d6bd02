package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
)

var watchNoInitial bool

var watchCmd = &cobra.Command{
	Use:   "watch <path>...",
	Short: "Keep the index in sync with HTML files",
	Long: `Indexes the given files and directories, then watches them and
re-indexes files as they are created or changed. Deleted files are removed
from the index. Events are throttled by the watch.rate and watch.burst
settings. Stop with Ctrl+C.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().BoolVar(&watchNoInitial, "no-initial", false, "skip indexing existing files on start")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := requireDocuments(); err != nil {
		return err
	}
	if err := requireSettings(); err != nil {
		return err
	}
	if newWatcher == nil {
		return errors.New("file watcher not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	ctx, stop := notifyContext(cmd)
	defer stop()

	out := cmd.OutOrStdout()
	if !watchNoInitial {
		for _, path := range args {
			err := documentService.IndexAll(ctx, path, func(r driving.IndexResult) {
				if r.Err != nil {
					fmt.Fprintf(out, "  ✗ %s: %v\n", r.Path, r.Err)
				}
			})
			if err != nil {
				return fmt.Errorf("index %s: %w", path, err)
			}
		}
	}

	watcher := newWatcher(settings.Watch)
	defer func() { _ = watcher.Close() }()

	changes, err := watcher.Watch(ctx, args...)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}

	cmd.Printf("Watching %d paths. Press Ctrl+C to stop.\n", len(args))
	for change := range changes {
		handleChange(ctx, out, change)
	}
	return nil
}

// handleChange applies one file change to the index and reports it.
func handleChange(ctx context.Context, out io.Writer, change domain.FileChange) {
	var err error
	switch change.Type {
	case domain.ChangeCreated, domain.ChangeUpdated:
		_, err = documentService.Index(ctx, change.Path)
	case domain.ChangeDeleted:
		err = documentService.Remove(ctx, change.Path)
		if errors.Is(err, domain.ErrNotFound) {
			err = nil
		}
	default:
		return
	}

	if err != nil {
		fmt.Fprintf(out, "  ✗ %s %s: %v\n", change.Type, change.Path, err)
		return
	}
	fmt.Fprintf(out, "  ✓ %s %s\n", change.Type, change.Path)
}
