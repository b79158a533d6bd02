// Package cli provides the hyperless command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
	"github.com/custodia-labs/hyperless/internal/core/ports/driving"
	"github.com/custodia-labs/hyperless/internal/logger"
)

// skipServices marks commands that run without the bootstrap.
const skipServices = "skip-services"

// version is set at build time via SetVersion.
var version = "dev"

// Global flags.
var (
	verbose   bool
	configDir string
	dataDir   string
)

// Services used by the commands.
var (
	markupService   driving.MarkupService
	documentService driving.DocumentService
	settingsService driving.SettingsService
	newWatcher      func(domain.WatchSettings) driven.FileWatcher
	closeServices   func() error
)

// Services are the ports the commands use.
type Services struct {
	Markup   driving.MarkupService
	Document driving.DocumentService
	Settings driving.SettingsService

	// NewWatcher creates a file watcher with the given throttling.
	NewWatcher func(domain.WatchSettings) driven.FileWatcher

	// Close releases resources such as the database. May be nil.
	Close func() error
}

// Paths are the directories selected by the global flags.
// Empty values mean the default location.
type Paths struct {
	ConfigDir string
	DataDir   string
}

// Bootstrap builds the services once the global flags are parsed.
type Bootstrap func(Paths) (*Services, error)

var bootstrap Bootstrap

var rootCmd = &cobra.Command{
	Use:   "hyperless",
	Short: "Parse, inspect and index HTML",
	Long: `hyperless is a forgiving HTML parser and indexer.

It parses any HTML into a node tree without ever failing, renders it back
as normalised markup, extracts readable text and excerpts, and keeps an
index of HTML files that can be watched for changes and served over MCP.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.hyperless)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "index directory (default ~/.hyperless/data)")
}

// Execute runs the root command and releases the services afterwards.
func Execute() error {
	err := rootCmd.Execute()
	if closeServices != nil {
		if closeErr := closeServices(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("closing services: %w", closeErr))
		}
		closeServices = nil
	}
	return err
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetBootstrap sets the function that builds the services.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// SetServices injects the services directly.
func SetServices(s *Services) {
	markupService = s.Markup
	documentService = s.Document
	settingsService = s.Settings
	newWatcher = s.NewWatcher
	closeServices = s.Close
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil || cmd.Annotations[skipServices] != "" {
		return nil
	}

	s, err := bootstrap(Paths{ConfigDir: configDir, DataDir: dataDir})
	if err != nil {
		return fmt.Errorf("initialise: %w", err)
	}
	SetServices(s)
	return nil
}

// readInput returns the content of the file named by the first argument,
// or standard input when there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func requireMarkup() error {
	if markupService == nil {
		return errors.New("markup service not configured")
	}
	return nil
}

func requireDocuments() error {
	if documentService == nil {
		return errors.New("document service not configured")
	}
	return nil
}

func requireSettings() error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	return nil
}

// notifyContext returns the command context, cancelled on interrupt.
func notifyContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}
