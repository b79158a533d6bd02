// Command hyperless parses, inspects and indexes HTML.
package main

import (
	"fmt"
	"os"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/hyperless/internal/adapters/driven/config/file"
	"github.com/custodia-labs/hyperless/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/hyperless/internal/adapters/driving/cli"
	"github.com/custodia-labs/hyperless/internal/connectors/filesystem"
	"github.com/custodia-labs/hyperless/internal/core/domain"
	"github.com/custodia-labs/hyperless/internal/core/ports/driven"
	"github.com/custodia-labs/hyperless/internal/core/services"
	"github.com/custodia-labs/hyperless/internal/logger"
	"github.com/custodia-labs/hyperless/internal/normalisers"
	"github.com/custodia-labs/hyperless/internal/postprocessors"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires the adapters to the services.
func bootstrap(paths cli.Paths) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(paths.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	// Indexing falls back to the defaults when the settings are invalid.
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("using default settings: %v", err)
		defaults := settingsService.GetDefaults()
		settings = &defaults
	}
	// Nil options parse with the built-in tag lists.
	opts, _ := settingsService.ParseOptions()

	pipeline, err := postprocessors.BuildPipeline(postprocessors.DefaultRegistry(), settings.PipelineConfig())
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	store, err := sqlite.NewStore(paths.DataDir)
	if err != nil {
		return nil, fmt.Errorf("open index: %w", err)
	}

	documentService := services.NewDocumentService(
		store.DocumentStore(),
		filesystem.NewLoader(),
		normalisers.DefaultRegistry(opts),
		pipeline,
	)

	return &cli.Services{
		Markup:   services.NewMarkupService(settingsService),
		Document: documentService,
		Settings: settingsService,
		NewWatcher: func(w domain.WatchSettings) driven.FileWatcher {
			return filesystem.NewWatcher(rate.Limit(w.Rate), w.Burst)
		},
		Close: store.Close,
	}, nil
}
