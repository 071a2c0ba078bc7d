package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"readshelf-share/config"
	"readshelf-share/internal/note"
	"readshelf-share/internal/note/repository/backend"
	"readshelf-share/internal/note/usecase"
	"readshelf-share/pkg/cache"
	"readshelf-share/pkg/log"
)

// app carries the dependencies shared by every subcommand.
type app struct {
	backendURL string
	listLimit  int
	verbose    bool

	cfg    *config.Config
	logger log.Logger
	cache  cache.Cache
	uc     note.UseCase
}

// newRootCmd builds the command tree. Each call returns a fresh tree with its own flag state.
func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "sharectl",
		Short: "Operator tool for ReadShelf public share links",
		Long: `sharectl builds and resolves public share paths for ReadShelf notes
and exports shared notes as printable documents.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.Context())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.cache != nil {
				a.cache.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.backendURL, "backend-url", "", "Notes backend base URL (overrides config)")
	rootCmd.PersistentFlags().IntVar(&a.listLimit, "limit", 0, "Public listing size scanned per resolution (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")

	rootCmd.AddCommand(
		newPathCmd(a),
		newResolveCmd(a),
		newExportCmd(a),
		newViewCmd(a),
	)
	return rootCmd
}

// Execute runs the command tree. This is called by main.main().
func Execute() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (a *app) setup(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.backendURL != "" {
		cfg.Backend.URL = a.backendURL
		cfg.Backend.AssetsURL = a.backendURL
	}
	if a.listLimit > 0 {
		cfg.Backend.ListingLimit = a.listLimit
	}
	a.cfg = cfg

	level := "warn"
	if a.verbose {
		level = "debug"
	}
	a.logger = log.Init(log.ZapConfig{
		Level:    level,
		Mode:     log.ModeDevelopment,
		Encoding: log.EncodingConsole,
	})

	// A one-shot command never re-reads the listing, only view keeps a cache.
	a.wire(cache.Nop{})
	a.logger.Debugf(ctx, "sharectl: backend %s, listing limit %d", cfg.Backend.URL, cfg.Backend.ListingLimit)
	return nil
}

// withListingCache rewires the use case on top of an in-memory listing cache.
func (a *app) withListingCache() {
	a.wire(cache.NewMemory(a.cfg.Cache.Size, a.cfg.Cache.TTL))
}

func (a *app) wire(c cache.Cache) {
	if a.cache != nil {
		a.cache.Close()
	}
	a.cache = c

	client := backend.NewClient(backend.ClientConfig{
		BaseURL:         a.cfg.Backend.URL,
		PublicNotesPath: a.cfg.Backend.PublicNotesPath,
		AssetsURL:       a.cfg.Backend.AssetsURL,
		Timeout:         a.cfg.Backend.Timeout,
	})
	a.uc = usecase.New(a.logger, backend.New(client, c, a.logger), usecase.Config{
		ListingLimit: a.cfg.Backend.ListingLimit,
		ProductLabel: a.cfg.Export.ProductLabel,
		Location:     a.cfg.Export.Location(),
	})
}
