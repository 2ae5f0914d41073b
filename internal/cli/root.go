// Package cli implements the cabquote command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/gentrystinson/cabquote/internal/catalog"
	"github.com/gentrystinson/cabquote/internal/host"
	"github.com/gentrystinson/cabquote/internal/logging"
	"github.com/gentrystinson/cabquote/internal/pricing"
	"github.com/gentrystinson/cabquote/internal/project"
)

// Cfg holds the loaded configuration and is available to all commands.
var Cfg project.AppConfig

// cfgFile is set from -c/--config flag.
var cfgFile string

// noColor toggles ANSI color output off when set via --no-color flag.
var noColor bool

var logCleanup = func() {}

var rootCmd = &cobra.Command{
	Use:   "cabquote",
	Short: "Cabquote prices custom cabinetry projects and manages saved quotes",
	Long: `Cabquote is the pricing core of the cabinetry order form: it prices
project files (rooms, measurements, option selections, add-ons) and saves,
lists and exports quotes through the local quote store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if noColor {
			color.NoColor = true
		}

		path := cfgFile
		if path == "" {
			path = project.DefaultConfigPath()
		}
		cfg, err := project.LoadAppConfig(path)
		if err != nil {
			return fmt.Errorf("failed to load config from %s: %w", path, err)
		}
		Cfg = cfg

		_, cleanup, err := logging.New(Cfg.LogLevel, Cfg.LogFile)
		if err != nil {
			return fmt.Errorf("failed to set up logging: %w", err)
		}
		logCleanup = cleanup
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logCleanup()
	},
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (default ~/.cabquote/config.json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// priceBook loads the default tables plus any configured overrides.
func priceBook() (*catalog.PriceBook, error) {
	book, err := project.LoadPriceBook(Cfg.PriceBookPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load price book: %w", err)
	}
	return book, nil
}

// engine builds a pricing engine over the configured price book.
func engine() (*pricing.Engine, error) {
	book, err := priceBook()
	if err != nil {
		return nil, err
	}
	return pricing.NewEngine(book), nil
}

// hostClient opens the local quote store and connects a message client to
// it. The returned closer releases the store.
func hostClient() (*host.Client, func(), error) {
	path := Cfg.QuoteDBPath
	if path == "" {
		path = project.DefaultQuoteDBPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	store, err := host.OpenStore(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open quote store: %w", err)
	}
	local := host.NewLocalHost(store)
	client := local.Connect(host.NewClient(local))
	return client, func() { _ = store.Close() }, nil
}
