package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/penwyp/go-plan-compare/internal/config"
	"github.com/penwyp/go-plan-compare/internal/core/compare"
	"github.com/penwyp/go-plan-compare/internal/core/model"
	"github.com/penwyp/go-plan-compare/internal/data/catalog"
	"github.com/penwyp/go-plan-compare/internal/presentation/formatter"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
	"github.com/penwyp/go-plan-compare/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Config file
	configPath string

	// Catalog source
	catalogSource  string
	catalogPath    string
	catalogURL     string
	catalogOffline bool

	// Comparison controls
	budget     int
	planType   string
	theme      string
	outputMode string
	width      int

	rootCmd = &cobra.Command{
		Use:   "go-plan-compare [flags]",
		Short: "Compare AI coding assistant subscription plans",
		Long: `go-plan-compare compares the subscription plans of GitHub Copilot, Cursor,
Claude Code and Windsurf side by side.

Plans are filtered by a monthly budget and a plan type, sorted by price and
grouped into one column per tool. The catalog is embedded, read from a file or
fetched from a catalog server (see the serve command).

Examples:
  go-plan-compare                                  # Compare every plan up to $0/month
  go-plan-compare --budget 50                      # Plans up to $50/month
  go-plan-compare --budget 200 --type enterprise   # Enterprise plans only
  go-plan-compare --output table                   # Aligned table instead of cards
  go-plan-compare --output json --budget 100       # Grouped columns as JSON
  go-plan-compare --catalog-url http://localhost:3000/plans
  go-plan-compare browse                           # Interactive browser`,
		RunE:          runCompare,
		SilenceUsage:  true,
		SilenceErrors: false,
	}
)

func init() {
	// Configuration
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultConfigFile,
		"Config file path")

	// Catalog source
	rootCmd.PersistentFlags().StringVar(&catalogSource, "catalog-source", "",
		"Catalog source (embedded, file, remote)")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog-file", "",
		"Catalog file (JSON or YAML); implies --catalog-source file")
	rootCmd.PersistentFlags().StringVar(&catalogURL, "catalog-url", "",
		"Catalog endpoint URL; implies --catalog-source remote")
	rootCmd.PersistentFlags().BoolVar(&catalogOffline, "offline", false,
		"Use the cached catalog snapshot when one exists")

	// Comparison controls
	rootCmd.PersistentFlags().IntVarP(&budget, "budget", "b", 0,
		fmt.Sprintf("Monthly budget in USD (%d-%d, step %d)", model.MinBudget, model.MaxBudget, model.BudgetStep))
	rootCmd.PersistentFlags().StringVarP(&planType, "type", "t", "",
		"Plan type (all, individual, enterprise)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "",
		"Color theme (light, dark)")

	// Output configuration
	rootCmd.Flags().StringVarP(&outputMode, "output", "o", formatter.OutputGrid,
		"Output format ("+strings.Join(formatter.Outputs(), ", ")+")")
	rootCmd.Flags().StringVar(&outputMode, "format", "",
		"Alias for --output")
	rootCmd.Flags().IntVar(&width, "width", 0,
		"Grid width in columns (0 = terminal width)")

	// System and debugging
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
}

func runCompare(cmd *cobra.Command, args []string) error {
	// Handle format alias
	if format := cmd.Flags().Lookup("format"); format != nil && format.Changed {
		outputMode = format.Value.String()
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := initLogging(cfg, debug); err != nil {
		return err
	}

	return writeComparison(cmd.Context(), cmd.OutOrStdout(), cfg, outputMode, width)
}

// writeComparison loads the catalog and writes one comparison in the given output
func writeComparison(ctx context.Context, w io.Writer, cfg *config.Config, output string, width int) error {
	if ctx == nil {
		ctx = context.Background()
	}

	provider, err := catalog.CreateProvider(&cfg.Catalog, cfg.CacheDir)
	if err != nil {
		return err
	}
	plans, err := provider.Plans(ctx)
	if err != nil {
		return fmt.Errorf("failed to load plans from %s: %w", provider.Name(), err)
	}
	util.LogDebugf("Loaded %d plans from %s", len(plans), provider.Name())

	themeName, _ := layout.ParseThemeName(cfg.UI.Theme)
	grid := layout.NewGridRenderer(layout.NewTheme(themeName, nil), gridOptions(cfg))

	f, err := formatter.New(formatter.Options{
		Output: output,
		Writer: w,
		Grid:   grid,
		Width:  width,
	})
	if err != nil {
		return err
	}

	var result compare.Result
	if c, ok := f.(formatter.Composer); ok {
		result = c.Compose(plans, cfg.UI.Budget, cfg.TypeFilter())
	} else {
		result = compare.Compose(plans, cfg.UI.Budget, cfg.TypeFilter(), compare.Options{})
	}
	util.LogInfof("Comparing %d of %d plans (budget=%d, type=%s, output=%s)",
		result.Count(), len(plans), result.Budget, result.Filter, output)

	return f.Format(result)
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

// loadConfig reads the config file and applies the flags the user set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	if flags.Changed("catalog-source") {
		cfg.Catalog.Source = catalogSource
	}
	if flags.Changed("catalog-file") {
		cfg.Catalog.Source = catalog.SourceFile
		cfg.Catalog.Path = catalogPath
	}
	if flags.Changed("catalog-url") {
		cfg.Catalog.Source = catalog.SourceRemote
		cfg.Catalog.URL = catalogURL
	}
	if flags.Changed("offline") {
		cfg.Catalog.OfflineMode = catalogOffline
	}

	if flags.Changed("budget") {
		cfg.UI.Budget = budget
	}
	if flags.Changed("type") {
		cfg.UI.Type = planType
	}
	if flags.Changed("theme") {
		cfg.UI.Theme = theme
	}

	if debug {
		cfg.Logging.Level = "debug"
	}
}

// initLogging installs the file logger; console mirrors entries to stderr
func initLogging(cfg *config.Config, console bool) error {
	err := util.InitLogger(util.LoggerConfig{
		Level:   cfg.Logging.Level,
		File:    cfg.Logging.File,
		Console: console,
		Format:  util.LogFormat(cfg.Logging.Format),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

func gridOptions(cfg *config.Config) layout.GridOptions {
	opts := layout.DefaultGridOptions()
	opts.Gap = cfg.UI.Gap
	opts.MinColumnWidth = cfg.UI.MinColumnWidth
	return opts
}
