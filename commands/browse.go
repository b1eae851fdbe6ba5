package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/penwyp/go-plan-compare/internal/application/browse"
	"github.com/penwyp/go-plan-compare/internal/config"
	"github.com/penwyp/go-plan-compare/internal/data/catalog"
	"github.com/penwyp/go-plan-compare/internal/preferences"
	"github.com/penwyp/go-plan-compare/internal/presentation/layout"
	"github.com/spf13/cobra"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse plans interactively in the terminal",
	Long: `Opens a full-screen plan browser with a budget slider, a plan type filter
and four balanced columns, one per tool.

Keys:
  ←/→ or h/l   change budget by $10      Home/End   $0 / $200
  a / i / e    all, individual, enterprise plans
  ↑/↓ or k/j   scroll                    t          toggle light/dark theme
  r            reload the catalog        q/Esc      quit

The chosen theme is remembered between runs.`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// The terminal belongs to the UI, so logs only go to the file
	if err := initLogging(cfg, false); err != nil {
		return err
	}

	provider, err := catalog.CreateProvider(&cfg.Catalog, cfg.CacheDir)
	if err != nil {
		return err
	}

	prefs := preferences.NewStore(config.ExpandPath(config.DefaultPreferencesFile))
	themeName := prefs.InitialTheme(preferences.TerminalBackground)
	if cfg.UI.Theme != "" {
		themeName = layout.ThemeName(cfg.UI.Theme)
	}

	deps, err := browse.NewTerminalDependencies(provider, prefs)
	if err != nil {
		return err
	}

	grid := gridOptions(cfg)
	orchestrator, err := browse.NewOrchestrator(&browse.BrowseConfig{
		Budget:       cfg.UI.Budget,
		Filter:       cfg.TypeFilter(),
		Theme:        themeName,
		Grid:         &grid,
		RefreshRate:  cfg.UI.RefreshRate,
		FetchTimeout: cfg.Catalog.Timeout,
	}, deps)
	if err != nil {
		deps.Input.Close()
		return err
	}

	// Raw mode keeps ISIG, so Ctrl+C can also arrive as SIGINT
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return orchestrator.Run(ctx)
}
