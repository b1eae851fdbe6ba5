package commands

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/penwyp/go-plan-compare/internal/config"
	"github.com/penwyp/go-plan-compare/internal/data/catalog"
	"github.com/penwyp/go-plan-compare/internal/server"
	"github.com/penwyp/go-plan-compare/internal/util"
	"github.com/spf13/cobra"
)

var (
	serveAddr        string
	serveWatch       bool
	serveAllowOrigin string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the plan catalog over HTTP",
	Long: `Serves the plan catalog as JSON on GET /plans.

The catalog is loaded once at startup. With a file catalog and --watch the
file is reloaded whenever it changes; a failed reload keeps the previous
catalog. Until a catalog has loaded, GET /plans answers 500 with an error
envelope.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "",
		"Listen address (default :3000, or :$PORT)")
	serveCmd.Flags().BoolVar(&serveWatch, "watch", false,
		"Reload a file catalog when it changes")
	serveCmd.Flags().StringVar(&serveAllowOrigin, "allow-origin", "",
		"Access-Control-Allow-Origin value (empty disables CORS headers)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serveAddr
	}
	if cmd.Flags().Changed("watch") {
		cfg.Server.Watch = serveWatch
	}
	if cmd.Flags().Changed("allow-origin") {
		cfg.Server.AllowOrigin = serveAllowOrigin
	}

	// A server process logs to the console as well as the file
	if err := initLogging(cfg, true); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", cfg.Server.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Server.Addr, err)
	}
	return serveCatalog(ctx, cfg, ln)
}

// serveCatalog serves on ln until ctx is done, then shuts down gracefully
func serveCatalog(ctx context.Context, cfg *config.Config, ln net.Listener) error {
	provider, err := catalog.CreateProvider(&cfg.Catalog, cfg.CacheDir)
	if err != nil {
		ln.Close()
		return err
	}

	store := catalog.NewStore(provider)
	if err := store.Load(ctx); err != nil {
		// Keep serving: GET /plans reports the failure until a reload succeeds
		util.LogErrorf("Initial catalog load failed: %v", err)
	}

	if cfg.Server.Watch {
		if cfg.Catalog.Source != catalog.SourceFile {
			util.LogWarnf("--watch only applies to file catalogs; source is %s", cfg.Catalog.Source)
		} else {
			watcher, err := catalog.NewWatcher(store, cfg.Catalog.Path)
			if err != nil {
				ln.Close()
				return fmt.Errorf("failed to watch catalog file: %w", err)
			}
			defer watcher.Close()
			util.LogInfof("Watching %s for catalog changes", cfg.Catalog.Path)
		}
	}

	srv := server.New(store, server.Options{
		Addr:           cfg.Server.Addr,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		RequestTimeout: cfg.Server.RequestTimeout,
		AllowOrigin:    cfg.Server.AllowOrigin,
	})

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}
	return <-errCh
}
