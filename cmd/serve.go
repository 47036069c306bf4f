package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/site"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the development server with live reload",
	Long:  `Builds the site, serves the output directory and re-renders on /render?width=N. /live keeps one page running: its loader plays and POST /live/resize?width=N drives the hero's device class. With --watch, changes to the site directory trigger a rebuild and a browser reload.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (overrides config)")
	serveCmd.Flags().Bool("watch", true, "rebuild when site files change")
	serveCmd.Flags().Bool("open", false, "open the site in the default browser")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port > 0 {
		cfg.Port = port
	}
	watch, _ := cmd.Flags().GetBool("watch")
	open, _ := cmd.Flags().GetBool("open")

	gen, err := newGenerator(cfg, nil)
	if err != nil {
		return err
	}
	gen.LiveReload = true

	// Graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := gen.Generate(ctx); err != nil {
		return fmt.Errorf("building site: %w", err)
	}

	srv := site.NewServer(site.ServerConfig{Port: cfg.Port, AllowAll: true}, gen, logger)

	if watch {
		go func() {
			err := site.Watch(ctx, cfg.SiteDir, []string{cfg.OutputDir}, func() {
				if err := srv.Rebuild(ctx); err != nil {
					logger.Error("rebuild failed", "error", err)
					return
				}
				logger.Info("rebuilt", "clients", srv.Hub().Clients())
			}, logger)
			if err != nil {
				logger.Error("watcher stopped", "error", err)
			}
		}()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error("server shutdown", "error", err)
		}
	}()

	fmt.Fprintf(os.Stderr, "folio %s serving %s at http://localhost:%d\n", Version, cfg.OutputDir, cfg.Port)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")

	if err := srv.Start(open); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
