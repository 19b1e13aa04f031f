package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"majasdoc/internal/catalog"
	"majasdoc/internal/config"
	"majasdoc/internal/prefs"
	"majasdoc/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the catalog server",
	Long: `Loads the catalog document once and serves the single-page client,
the JSON API, and the media library. A document that fails to load is
fatal: the server never starts with a partial catalog.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		doc, err := catalog.Load(cfg.DataFile)
		if err != nil {
			return fmt.Errorf("loading catalog: %w", err)
		}

		store, err := prefs.Open(cfg.PrefsDB)
		if err != nil {
			return fmt.Errorf("opening preference store: %w", err)
		}
		defer store.Close()

		srv := server.New(server.Config{
			Port:          cfg.Port,
			WebDir:        cfg.WebDir,
			MediaDir:      cfg.MediaDir,
			AllowAll:      cfg.AllowAllOrigins,
			PrecacheMedia: cfg.PrecacheMedia,
		}, doc, store)

		errCh := make(chan error, 1)
		go func() {
			if err := srv.Start(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
			fmt.Fprintln(os.Stderr, "shutting down")
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
