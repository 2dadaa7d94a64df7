package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/server"
	"github.com/jonathan/resume-builder/internal/server/ratelimit"
	"github.com/jonathan/resume-builder/internal/store"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the editor API server",
	Long:  `Start an HTTP server that exposes the resume document, its edit operations, preview and PDF export.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	// restore the previous session; a blank document is fine when there is none
	if result := st.Load(ctx); result != store.Restored {
		logger.WithField("result", result.String()).Info("starting with a blank resume")
	}

	exporter := export.New(export.NewChromeBrowser(cfg.ChromePath, cfg.ExportTimeout()), logger)
	srv := server.New(server.Config{
		Port:     cfg.Port,
		Language: types.Language(cfg.Language),
		Template: types.Template(cfg.Template),

		RateLimit: ratelimit.DefaultConfig(cfg.ExportsPerMinute),
	}, st, exporter, logger)

	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
