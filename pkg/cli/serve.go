package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/rakshak-ai/rakshak/pkg/cli/config"
	httpctrl "github.com/rakshak-ai/rakshak/pkg/controller/http"
	"github.com/rakshak-ai/rakshak/pkg/service/genai"
	"github.com/rakshak-ai/rakshak/pkg/service/worker"
	"github.com/rakshak-ai/rakshak/pkg/usecase"
	"github.com/rakshak-ai/rakshak/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var snapshotInterval time.Duration
	var geminiCfg config.Gemini
	var repoCfg config.Repository
	var knowledgeCfg config.Knowledge
	var notifyCfg config.Notify

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("RAKSHAK_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "snapshot-interval",
			Usage:       "Interval between knowledge index snapshot flushes",
			Value:       5 * time.Minute,
			Sources:     cli.EnvVars("RAKSHAK_SNAPSHOT_INTERVAL"),
			Destination: &snapshotInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, knowledgeCfg.Flags()...)
	flags = append(flags, notifyCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			ucOpts := []usecase.Option{}

			// Build the knowledge index. Retrieval is an enhancement, so an
			// index that fails to initialize degrades to sentinel context
			// instead of blocking startup.
			store, err := knowledgeCfg.Configure(ctx)
			if err != nil {
				logging.Default().Warn("knowledge index unavailable, retrieval degrades to sentinel",
					"error", err.Error())
				store = nil
			}
			if store != nil {
				ucOpts = append(ucOpts, usecase.WithKnowledge(store))
				logging.Default().Info("knowledge index ready", "items", store.Len())
			}

			// Initialize the Gemini oracle if configured
			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize Gemini client")
			}
			if llmClient != nil {
				genAISvc, err := genai.New(llmClient)
				if err != nil {
					return goerr.Wrap(err, "failed to initialize genai service")
				}
				ucOpts = append(ucOpts, usecase.WithGenAI(genAISvc))
				logging.Default().Info("Gemini oracle enabled")
			} else {
				logging.Default().Info("Gemini not configured, triage endpoint will be unavailable")
			}

			// Initialize the Slack notifier if configured
			notifier, err := notifyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to initialize notifier")
			}
			if notifier != nil {
				ucOpts = append(ucOpts,
					usecase.WithNotifier(notifier),
					usecase.WithEmergencyContact(notifyCfg.EmergencyChannel()),
				)
				logging.Default().Info("Slack notifier enabled", "channel", notifyCfg.EmergencyChannel())
			} else {
				logging.Default().Info("Notifier not configured, emergency alerts will be simulated")
			}

			uc := usecase.New(repo, ucOpts...)

			// Start the snapshot worker when the index persists to disk
			var snapshotWorker *worker.SnapshotWorker
			if store != nil {
				snapshotWorker = worker.NewSnapshotWorker(store, snapshotInterval)
				if err := snapshotWorker.Start(ctx); err != nil {
					return goerr.Wrap(err, "failed to start snapshot worker")
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Stop the snapshot worker first; it flushes on stop
				if snapshotWorker != nil {
					snapshotWorker.Stop()
				}

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
