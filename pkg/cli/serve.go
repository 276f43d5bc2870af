package cli

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hubsync-io/hubsync/pkg/cli/config"
	controller "github.com/hubsync-io/hubsync/pkg/controller/http"
	"github.com/hubsync-io/hubsync/pkg/controller/webhook"
	"github.com/hubsync-io/hubsync/pkg/usecase"
	"github.com/hubsync-io/hubsync/pkg/utils/async"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var (
		serverCfg       config.Server
		hubCfg          config.Hub
		directoryCfg    config.Directory
		webhookCfg      config.Webhook
		subscriptionCfg config.Subscription
		groupsCfg       config.Groups
	)

	flags := joinFlags(
		serverCfg.Flags(),
		hubCfg.Flags(),
		directoryCfg.Flags(),
		webhookCfg.Flags(),
		subscriptionCfg.Flags(),
		groupsCfg.Flags(),
	)

	return &cli.Command{
		Name:  "serve",
		Usage: "Start the notification webhook server",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			logger.Info("Starting hubsync server",
				slog.String("addr", serverCfg.Addr),
				slog.Any("hub", hubCfg),
				slog.Any("directory", directoryCfg),
				slog.Any("webhook", webhookCfg),
				slog.Any("subscription", subscriptionCfg),
				slog.Any("groups", groupsCfg),
			)

			if err := webhookCfg.Validate(); err != nil {
				return err
			}

			mappings, err := groupsCfg.Configure()
			if err != nil {
				return err
			}
			logger.Info("Group mappings loaded", slog.Int("groups", mappings.Len()))

			hub, err := hubCfg.Configure()
			if err != nil {
				return err
			}

			directoryClient, err := directoryCfg.Configure()
			if err != nil {
				return err
			}

			reconciler := usecase.NewReconciler(hub, mappings)
			processor := usecase.NewProcessor(directoryClient, reconciler)
			webhookHandler := webhook.NewHandler(webhookCfg.ClientState, processor)

			server := controller.NewServer(ctx, serverCfg.Addr, webhookHandler)

			// Keep the change notification subscription alive in the
			// background when configured
			if subscriptionCfg.IsConfigured() && subscriptionCfg.Interval > 0 {
				manager, err := subscriptionCfg.Configure(directoryClient, webhookCfg.ClientState)
				if err != nil {
					return err
				}
				interval := subscriptionCfg.Interval
				async.Dispatch(ctx, func(ctx context.Context) error {
					return manager.Run(ctx, interval)
				})
			} else {
				logger.Warn("Subscription management disabled; notifications stop when the subscription expires")
			}

			go func() {
				logger.Info("HTTP server starting", slog.String("addr", serverCfg.Addr))
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					logger.Error("HTTP server error", slog.Any("error", err))
				}
			}()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

			select {
			case <-ctx.Done():
				logger.Info("Context cancelled, shutting down...")
			case sig := <-sigChan:
				logger.Info("Signal received, shutting down...", slog.Any("signal", sig))
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil {
				return goerr.Wrap(err, "failed to shutdown server gracefully")
			}

			logger.Info("Server shutdown complete")
			return nil
		},
	}
}
