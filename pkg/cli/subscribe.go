package cli

import (
	"context"

	"github.com/hubsync-io/hubsync/pkg/cli/config"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdSubscribe() *cli.Command {
	var (
		directoryCfg    config.Directory
		webhookCfg      config.Webhook
		subscriptionCfg config.Subscription
	)

	flags := joinFlags(
		directoryCfg.Flags(),
		webhookCfg.Flags(),
		subscriptionCfg.Flags(),
	)

	return &cli.Command{
		Name:  "subscribe",
		Usage: "Create or renew the change notification subscription once and exit",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := webhookCfg.Validate(); err != nil {
				return err
			}

			directoryClient, err := directoryCfg.Configure()
			if err != nil {
				return err
			}

			manager, err := subscriptionCfg.Configure(directoryClient, webhookCfg.ClientState)
			if err != nil {
				return err
			}

			if err := manager.Ensure(ctx); err != nil {
				return err
			}

			logger.Info("Subscription check complete")
			return nil
		},
	}
}
