package main

import (
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/axox-storefront/internal/api"
	"github.com/Veraticus/axox-storefront/internal/store"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the storefront HTTP API",
		Long: `Serve the storefront API: catalog, shopper sessions (cart, wishlist,
compare, checkout), the search agent, the purchase advisor and quote requests.

Idle sessions are swept on the session.sweep_schedule cron schedule.`,
		RunE: runServe,
	}

	cmd.Flags().StringP("address", "a", "", "listen address (default from server.address)")
	_ = viper.BindPFlag("server.address", cmd.Flags().Lookup("address"))

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg, cat, adv, err := setup(ctx)
	if err != nil {
		return err
	}
	defer adv.Close()

	orderIDs, err := store.NewSnowflakeOrderIDs(cfg.Server.NodeID)
	if err != nil {
		return err
	}

	logger := slog.Default()
	sessions := store.NewManager(cfg.Session.TTL, logger.With("component", "sessions"))

	sched := cron.New()
	if _, err := sched.AddFunc(cfg.Session.SweepSchedule, func() { sessions.Sweep() }); err != nil {
		return fmt.Errorf("failed to schedule session sweep: %w", err)
	}
	sched.Start()
	defer sched.Stop()

	server, err := api.New(api.Deps{
		Catalog:        cat,
		Advisor:        adv,
		Sessions:       sessions,
		OrderIDs:       orderIDs,
		Logger:         logger.With("component", "api"),
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	if err != nil {
		return err
	}

	logger.Info("Starting storefront",
		"products", cat.Len(),
		"backend", adv.HasBackend(),
		"session_ttl", cfg.Session.TTL)
	return server.Run(ctx, cfg.Server.Address)
}
