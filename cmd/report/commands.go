package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sangkips/bookstore-api/internal/application/service"
	"github.com/sangkips/bookstore-api/internal/config"
	"github.com/sangkips/bookstore-api/internal/domain/analytics"
	"github.com/sangkips/bookstore-api/internal/infrastructure/database"
	"github.com/sangkips/bookstore-api/internal/infrastructure/repository"
	"github.com/sangkips/bookstore-api/pkg/logger"
	"github.com/spf13/cobra"
)

type reporter interface {
	ResolveRange(start, end string) (analytics.DateRange, error)
	GetSalesReport(ctx context.Context, rng analytics.DateRange) (*analytics.SalesReport, error)
	GetOrderStats(ctx context.Context) (*analytics.OrderStats, error)
}

// connectFunc opens the reporting backend; the returned func releases it
type connectFunc func(cmd *cobra.Command, top int) (reporter, func(), error)

type salesOptions struct {
	start  string
	end    string
	top    int
	pretty bool
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "report",
		Short:        "Bookstore sales reports from the command line",
		SilenceUsage: true,
	}
	root.AddCommand(newSalesCmd(connectDatabase))
	root.AddCommand(newStatsCmd(connectDatabase))
	root.AddCommand(newCreateAdminCmd(connectAdmins))
	return root
}

func newSalesCmd(connect connectFunc) *cobra.Command {
	opts := &salesOptions{}

	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Print the daily sales, totals and best sellers for a date range as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, release, err := connect(cmd, opts.top)
			if err != nil {
				return err
			}
			defer release()

			rng, err := svc.ResolveRange(opts.start, opts.end)
			if err != nil {
				return err
			}

			report, err := svc.GetSalesReport(cmd.Context(), rng)
			if err != nil {
				return fmt.Errorf("failed to build sales report: %w", err)
			}

			return writeJSON(cmd, report, opts.pretty)
		},
	}

	cmd.Flags().StringVar(&opts.start, "start", "", "first day of the range (YYYY-MM-DD), defaults to six days before today")
	cmd.Flags().StringVar(&opts.end, "end", "", "last day of the range (YYYY-MM-DD), defaults to today")
	cmd.Flags().IntVar(&opts.top, "top", 0, "number of best sellers to include (defaults to the configured value)")
	cmd.Flags().BoolVar(&opts.pretty, "pretty", false, "indent the JSON output")

	return cmd
}

func newStatsCmd(connect connectFunc) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print order completion counters as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, release, err := connect(cmd, 0)
			if err != nil {
				return err
			}
			defer release()

			stats, err := svc.GetOrderStats(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to compute order stats: %w", err)
			}

			return writeJSON(cmd, stats, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")

	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}, pretty bool) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func connectDatabase(cmd *cobra.Command, top int) (reporter, func(), error) {
	cfg := config.Load()

	log := logger.New(logger.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cmd.ErrOrStderr(),
	})
	cmd.SetContext(log.WithContext(cmd.Context()))

	db, err := database.NewPostgresDB(&cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}

	topN := cfg.Analytics.TopN
	if top > 0 {
		topN = top
	}

	svc := service.NewDashboardService(
		repository.NewOrderRepository(db),
		repository.NewBookRepository(db),
		analytics.NewEngine(cfg.Analytics.Location(), topN),
		nil,
		cfg.Analytics.BestSellerLimit,
	)

	release := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	return svc, release, nil
}
