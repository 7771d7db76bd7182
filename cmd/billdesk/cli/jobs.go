package cli

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/spf13/cobra"

	"github.com/odyssey-erp/billdesk/internal/app"
	"github.com/odyssey-erp/billdesk/jobs"
)

func newJobsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Manage background jobs",
	}
	cmd.AddCommand(newJobsTriggerCommand(), newJobsStatsCommand())
	return cmd
}

func newJobsTriggerCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "trigger <dashboard-warmup|overdue-scan>",
		Short:     "Enqueue a job for the serve process to run now",
		Example:   "  billdesk jobs trigger overdue-scan",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"dashboard-warmup", "overdue-scan"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := jobs.TaskByName(args[0]); err != nil {
				return err
			}
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			client := jobs.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
			defer client.Close()

			info, err := client.Trigger(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("enqueue %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "queued %s id=%s queue=%s\n", info.Type, info.ID, info.Queue)
			return nil
		},
	}
}

func newJobsStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print counters for the default queue",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}
			inspector := asynq.NewInspector(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
			defer inspector.Close()

			stats, err := jobs.InspectQueue(inspector)
			if err != nil {
				return fmt.Errorf("inspect queue: %w", err)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(stats)
		},
	}
}
