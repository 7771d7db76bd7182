// Package cli holds the billdesk command tree.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "dev"

// NewRootCommand assembles the billdesk command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "billdesk",
		Short: "Billing back office for small GST registered businesses",
		Long: `billdesk keeps customers, items, invoices, purchase orders, expenses and
payments in memory and serves them as a JSON API together with the derived
dashboard and GST report.

Configuration is read from the environment and an optional .env file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCommand(), newJobsCommand(), newCategorizeCommand())
	return root
}

// Execute runs the command tree with SIGINT/SIGTERM cancellation and returns
// the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	root := NewRootCommand()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "billdesk: %v\n", err)
		return 1
	}
	return 0
}
