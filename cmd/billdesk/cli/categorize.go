package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/odyssey-erp/billdesk/internal/categorize"
)

type suggestion struct {
	Category      string   `json:"category,omitempty"`
	Matched       bool     `json:"matched"`
	Subcategories []string `json:"subcategories,omitempty"`
}

func newCategorizeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categorize",
		Short: "Suggest an expense category from a description and vendor",
		Example: `  billdesk categorize --description "Flight to Delhi" --vendor MakeMyTrip
  billdesk categorize --description "printer toner" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			description, _ := cmd.Flags().GetString("description")
			vendor, _ := cmd.Flags().GetString("vendor")
			asJSON, _ := cmd.Flags().GetBool("json")
			if strings.TrimSpace(description) == "" && strings.TrimSpace(vendor) == "" {
				return errors.New("at least one of --description or --vendor is required")
			}

			var out suggestion
			out.Category, out.Matched = categorize.Suggest(description, vendor)
			if out.Matched {
				out.Subcategories = categorize.Subcategories[out.Category]
			}
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(out)
			}
			if !out.Matched {
				fmt.Fprintln(cmd.OutOrStdout(), "no category matched")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.Category)
			return nil
		},
	}
	cmd.Flags().String("description", "", "Expense description")
	cmd.Flags().String("vendor", "", "Vendor name")
	cmd.Flags().Bool("json", false, "Print the suggestion as JSON")
	return cmd
}
