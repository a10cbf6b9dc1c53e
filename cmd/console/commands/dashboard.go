package commands

import (
	"fmt"

	"github.com/propdesk/propdesk/internal/api"
	"github.com/spf13/cobra"
)

// NewDashboardCmd creates the dashboard command
func NewDashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show portfolio overview figures",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.requireSession(cmd); err != nil {
				return err
			}

			stats, err := api.BuildDashboardStats(cmd.Context(), e.api)
			if err != nil {
				return err
			}
			fmt.Printf("Properties:     %d\n", stats.TotalProperties)
			fmt.Printf("Owners:         %d\n", stats.TotalOwners)
			fmt.Printf("Total value:    $%.2f\n", stats.TotalValue)
			fmt.Printf("Average price:  $%.2f\n", stats.AveragePrice)
			fmt.Printf("Total sales:    %d\n", stats.TotalSales)
			fmt.Printf("Recent sales:   %d (last 30 days)\n", len(stats.RecentTraces))
			for _, trace := range stats.RecentTraces {
				fmt.Printf("  - %s  %s ($%.2f)\n", trace.DateSale, trace.Name, trace.Value)
			}
			return nil
		},
	}
}
