package commands

import (
	"fmt"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/spf13/cobra"
)

// NewTracesCmd creates the traces command group
func NewTracesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "traces",
		Short: "Manage property sale traces",
	}
	cmd.AddCommand(newTracesListCmd())
	cmd.AddCommand(newTracesAddCmd())
	return cmd
}

func newTracesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <propertyId>",
		Short: "List sale traces recorded for a property",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.requireSession(cmd); err != nil {
				return err
			}

			traces, err := e.api.Traces.ByProperty(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(traces) == 0 {
				fmt.Println("No sale traces found")
				return nil
			}
			for _, t := range traces {
				fmt.Printf("  - %s  %s: %s ($%.2f, tax $%.2f)\n", t.ID, t.DateSale, t.Name, t.Value, t.Tax)
			}
			return nil
		},
	}
}

func newTracesAddCmd() *cobra.Command {
	var in models.CreatePropertyTrace

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a sale trace for a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.requireSession(cmd); err != nil {
				return err
			}

			trace, err := e.api.Traces.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded sale trace %s for property %s\n", trace.ID, trace.PropertyID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.PropertyID, "property", "", "Property ID")
	cmd.Flags().StringVar(&in.DateSale, "date", "", "Sale date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&in.Name, "name", "", "Trace name")
	cmd.Flags().Float64Var(&in.Value, "value", 0, "Sale value")
	cmd.Flags().Float64Var(&in.Tax, "tax", 0, "Tax amount")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("date")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}
