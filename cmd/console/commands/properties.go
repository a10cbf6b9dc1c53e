package commands

import (
	"fmt"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/spf13/cobra"
)

// NewPropertiesCmd creates the properties command group
func NewPropertiesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "properties",
		Short: "Manage property listings",
	}
	cmd.AddCommand(newPropertiesListCmd())
	cmd.AddCommand(newPropertiesGetCmd())
	cmd.AddCommand(newPropertiesCreateCmd())
	cmd.AddCommand(newPropertiesUpdateCmd())
	cmd.AddCommand(newPropertiesDeleteCmd())
	return cmd
}

func newPropertiesListCmd() *cobra.Command {
	var (
		filter  models.PropertyFilter
		ownerID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List properties",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.requireSession(cmd); err != nil {
				return err
			}

			var properties []models.Property
			switch {
			case ownerID != "":
				properties, err = e.api.Properties.ByOwner(cmd.Context(), ownerID)
			case filter != (models.PropertyFilter{}):
				properties, err = e.api.Properties.Filter(cmd.Context(), filter)
			default:
				properties, err = e.api.Properties.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			if len(properties) == 0 {
				fmt.Println("No properties found")
				return nil
			}
			for _, p := range properties {
				fmt.Printf("  - %s  %s, %s ($%.2f, %d)\n", p.ID, p.Name, p.Address, p.Price, p.Year)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter.Name, "name", "", "Filter by name")
	cmd.Flags().StringVar(&filter.Address, "address", "", "Filter by address")
	cmd.Flags().Float64Var(&filter.MinPrice, "min-price", 0, "Minimum price")
	cmd.Flags().Float64Var(&filter.MaxPrice, "max-price", 0, "Maximum price")
	cmd.Flags().StringVar(&ownerID, "owner", "", "List properties of one owner (ignores other filters)")
	return cmd
}

func newPropertiesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one property",
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

			p, err := e.api.Properties.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("ID:       %s\n", p.ID)
			fmt.Printf("Name:     %s\n", p.Name)
			fmt.Printf("Address:  %s\n", p.Address)
			fmt.Printf("Price:    $%.2f\n", p.Price)
			fmt.Printf("Year:     %d\n", p.Year)
			fmt.Printf("Owner:    %s", p.OwnerID)
			if p.OwnerName != "" {
				fmt.Printf(" (%s)", p.OwnerName)
			}
			fmt.Println()
			if p.InternalCode != "" {
				fmt.Printf("Code:     %s\n", p.InternalCode)
			}
			return nil
		},
	}
}

func propertyFlags(cmd *cobra.Command, name, address *string, price, taxes *float64, year *int, internalCode, ownerID *string) {
	cmd.Flags().StringVar(name, "name", "", "Property name")
	cmd.Flags().StringVar(address, "address", "", "Property address")
	cmd.Flags().Float64Var(price, "price", 0, "Listing price")
	cmd.Flags().Float64Var(taxes, "taxes", 0, "Annual taxes")
	cmd.Flags().IntVar(year, "year", 0, "Construction year")
	cmd.Flags().StringVar(internalCode, "code", "", "Internal code")
	cmd.Flags().StringVar(ownerID, "owner", "", "Owner ID")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("year")
	_ = cmd.MarkFlagRequired("owner")
}

func newPropertiesCreateCmd() *cobra.Command {
	var in models.CreateProperty

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.requireSession(cmd); err != nil {
				return err
			}

			p, err := e.api.Properties.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created property %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	propertyFlags(cmd, &in.Name, &in.Address, &in.Price, &in.Taxes, &in.Year, &in.InternalCode, &in.OwnerID)
	return cmd
}

func newPropertiesUpdateCmd() *cobra.Command {
	var in models.UpdateProperty

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a property",
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

			p, err := e.api.Properties.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Printf("Updated property %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}

	propertyFlags(cmd, &in.Name, &in.Address, &in.Price, &in.Taxes, &in.Year, &in.InternalCode, &in.OwnerID)
	return cmd
}

func newPropertiesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a property",
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

			if err := e.api.Properties.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted property %s\n", args[0])
			return nil
		},
	}
}
