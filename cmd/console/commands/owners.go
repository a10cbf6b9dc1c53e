package commands

import (
	"fmt"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/spf13/cobra"
)

// NewOwnersCmd creates the owners command group
func NewOwnersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "owners",
		Short: "Manage property owners",
	}
	cmd.AddCommand(newOwnersListCmd())
	cmd.AddCommand(newOwnersGetCmd())
	cmd.AddCommand(newOwnersCreateCmd())
	cmd.AddCommand(newOwnersUpdateCmd())
	cmd.AddCommand(newOwnersDeleteCmd())
	return cmd
}

func newOwnersListCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List owners",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.requireSession(cmd); err != nil {
				return err
			}

			var owners []models.Owner
			if name != "" {
				owners, err = e.api.Owners.FilterByName(cmd.Context(), name)
			} else {
				owners, err = e.api.Owners.List(cmd.Context())
			}
			if err != nil {
				return err
			}

			if len(owners) == 0 {
				fmt.Println("No owners found")
				return nil
			}
			for _, owner := range owners {
				fmt.Printf("  - %s  %s (%s)\n", owner.ID, owner.Name, owner.Address)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Filter owners by name")
	return cmd
}

func newOwnersGetCmd() *cobra.Command {
	var withProperties bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one owner",
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

			var owner *models.Owner
			if withProperties {
				owner, err = e.api.Owners.GetWithProperties(cmd.Context(), args[0])
			} else {
				owner, err = e.api.Owners.Get(cmd.Context(), args[0])
			}
			if err != nil {
				return err
			}

			fmt.Printf("ID:         %s\n", owner.ID)
			fmt.Printf("Name:       %s\n", owner.Name)
			fmt.Printf("Address:    %s\n", owner.Address)
			fmt.Printf("Birth date: %s\n", owner.BirthDate)
			if len(owner.Properties) > 0 {
				fmt.Println("Properties:")
				for _, p := range owner.Properties {
					fmt.Printf("  - %s  %s ($%.2f)\n", p.ID, p.Name, p.Price)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&withProperties, "with-properties", false, "Include the owner's properties")
	return cmd
}

func newOwnersCreateCmd() *cobra.Command {
	var in models.CreateOwner

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.requireSession(cmd); err != nil {
				return err
			}

			owner, err := e.api.Owners.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Created owner %s (%s)\n", owner.Name, owner.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Owner name")
	cmd.Flags().StringVar(&in.Address, "address", "", "Owner address")
	cmd.Flags().StringVar(&in.Photo, "photo", "", "Photo URL")
	cmd.Flags().StringVar(&in.BirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("birth-date")
	return cmd
}

func newOwnersUpdateCmd() *cobra.Command {
	var in models.UpdateOwner

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an owner",
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

			owner, err := e.api.Owners.Update(cmd.Context(), args[0], in)
			if err != nil {
				return err
			}
			fmt.Printf("Updated owner %s (%s)\n", owner.Name, owner.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.Name, "name", "", "Owner name")
	cmd.Flags().StringVar(&in.Address, "address", "", "Owner address")
	cmd.Flags().StringVar(&in.Photo, "photo", "", "Photo URL")
	cmd.Flags().StringVar(&in.BirthDate, "birth-date", "", "Birth date (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("address")
	_ = cmd.MarkFlagRequired("birth-date")
	return cmd
}

func newOwnersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an owner",
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

			if err := e.api.Owners.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted owner %s\n", args[0])
			return nil
		},
	}
}
