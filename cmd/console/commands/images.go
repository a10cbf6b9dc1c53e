package commands

import (
	"fmt"

	"github.com/propdesk/propdesk/internal/models"
	"github.com/spf13/cobra"
)

// NewImagesCmd creates the images command group
func NewImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage property images",
	}
	cmd.AddCommand(newImagesListCmd())
	cmd.AddCommand(newImagesAddCmd())
	cmd.AddCommand(newImagesDeleteCmd())
	return cmd
}

func newImagesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <propertyId>",
		Short: "List images attached to a property",
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

			images, err := e.api.Images.ByProperty(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if len(images) == 0 {
				fmt.Println("No images found")
				return nil
			}
			for _, img := range images {
				state := "enabled"
				if !img.Enabled {
					state = "disabled"
				}
				fmt.Printf("  - %s  %s (%s)\n", img.ID, img.ImageURL, state)
			}
			return nil
		},
	}
}

func newImagesAddCmd() *cobra.Command {
	var in models.CreatePropertyImage

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Attach an image to a property",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := newEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()
			if err := e.requireSession(cmd); err != nil {
				return err
			}

			img, err := e.api.Images.Create(cmd.Context(), in)
			if err != nil {
				return err
			}
			fmt.Printf("Added image %s to property %s\n", img.ID, img.PropertyID)
			return nil
		},
	}

	cmd.Flags().StringVar(&in.PropertyID, "property", "", "Property ID")
	cmd.Flags().StringVar(&in.ImageURL, "url", "", "Image URL")
	cmd.Flags().BoolVar(&in.Enabled, "enabled", true, "Whether the image is shown")
	_ = cmd.MarkFlagRequired("property")
	_ = cmd.MarkFlagRequired("url")
	return cmd
}

func newImagesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an image",
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

			if err := e.api.Images.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted image %s\n", args[0])
			return nil
		},
	}
}
