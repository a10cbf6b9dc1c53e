package main

import (
	"fmt"
	"os"

	"github.com/propdesk/propdesk/cmd/console/commands"
	"github.com/propdesk/propdesk/internal/config"
	"github.com/spf13/cobra"
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "propdesk",
		Short: "Terminal console for the real-estate management API",
		Long:  "CLI for logging into the real-estate API and managing owners, properties, images, and sale traces",
	}

	rootCmd.PersistentFlags().String("config", config.DefaultFilePath(), "Path to YAML config file")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewRegisterCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewOwnersCmd())
	rootCmd.AddCommand(commands.NewPropertiesCmd())
	rootCmd.AddCommand(commands.NewImagesCmd())
	rootCmd.AddCommand(commands.NewTracesCmd())
	rootCmd.AddCommand(commands.NewDashboardCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
