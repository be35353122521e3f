package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored API token",
	Long: `Remove your API token from the local config.

Extension mappings are kept. You'll need to run 'dmoj-submit login' again
before submitting.

Example:
  dmoj-submit logout`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadFile()
		if err != nil {
			return fmt.Errorf("could not load config file: %w", err)
		}

		if cfg.Token == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "Already logged out")
			return nil
		}

		if err := store.ClearToken(); err != nil {
			return fmt.Errorf("failed to clear token: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✓ Logged out successfully!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
