package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var getConfigCmd = &cobra.Command{
	Use:   "get-config",
	Short: "Show the stored configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := store.Load()
		if err != nil {
			return err
		}

		gray := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, gray.Render(store.Path()))
		fmt.Fprint(out, cfg.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getConfigCmd)
}
