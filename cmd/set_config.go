package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmoj-submit/dmoj-submit/internal/config"
	"github.com/spf13/cobra"
)

var (
	setTokenFlag    string
	setLanguageFlag string
)

var setConfigCmd = &cobra.Command{
	Use:   "set-config",
	Short: "Store your API token or extension to language mappings",
	Long: `Store your API token or map file extensions to language keys.

Extension mappings are merged into the ones already stored.

Examples:
  dmoj-submit set-config --token <token>
  dmoj-submit set-config --language cpp:cpp20,py:pypy3`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := store.LoadFile()
		if err != nil {
			return err
		}

		if setTokenFlag != "" {
			cfg.Token = setTokenFlag
		}
		if setLanguageFlag != "" {
			pairs, err := config.ParseLanguageMap(setLanguageFlag)
			if err != nil {
				return err
			}
			if cfg.ExtKeyMap == nil {
				cfg.ExtKeyMap = make(map[string]string, len(pairs))
			}
			for ext, key := range pairs {
				cfg.ExtKeyMap[ext] = key
			}
		}

		if err := store.Save(cfg); err != nil {
			return err
		}

		green := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
		fmt.Fprintln(cmd.OutOrStdout(), green.Render("✓ Configuration saved to "+store.Path()))
		return nil
	},
}

func init() {
	setConfigCmd.Flags().StringVarP(&setTokenFlag, "token", "t", "", "API token")
	setConfigCmd.Flags().StringVarP(&setLanguageFlag, "language", "l", "", "Extension mappings, e.g. cpp:cpp20,py:pypy3")
	setConfigCmd.MarkFlagsOneRequired("token", "language")
	rootCmd.AddCommand(setConfigCmd)
}
