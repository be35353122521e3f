package cmd

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmoj-submit/dmoj-submit/client"
	"github.com/spf13/cobra"
)

var languagesCmd = &cobra.Command{
	Use:     "list-languages",
	Aliases: []string{"languages"},
	Short:   "List the language keys the judge accepts",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := store.Load()
		if err != nil {
			return err
		}

		langs, err := client.New(cfg.BaseURL, cfg.Token).Languages(cmd.Context())
		if err != nil {
			return fmt.Errorf("could not fetch languages: %w", err)
		}

		printLanguages(cmd.OutOrStdout(), langs)
		return nil
	},
}

func printLanguages(out io.Writer, langs []client.Language) {
	header := lipgloss.NewStyle().Bold(true).Underline(true)
	fmt.Fprintln(out, header.Render("Common name: Language key"))

	sorted := make([]client.Language, len(langs))
	copy(sorted, langs)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].CommonName != sorted[j].CommonName {
			return sorted[i].CommonName < sorted[j].CommonName
		}
		return sorted[i].Key < sorted[j].Key
	})

	for _, lang := range sorted {
		fmt.Fprintf(out, "%s: %s\n", lang.CommonName, strings.ToLower(lang.Key))
	}
}

func init() {
	rootCmd.AddCommand(languagesCmd)
}
