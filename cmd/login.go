package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dmoj-submit/dmoj-submit/client"
	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// openURL is swapped out in tests
var openURL = browser.OpenURL

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store an API token generated on your profile page",
	Long: `Store the API token used to submit.

This command opens your DMOJ profile page, where an API token can be
generated. Paste the token here and it is stored locally for future commands.

Example:
  dmoj-submit login`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// env overrides pick the judge, but only the file content is saved back
		effective, err := store.Load()
		if err != nil {
			return err
		}
		cfg, err := store.LoadFile()
		if err != nil {
			return err
		}

		baseURL := client.New(effective.BaseURL, "").BaseURL()
		out := cmd.OutOrStdout()

		token, err := promptToken(cmd.InOrStdin(), out, baseURL+"/edit/profile/")
		if err != nil {
			return err
		}

		cfg.Token = token
		if err := store.Save(cfg); err != nil {
			return err
		}

		green := lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
		fmt.Fprintln(out, green.Render("✓ Token saved!"))
		return nil
	},
}

func promptToken(in io.Reader, out io.Writer, profileURL string) (string, error) {
	gray := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	fmt.Fprintf(out, "Opening %s ...\n", profileURL)
	if err := openURL(profileURL); err != nil {
		logger.Warn("could not open browser", zap.Error(err))
		fmt.Fprintln(out, gray.Render("Could not open a browser, visit the page above manually."))
	}

	fmt.Fprint(out, "Generate an API token and paste it here: ")
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("could not read token: %w", err)
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return "", errors.New("no token entered")
	}
	return token, nil
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
