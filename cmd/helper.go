package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmoj-submit/dmoj-submit/internal/config"
	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"go.uber.org/zap"
)

// readSource returns the file's content, rejecting blank files
func readSource(file string) (string, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("could not read file: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("file %s is empty", file)
	}
	return string(data), nil
}

// resolveProblem falls back to the file name without its extension
func resolveProblem(flag, file string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	base := filepath.Base(file)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", errors.New("no problem code given and none could be taken from the file name")
	}
	return stem, nil
}

func resolveToken(flag string, cfg *config.Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if cfg.Token == "" {
		return "", errors.New("API token not defined in configuration\n\n→ Run 'dmoj-submit login' or pass --token")
	}
	return cfg.Token, nil
}

func resolveLanguage(flag, file string, cfg *config.Config) (string, error) {
	if flag != "" {
		return flag, nil
	}
	key, defaulted, err := cfg.LanguageKey(filepath.Ext(file))
	if err != nil {
		return "", fmt.Errorf("could not determine language: %w\n\n→ Pass --language or map the extension with 'dmoj-submit set-config --language'", err)
	}
	if defaulted {
		logger.Warn("no language configured for extension, using default",
			zap.String("ext", filepath.Ext(file)),
			zap.String("language", key))
	}
	return key, nil
}
