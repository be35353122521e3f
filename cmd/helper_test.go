package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/dmoj-submit/dmoj-submit/client"
	"github.com/dmoj-submit/dmoj-submit/internal/config"
	"github.com/dmoj-submit/dmoj-submit/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestReadSource(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "aplusb.py")
	require.NoError(t, os.WriteFile(good, []byte("print(sum(map(int, input().split())))\n"), 0600))
	src, err := readSource(good)
	require.NoError(t, err)
	assert.Contains(t, src, "print")

	blank := filepath.Join(dir, "blank.py")
	require.NoError(t, os.WriteFile(blank, []byte(" \n\t\n"), 0600))
	_, err = readSource(blank)
	assert.ErrorContains(t, err, "empty")

	_, err = readSource(filepath.Join(dir, "missing.py"))
	assert.Error(t, err)
}

func TestResolveProblem(t *testing.T) {
	p, err := resolveProblem("", "solutions/ccc22j1.cpp")
	require.NoError(t, err)
	assert.Equal(t, "ccc22j1", p)

	p, err = resolveProblem("aplusb", "solutions/ccc22j1.cpp")
	require.NoError(t, err)
	assert.Equal(t, "aplusb", p)

	_, err = resolveProblem("", ".py")
	assert.Error(t, err)
}

func TestResolveToken(t *testing.T) {
	tok, err := resolveToken("flag", &config.Config{Token: "stored"})
	require.NoError(t, err)
	assert.Equal(t, "flag", tok)

	tok, err = resolveToken("", &config.Config{Token: "stored"})
	require.NoError(t, err)
	assert.Equal(t, "stored", tok)

	_, err = resolveToken("", &config.Config{})
	assert.ErrorContains(t, err, "API token not defined")
}

func TestResolveLanguage(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	defer logger.Replace(zap.New(core))()

	cfg := &config.Config{ExtKeyMap: map[string]string{"py": "py3"}}

	key, err := resolveLanguage("", "a.py", cfg)
	require.NoError(t, err)
	assert.Equal(t, "py3", key)
	assert.Zero(t, logs.Len())

	key, err = resolveLanguage("", "a.rs", cfg)
	require.NoError(t, err)
	assert.Equal(t, "rust", key)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "rs", logs.All()[0].ContextMap()["ext"])

	key, err = resolveLanguage("java8", "a.rs", cfg)
	require.NoError(t, err)
	assert.Equal(t, "java8", key)

	_, err = resolveLanguage("", "a.unknown", cfg)
	assert.ErrorContains(t, err, "could not determine language")
}

func TestPrintLanguages(t *testing.T) {
	var buf bytes.Buffer
	printLanguages(&buf, []client.Language{
		{ID: 3, Key: "PY3", CommonName: "Python"},
		{ID: 1, Key: "CPP20", CommonName: "C++"},
		{ID: 2, Key: "CPP17", CommonName: "C++"},
	})

	lines := strings.Split(strings.TrimSpace(stripANSI(buf.String())), "\n")
	assert.Equal(t, []string{
		"Common name: Language key",
		"C++: cpp17",
		"C++: cpp20",
		"Python: py3",
	}, lines)
}

func TestPromptToken(t *testing.T) {
	var opened string
	orig := openURL
	defer func() { openURL = orig }()
	openURL = func(url string) error {
		opened = url
		return errors.New("no browser")
	}

	var out bytes.Buffer
	tok, err := promptToken(strings.NewReader("  abc123  \n"), &out, "https://dmoj.ca/edit/profile/")
	require.NoError(t, err)
	assert.Equal(t, "abc123", tok)
	assert.Equal(t, "https://dmoj.ca/edit/profile/", opened)
	assert.Contains(t, out.String(), "visit the page above manually")

	_, err = promptToken(strings.NewReader(""), &out, "https://dmoj.ca/edit/profile/")
	assert.ErrorContains(t, err, "no token entered")
}
