package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DirName is created under the user's home directory
	DirName  = ".dmoj-submit"
	fileName = "config.json"

	// EnvPrefix makes DMOJ_TOKEN and DMOJ_BASE_URL override the file
	EnvPrefix = "DMOJ"
)

// DefaultExtKeyMap maps file extensions to judge language keys when the
// config has no entry for an extension.
var DefaultExtKeyMap = map[string]string{
	"c":    "c",
	"cpp":  "cpp20",
	"java": "java",
	"kt":   "kotlin",
	"py":   "pypy3",
	"lua":  "lua",
	"rs":   "rust",
	"txt":  "text",
	"go":   "go",
	"hs":   "hask",
	"js":   "v8js",
	"nim":  "nim",
	"ml":   "ocaml",
	"zig":  "zig",
}

type Config struct {
	Token     string            `json:"token" mapstructure:"token"`
	ExtKeyMap map[string]string `json:"ext_key_map" mapstructure:"ext_key_map"`
	BaseURL   string            `json:"base_url" mapstructure:"base_url"`
}

// Store reads and writes the config file in one directory.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultStore uses ~/.dmoj-submit
func DefaultStore() (*Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("could not get the home directory: %w", err)
	}
	return NewStore(filepath.Join(home, DirName)), nil
}

func (s *Store) Path() string {
	return filepath.Join(s.dir, fileName)
}

// Load reads the config file with environment overrides applied. A missing
// file yields an empty config.
func (s *Store) Load() (*Config, error) {
	return s.read(true)
}

// LoadFile reads only what is stored on disk, for read-modify-write updates.
func (s *Store) LoadFile() (*Config, error) {
	return s.read(false)
}

func (s *Store) read(withEnv bool) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(s.Path())
	v.SetConfigType("json")
	if withEnv {
		v.SetEnvPrefix(EnvPrefix)
		_ = v.BindEnv("token")
		_ = v.BindEnv("base_url")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load configuration: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not load configuration: %w", err)
	}
	return &cfg, nil
}

// Save writes cfg, creating the directory if needed. The file holds the API
// token, so it is only readable by the owner.
func (s *Store) Save(cfg *Config) error {
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return fmt.Errorf("could not create config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigType("json")
	v.Set("token", cfg.Token)
	v.Set("ext_key_map", cfg.ExtKeyMap)
	v.Set("base_url", cfg.BaseURL)

	if err := v.WriteConfigAs(s.Path()); err != nil {
		return fmt.Errorf("could not store configuration: %w", err)
	}
	if err := os.Chmod(s.Path(), 0600); err != nil {
		return fmt.Errorf("could not store configuration: %w", err)
	}
	return nil
}

// ClearToken removes the stored token and keeps everything else.
func (s *Store) ClearToken() error {
	cfg, err := s.LoadFile()
	if err != nil {
		return err
	}
	cfg.Token = ""
	return s.Save(cfg)
}

// ParseLanguageMap parses "ext:key,ext:key" pairs, e.g. "cpp:cpp20,py:pypy3".
func ParseLanguageMap(arg string) (map[string]string, error) {
	ret := make(map[string]string)
	for _, pair := range strings.Split(arg, ",") {
		parts := strings.Split(strings.TrimSpace(pair), ":")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("couldn't parse language argument %q: expected ext:key", pair)
		}
		ret[strings.TrimPrefix(parts[0], ".")] = parts[1]
	}
	return ret, nil
}

// LanguageKey picks the language key for a file extension, preferring the
// configured mapping over the built-in defaults. defaulted reports whether the
// built-in table was used.
func (cfg *Config) LanguageKey(ext string) (key string, defaulted bool, err error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		return "", false, errors.New("no file extension specified")
	}
	if key, ok := cfg.ExtKeyMap[ext]; ok {
		return key, false, nil
	}
	if key, ok := DefaultExtKeyMap[ext]; ok {
		return key, true, nil
	}
	return "", false, fmt.Errorf("could not determine language for extension %q", ext)
}

// String renders the config for display, hiding most of the token.
func (cfg *Config) String() string {
	var b strings.Builder
	token := "<unset>"
	if cfg.Token != "" {
		token = maskToken(cfg.Token)
	}
	fmt.Fprintf(&b, "token: %s\n", token)
	if cfg.BaseURL != "" {
		fmt.Fprintf(&b, "base_url: %s\n", cfg.BaseURL)
	}

	exts := make([]string, 0, len(cfg.ExtKeyMap))
	for ext := range cfg.ExtKeyMap {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	b.WriteString("ext_key_map:")
	if len(exts) == 0 {
		b.WriteString(" {}")
	}
	b.WriteString("\n")
	for _, ext := range exts {
		fmt.Fprintf(&b, "  %s: %s\n", ext, cfg.ExtKeyMap[ext])
	}
	return b.String()
}

func maskToken(token string) string {
	if len(token) <= 8 {
		return strings.Repeat("*", len(token))
	}
	return token[:4] + strings.Repeat("*", len(token)-8) + token[len(token)-4:]
}
