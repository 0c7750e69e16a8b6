// Package config resolves runtime settings from the environment, an optional
// .env file and command-line flags.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"

	"github.com/dimerciabaruani-tech/economics-quiz-app/internal/bank"
)

// Environment variables consulted by Load.
const (
	EnvLogLevel = "ECONQUIZ_LOG_LEVEL"
	EnvNoColor  = "ECONQUIZ_NO_COLOR"
	EnvBankDir  = "ECONQUIZ_BANK_DIR"

	// EnvNoColorStd is the cross-tool convention, see https://no-color.org.
	EnvNoColorStd = "NO_COLOR"
)

// DefaultLogLevel keeps normal play silent on stderr.
const DefaultLogLevel = "warn"

type Config struct {
	LogLevel slog.Level
	NoColor  bool

	// BankDir holds question bank JSON files to use instead of the
	// built-in banks. Empty means built-in.
	BankDir string
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	// A missing .env is fine; variables may come from the real environment.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config using getenv for lookups.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		NoColor: getenv(EnvNoColorStd) != "" || getenv(EnvNoColor) != "",
		BankDir: getenv(EnvBankDir),
	}
	if err := cfg.SetLogLevel(getenvDefault(getenv, EnvLogLevel, DefaultLogLevel)); err != nil {
		return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
	}
	return cfg, nil
}

// SetLogLevel parses a level name such as "debug", "info", "warn" or
// "error" (case-insensitive).
func (c *Config) SetLogLevel(s string) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return fmt.Errorf("invalid log level %q", s)
	}
	c.LogLevel = level
	return nil
}

// LoadCatalog loads the question banks from BankDir, or the built-in banks
// when BankDir is empty.
func (c *Config) LoadCatalog() (*bank.Catalog, error) {
	if c.BankDir == "" {
		return bank.Load()
	}
	catalog, err := bank.LoadFS(os.DirFS(c.BankDir))
	if err != nil {
		return nil, fmt.Errorf("load banks from %s: %w", c.BankDir, err)
	}
	return catalog, nil
}

// Styled reports whether output to the file descriptor fd should use
// colors and screen control: color is not disabled and fd is a terminal.
func (c *Config) Styled(fd uintptr) bool {
	if c.NoColor {
		return false
	}
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewLogger returns a text logger writing to w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

func getenvDefault(getenv func(string) string, k, fallback string) string {
	if v := getenv(k); v != "" {
		return v
	}
	return fallback
}
