// Package config manages application configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Environment variables selecting cookie-based authentication for yt-dlp.
// When both are set the cookie file takes precedence.
const (
	CookiesFileEnv        = "SHOWLOG_COOKIES_FILE"
	CookiesFromBrowserEnv = "SHOWLOG_COOKIES_FROM_BROWSER"
)

// Config holds all application configuration for building show recap documents.
type Config struct {
	// YtdlpPath is the path to the yt-dlp executable (default: "yt-dlp")
	YtdlpPath string `json:"ytdlp_path"`
	// YtdlpTimeout is the maximum time to wait for yt-dlp operations
	YtdlpTimeout time.Duration `json:"ytdlp_timeout"`

	// DefaultLanguages is the caption language preference order.
	// These are always appended to any user-provided language list.
	DefaultLanguages []string `json:"default_languages"`

	// CookiesFile is a Netscape-format cookie file passed to yt-dlp.
	CookiesFile string `json:"cookies_file"`
	// CookiesFromBrowser is a browser profile name passed to yt-dlp.
	// Ignored when CookiesFile is set.
	CookiesFromBrowser string `json:"cookies_from_browser"`

	// OpenAIModel is the completion model used for document formatting.
	OpenAIModel string `json:"openai_model"`
	// OpenAIKey is the completion API credential (from OPENAI_API_KEY).
	OpenAIKey string `json:"-"`

	// MaxChunkChars bounds the size of a single completion request.
	MaxChunkChars int `json:"max_chunk_chars"`
	// MaxDocumentChars is the absolute ceiling for AI formatting.
	MaxDocumentChars int `json:"max_document_chars"`

	// CredentialsFile is the Google OAuth client secrets file.
	CredentialsFile string `json:"credentials_file"`
	// TokenFile caches the Google OAuth token between runs.
	TokenFile string `json:"token_file"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		YtdlpPath:        "yt-dlp",
		YtdlpTimeout:     5 * time.Minute,
		DefaultLanguages: []string{"en", "en-US"},
		OpenAIModel:      "gpt-5-nano",
		MaxChunkChars:    10_000,
		MaxDocumentChars: 1_000_000,
		CredentialsFile:  "credentials.json",
		TokenFile:        "token.json",
	}
}

// Load loads configuration from environment variables, config file, and applies defaults.
// Priority: env vars > config file > defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	// Override with environment variables
	cfg.loadFromEnv()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFromFile attempts to load config from showlog.json in current directory or home directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"showlog.json",
		filepath.Join(os.Getenv("HOME"), ".config", "showlog", "showlog.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("SHOWLOG_YTDLP_PATH"); v != "" {
		c.YtdlpPath = v
	}
	if v := os.Getenv("SHOWLOG_YTDLP_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.YtdlpTimeout = d
		}
	}
	if v := os.Getenv("SHOWLOG_LANGUAGES"); v != "" {
		c.DefaultLanguages = splitList(v)
	}
	if v := os.Getenv(CookiesFileEnv); v != "" {
		c.CookiesFile = v
	}
	if v := os.Getenv(CookiesFromBrowserEnv); v != "" {
		c.CookiesFromBrowser = v
	}
	if v := os.Getenv("SHOWLOG_MODEL"); v != "" {
		c.OpenAIModel = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIKey = v
	}
	if v := os.Getenv("SHOWLOG_MAX_CHUNK_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxChunkChars = n
		}
	}
	if v := os.Getenv("SHOWLOG_MAX_DOCUMENT_CHARS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxDocumentChars = n
		}
	}
	if v := os.Getenv("SHOWLOG_CREDENTIALS"); v != "" {
		c.CredentialsFile = v
	}
	if v := os.Getenv("SHOWLOG_TOKEN"); v != "" {
		c.TokenFile = v
	}
}

// Validate checks that configuration values are valid and consistent.
// It returns an error if any configuration value is invalid.
func (c *Config) Validate() error {
	if c.YtdlpTimeout <= 0 {
		return fmt.Errorf("ytdlp_timeout must be positive")
	}
	if len(c.DefaultLanguages) == 0 {
		return fmt.Errorf("default_languages must not be empty")
	}
	if c.MaxChunkChars <= 0 {
		return fmt.Errorf("max_chunk_chars must be positive")
	}
	if c.MaxDocumentChars < c.MaxChunkChars {
		return fmt.Errorf("max_document_chars must be >= max_chunk_chars")
	}
	if c.OpenAIModel == "" {
		return fmt.Errorf("openai_model must not be empty")
	}
	return nil
}

// splitList splits a comma-separated list, trimming whitespace and dropping empties.
func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
