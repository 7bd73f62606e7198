package config

import (
	"fmt"
	"net/url"
	"os"
)

// Default values for every configurable knob. The fortune path default
// matches the conventional install location of the fortune package on
// Debian-style systems.
const (
	// DefaultListenAddr is the address the HTTP server binds to.
	DefaultListenAddr = "0.0.0.0:8000"

	// DefaultFortunePath is the filesystem path of the fortune binary.
	DefaultFortunePath = "/usr/games/fortune"

	// DefaultUpstreamBaseURL is the base URL of the cat image service.
	DefaultUpstreamBaseURL = "https://cataas.com"

	// DefaultFontSize is the font size requested for the overlaid text.
	DefaultFontSize = 22

	// DefaultWrapWidth is the maximum line width used when reflowing
	// fortune text before it is sent upstream.
	DefaultWrapWidth = 70
)

// Environment variable names recognized by ApplyEnv.
const (
	// EnvFortunePath overrides the fortune executable path.
	EnvFortunePath = "FORTUNE_PATH"

	// EnvUpstreamBaseURL overrides the upstream base URL. This is mainly
	// useful for pointing the gateway at a local test double.
	EnvUpstreamBaseURL = "CATAAS_BASE_URL"
)

// Config holds all settings for the fortune-cat service.
//
// Field tags cover both supported config file formats: yaml tags for
// .yaml/.yml files and json tags for .json/.jsonc files.
type Config struct {
	// ListenAddr is the host:port the HTTP server listens on.
	ListenAddr string `yaml:"listen_addr" json:"listenAddr"`

	// FortunePath is the filesystem path of the fortune executable.
	FortunePath string `yaml:"fortune_path" json:"fortunePath"`

	// UpstreamBaseURL is the base URL of the cat image service.
	// The path /cat/cute/says/<text> is appended per request.
	UpstreamBaseURL string `yaml:"upstream_base_url" json:"upstreamBaseUrl"`

	// FontSize is the fontSize query parameter sent upstream.
	FontSize int `yaml:"font_size" json:"fontSize"`

	// WrapWidth is the maximum line width for fortune reflowing.
	WrapWidth int `yaml:"wrap_width" json:"wrapWidth"`
}

// Default returns a Config populated with the built-in defaults.
func Default() *Config {
	return &Config{
		ListenAddr:      DefaultListenAddr,
		FortunePath:     DefaultFortunePath,
		UpstreamBaseURL: DefaultUpstreamBaseURL,
		FontSize:        DefaultFontSize,
		WrapWidth:       DefaultWrapWidth,
	}
}

// withDefaults fills any zero-valued field from the built-in defaults.
// This lets config files specify only the fields they care about.
func (c *Config) withDefaults() *Config {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.FortunePath == "" {
		c.FortunePath = DefaultFortunePath
	}
	if c.UpstreamBaseURL == "" {
		c.UpstreamBaseURL = DefaultUpstreamBaseURL
	}
	if c.FontSize <= 0 {
		c.FontSize = DefaultFontSize
	}
	if c.WrapWidth <= 0 {
		c.WrapWidth = DefaultWrapWidth
	}
	return c
}

// ApplyEnv overrides config fields from environment variables.
// Environment variables take precedence over file-provided values,
// matching the usual container deployment convention.
func (c *Config) ApplyEnv() *Config {
	if path := os.Getenv(EnvFortunePath); path != "" {
		c.FortunePath = path
	}
	if base := os.Getenv(EnvUpstreamBaseURL); base != "" {
		c.UpstreamBaseURL = base
	}
	return c
}

// Validate checks that the resolved configuration is usable.
// It returns the first problem found.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.FortunePath == "" {
		return fmt.Errorf("fortune_path must not be empty")
	}
	u, err := url.Parse(c.UpstreamBaseURL)
	if err != nil {
		return fmt.Errorf("invalid upstream_base_url %q: %w", c.UpstreamBaseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("upstream_base_url %q must use http or https", c.UpstreamBaseURL)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size must be positive, got %d", c.FontSize)
	}
	if c.WrapWidth <= 0 {
		return fmt.Errorf("wrap_width must be positive, got %d", c.WrapWidth)
	}
	return nil
}
