// Package config loads the process configuration from an optional YAML file
// layered over built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/amehta/fight-events/internal/event"
)

type Config struct {
	Scraper  ScraperConfig       `yaml:"scraper"`
	Display  DisplayConfig       `yaml:"display"`
	Orgs     map[string][]string `yaml:"orgs,omitempty"`
	Storage  StorageConfig       `yaml:"storage"`
	Server   ServerConfig        `yaml:"server"`
	Telegram TelegramConfig      `yaml:"telegram"`
}

type ScraperConfig struct {
	BaseURL   string        `yaml:"base_url"`
	EventsURL string        `yaml:"events_url"`
	UserAgent string        `yaml:"user_agent"`
	Timeout   time.Duration `yaml:"timeout"`
}

type DisplayConfig struct {
	// Timezones the start time is rendered in, in output order.
	Timezones []TimezoneConfig `yaml:"timezones"`
	// Reference is the IANA zone the visibility cutoff is computed in.
	Reference string `yaml:"reference"`
}

type TimezoneConfig struct {
	Location string `yaml:"location"` // IANA zone name
	Label    string `yaml:"label"`    // printed after the formatted time
}

type StorageConfig struct {
	DataDir string `yaml:"data_dir"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type TelegramConfig struct {
	BotToken string `yaml:"bot_token"`
	ChatID   int64  `yaml:"chat_id"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scraper: ScraperConfig{
			BaseURL:   "https://www.sherdog.com",
			EventsURL: "https://www.sherdog.com/events",
			UserAgent: "Mozilla/5.0",
			Timeout:   30 * time.Second,
		},
		Display: DisplayConfig{
			Timezones: []TimezoneConfig{
				{Location: "America/New_York", Label: "EST"},
				{Location: "Asia/Kolkata", Label: "IST"},
			},
			Reference: "Asia/Kolkata",
		},
		Storage: StorageConfig{
			DataDir: "~/.local/share/fight-events",
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults unchanged.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// DisplayZones resolves the configured display timezones.
func (c *Config) DisplayZones() ([]event.Zone, error) {
	zones := make([]event.Zone, 0, len(c.Display.Timezones))
	for _, tz := range c.Display.Timezones {
		loc, err := time.LoadLocation(tz.Location)
		if err != nil {
			return nil, fmt.Errorf("loading display timezone %q: %w", tz.Location, err)
		}
		zones = append(zones, event.Zone{Location: loc, Label: tz.Label})
	}
	return zones, nil
}

// ReferenceLocation resolves the reference timezone used for the visibility
// cutoff.
func (c *Config) ReferenceLocation() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Display.Reference)
	if err != nil {
		return nil, fmt.Errorf("loading reference timezone %q: %w", c.Display.Reference, err)
	}
	return loc, nil
}
