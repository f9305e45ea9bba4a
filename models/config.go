// Package models defines data structures for configuration and extraction.
package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScrapeConfig holds runtime configuration for a scrape run. Values come
// from config.yaml when present; CLI flags override individual fields.
type ScrapeConfig struct {
	SitemapURL   string `yaml:"sitemap_url"`
	URLListFile  string `yaml:"url_list_file"`
	OutputFile   string `yaml:"output_file"`
	DatabaseFile string `yaml:"database_file"`
	WorkerCount  int    `yaml:"worker_count"`
	Limit        int    `yaml:"limit"`
}

// DefaultScrapeConfig mirrors the defaults of the original scraper.
func DefaultScrapeConfig() *ScrapeConfig {
	return &ScrapeConfig{
		SitemapURL:   "https://bikez.com/sitemap/motorcycle-specs.xml",
		URLListFile:  "url.list",
		OutputFile:   "specs.xlsx",
		DatabaseFile: "jerk.db",
		WorkerCount:  8,
	}
}

// LoadScrapeConfig reads config.yaml-style overrides on top of the
// defaults. A missing file is not an error.
func LoadScrapeConfig(path string) (*ScrapeConfig, error) {
	config := DefaultScrapeConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}
