// Package sitemap resolves the list of spec pages to scrape from the
// site's XML sitemap, with a flat-file cache so the sitemap is only
// fetched once.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// Source fetches raw bytes for a URL. Satisfied by fetcher.Fetcher.
type Source interface {
	GetBytes(url string) ([]byte, error)
}

// urlSet matches the <urlset><url><loc> layout of a standard sitemap.
type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc string `xml:"loc"`
}

// Resolve returns the page URLs listed in the sitemap, in document order.
// When cachePath exists its lines are returned verbatim (blank lines
// skipped) without touching the network; otherwise the sitemap is fetched
// and the list written to cachePath, one URL per line. A fetch failure on
// the uncached path is fatal to the run: there is no fallback list.
func Resolve(logger *slog.Logger, source Source, sitemapURL, cachePath string) ([]string, error) {
	if data, err := os.ReadFile(cachePath); err == nil {
		urls := splitLines(data)
		logger.Info("Loaded URL list from cache", "file", cachePath, "url_count", len(urls))
		return urls, nil
	}

	logger.Info("Retrieving sitemap", "url", sitemapURL)
	data, err := source.GetBytes(sitemapURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sitemap: %w", err)
	}

	urls, err := parse(data)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(cachePath, []byte(strings.Join(urls, "\n")+"\n"), 0644); err != nil {
		return nil, fmt.Errorf("failed to write URL list cache: %w", err)
	}
	logger.Info("Retrieved and cached URL list", "file", cachePath, "url_count", len(urls))

	return urls, nil
}

func parse(data []byte) ([]string, error) {
	var set urlSet
	if err := xml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to parse sitemap XML: %w", err)
	}

	urls := make([]string, 0, len(set.URLs))
	for _, entry := range set.URLs {
		loc := strings.TrimSpace(entry.Loc)
		if loc != "" {
			urls = append(urls, loc)
		}
	}
	return urls, nil
}

func splitLines(data []byte) []string {
	var urls []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls
}
