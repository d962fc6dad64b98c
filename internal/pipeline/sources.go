package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
)

// CustomSourceName labels the ad-hoc feed a user may add to a run.
const CustomSourceName = "Custom Feed"

// Cap bounds enforced by callers before a run.
const (
	MinArticles     = 5
	MaxArticles     = 50
	DefaultArticles = 30
)

var (
	// ErrInvalidCustomURL is returned for a custom feed URL without an http(s) scheme.
	ErrInvalidCustomURL = errors.New("custom feed URL must start with http:// or https://")
	// ErrUnknownSource is returned when a requested source is not configured.
	ErrUnknownSource = errors.New("unknown source")
	// ErrNoSources is returned when a run would have nothing to fetch.
	ErrNoSources = errors.New("select at least one source or provide a custom feed URL")
	// ErrLimitOutOfRange is returned for a cap outside MinArticles..MaxArticles.
	ErrLimitOutOfRange = fmt.Errorf("max articles must be between %d and %d", MinArticles, MaxArticles)
)

// DefaultSources are the feeds used when none are configured.
func DefaultSources() []domain.Source {
	return []domain.Source{
		{Name: "Azure Blog", URL: "https://azure.microsoft.com/en-us/blog/feed/"},
		{Name: "ZDNet Cloud", URL: "https://www.zdnet.com/topic/cloud/rss.xml"},
		{Name: "CloudComputing News", URL: "https://www.cloudcomputing-news.net/feed/"},
	}
}

// CustomSource validates rawURL and returns it as the custom feed source.
func CustomSource(rawURL string) (domain.Source, error) {
	u := strings.TrimSpace(rawURL)
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return domain.Source{}, fmt.Errorf("%w: %q", ErrInvalidCustomURL, rawURL)
	}
	return domain.Source{Name: CustomSourceName, URL: u}, nil
}

// SelectSources resolves names against available, in the order requested,
// and appends the custom feed when customURL is set. Repeated names are
// fetched once.
func SelectSources(available []domain.Source, names []string, customURL string) ([]domain.Source, error) {
	byName := make(map[string]domain.Source, len(available))
	for _, src := range available {
		byName[src.Name] = src
	}

	selected := make([]domain.Source, 0, len(names)+1)
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		src, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSource, n)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		selected = append(selected, src)
	}

	if strings.TrimSpace(customURL) != "" {
		custom, err := CustomSource(customURL)
		if err != nil {
			return nil, err
		}
		selected = append(selected, custom)
	}

	if len(selected) == 0 {
		return nil, ErrNoSources
	}

	return selected, nil
}

// ValidateLimit checks that limit lies within MinArticles..MaxArticles.
func ValidateLimit(limit int) error {
	if limit < MinArticles || limit > MaxArticles {
		return fmt.Errorf("%w: got %d", ErrLimitOutOfRange, limit)
	}
	return nil
}
