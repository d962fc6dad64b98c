package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks every section and returns all problems joined together.
func (c *Config) Validate() error {
	var errs []error

	if !logger.ValidLevel(c.Logger.Level) {
		errs = append(errs, &ValidationError{Field: "logger.level", Message: "must be one of: debug, info, warn, error, fatal"})
	}
	switch c.Logger.Format {
	case logger.FormatJSON, logger.FormatConsole:
	default:
		errs = append(errs, &ValidationError{Field: "logger.format", Message: "must be one of: json, console"})
	}

	if c.Fetcher.Timeout <= 0 {
		errs = append(errs, &ValidationError{Field: "fetcher.timeout", Message: "must be positive"})
	}

	if err := pipeline.ValidateLimit(c.Pipeline.MaxArticles); err != nil {
		errs = append(errs, &ValidationError{Field: "pipeline.max_articles", Message: err.Error()})
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, &ValidationError{Field: "server.port", Message: "must be between 1 and 65535"})
	}

	if c.Server.AnalyzePerMinute < 0 {
		errs = append(errs, &ValidationError{Field: "server.analyze_per_minute", Message: "must not be negative"})
	}
	if c.Server.AnalyzePerMinute > 0 && c.Server.AnalyzeBurst < 1 {
		errs = append(errs, &ValidationError{Field: "server.analyze_burst", Message: "must be at least 1 when rate limiting"})
	}

	errs = append(errs, validateSources(c)...)

	return errors.Join(errs...)
}

func validateSources(c *Config) []error {
	var errs []error
	seen := make(map[string]bool, len(c.Sources))

	for i, src := range c.Sources {
		field := fmt.Sprintf("sources[%d]", i)
		if strings.TrimSpace(src.Name) == "" {
			errs = append(errs, &ValidationError{Field: field + ".name", Message: "is required"})
		}
		if !strings.HasPrefix(src.URL, "http://") && !strings.HasPrefix(src.URL, "https://") {
			errs = append(errs, &ValidationError{Field: field + ".url", Message: "must start with http:// or https://"})
		}
		if seen[src.Name] {
			errs = append(errs, &ValidationError{Field: field + ".name", Message: fmt.Sprintf("duplicate source %q", src.Name)})
		}
		seen[src.Name] = true
	}

	return errs
}
