// Package export writes enriched articles in the formats offered to users:
// CSV reports, social post digests, republished RSS, tables and JSON/YAML.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
)

// Format names an output format.
type Format string

const (
	FormatTable  Format = "table"
	FormatJSON   Format = "json"
	FormatYAML   Format = "yaml"
	FormatCSV    Format = "csv"
	FormatSocial Format = "social"
	FormatRSS    Format = "rss"
)

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown output format")

// Formats lists every supported format.
var Formats = []Format{FormatTable, FormatJSON, FormatYAML, FormatCSV, FormatSocial, FormatRSS}

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// ContentType is the MIME type served for f.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatYAML:
		return "application/yaml; charset=utf-8"
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatRSS:
		return "application/rss+xml; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// FileName is the dated download name for f, e.g. tech_intel_20240115.csv.
func (f Format) FileName(now time.Time) string {
	date := now.Format("20060102")
	switch f {
	case FormatCSV:
		return "tech_intel_" + date + ".csv"
	case FormatSocial:
		return "social_" + date + ".txt"
	case FormatRSS:
		return "tech_intel_" + date + ".xml"
	case FormatJSON:
		return "tech_intel_" + date + ".json"
	case FormatYAML:
		return "tech_intel_" + date + ".yaml"
	default:
		return "tech_intel_" + date + ".txt"
	}
}

// WriteJSON encodes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// WriteYAML encodes v as YAML.
func WriteYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

func joinTopics(a *domain.EnrichedArticle) string {
	return strings.Join(a.KeyTopics, ", ")
}
