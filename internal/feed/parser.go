package feed

import (
	"regexp"
	"strings"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/textutil"
)

// MaxDescriptionLength is the number of characters kept from a description.
const MaxDescriptionLength = 300

var (
	itemPattern   = regexp.MustCompile(`(?s)<item>(.*?)</item>`)
	markupPattern = regexp.MustCompile(`<[^>]+>`)
)

// Parser turns raw feed text into article records.
type Parser struct {
	atomFallback bool
	log          logger.Logger
}

// ParserOption configures a Parser.
type ParserOption func(*Parser)

// WithAtomFallback makes the parser read Atom and JSON feeds when the text
// holds no <item> element.
func WithAtomFallback() ParserOption {
	return func(p *Parser) {
		p.atomFallback = true
	}
}

// WithParserLogger sets the logger used for fallback diagnostics.
func WithParserLogger(log logger.Logger) ParserOption {
	return func(p *Parser) {
		p.log = log
	}
}

// NewParser creates a Parser.
func NewParser(opts ...ParserOption) *Parser {
	p := &Parser{log: logger.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse returns one RawArticle per <item> element in raw, labelled with source.
// It never fails. Empty or unrecognised text yields an empty slice.
func (p *Parser) Parse(raw, source string) []domain.RawArticle {
	matches := itemPattern.FindAllStringSubmatch(raw, -1)
	if len(matches) == 0 {
		if p.atomFallback && strings.TrimSpace(raw) != "" {
			return p.parseFallback(raw, source)
		}
		return []domain.RawArticle{}
	}

	articles := make([]domain.RawArticle, 0, len(matches))
	for _, m := range matches {
		articles = append(articles, parseItem(m[1], source))
	}

	return articles
}

func parseItem(fragment, source string) domain.RawArticle {
	return domain.RawArticle{
		Title:       ExtractTag(fragment, TagTitle),
		Description: CleanDescription(ExtractTag(fragment, TagDescription)),
		Link:        ExtractTag(fragment, TagLink),
		PubDate:     ExtractTag(fragment, TagPubDate),
		Source:      source,
	}
}

// CleanDescription strips markup tags, trims whitespace and truncates to
// MaxDescriptionLength characters plus an ellipsis.
func CleanDescription(desc string) string {
	plain := strings.TrimSpace(markupPattern.ReplaceAllString(desc, ""))
	return textutil.Truncate(plain, MaxDescriptionLength)
}
