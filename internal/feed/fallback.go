package feed

import (
	"html"
	"strings"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/textutil"
	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"
)

// parseFallback reads feeds that carry no <item> elements, such as Atom.
// Parse errors degrade to an empty result like every other parser path.
func (p *Parser) parseFallback(raw, source string) []domain.RawArticle {
	parsed, err := gofeed.NewParser().ParseString(raw)
	if err != nil {
		p.log.Debug("Fallback feed parse failed",
			logger.String("source", source),
			logger.Error(err),
		)
		return []domain.RawArticle{}
	}

	policy := bluemonday.StrictPolicy()
	articles := make([]domain.RawArticle, 0, len(parsed.Items))

	for _, entry := range parsed.Items {
		desc := entry.Description
		if desc == "" {
			desc = entry.Content
		}

		articles = append(articles, domain.RawArticle{
			Title:       strings.TrimSpace(entry.Title),
			Description: textutil.Truncate(flatten(policy, desc), MaxDescriptionLength),
			Link:        entryLink(entry),
			PubDate:     entryDate(entry),
			Source:      source,
		})
	}

	return articles
}

func flatten(policy *bluemonday.Policy, markup string) string {
	return strings.TrimSpace(html.UnescapeString(policy.Sanitize(markup)))
}

func entryLink(entry *gofeed.Item) string {
	if entry.Link != "" {
		return entry.Link
	}
	if len(entry.Links) > 0 {
		return entry.Links[0]
	}
	return ""
}

func entryDate(entry *gofeed.Item) string {
	if entry.Published != "" {
		return entry.Published
	}
	return entry.Updated
}
