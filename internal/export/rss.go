package export

import (
	"fmt"
	"io"
	"time"

	"github.com/gorilla/feeds"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
)

// ChannelInfo describes the republished channel.
type ChannelInfo struct {
	Title       string `mapstructure:"title" yaml:"title"`
	Link        string `mapstructure:"link" yaml:"link"`
	Description string `mapstructure:"description" yaml:"description"`
}

// pubDateLayouts are the date forms commonly seen in RSS pubDate elements.
var pubDateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC3339,
}

// WriteRSS republishes articles as an RSS 2.0 channel. Each item carries the
// category, the generated commentary as content and the LinkedIn post as its
// description when the article has none. The sentiment label and score are
// appended to the description.
func WriteRSS(w io.Writer, info ChannelInfo, articles []domain.EnrichedArticle, generated time.Time) error {
	f := &feeds.Feed{
		Title:       info.Title,
		Link:        &feeds.Link{Href: info.Link},
		Description: info.Description,
		Created:     generated,
	}

	for i := range articles {
		a := &articles[i]
		desc := a.Description
		if desc == "" {
			desc = a.LinkedInPost
		}
		desc += "\n\n" + sentimentLine(a)
		f.Add(&feeds.Item{
			Title:       a.Title,
			Link:        &feeds.Link{Href: a.Link},
			Description: desc,
			Id:          a.Link,
			Created:     parsePubDate(a.PubDate),
			Content:     a.BusinessImpact + " " + a.Recommendation,
		})
	}

	channel := (&feeds.Rss{Feed: f}).RssFeed()
	for i, item := range channel.Items {
		item.Category = string(articles[i].Category)
	}

	if err := feeds.WriteXML(channel, w); err != nil {
		return fmt.Errorf("write rss: %w", err)
	}
	return nil
}

func sentimentLine(a *domain.EnrichedArticle) string {
	return fmt.Sprintf("Sentiment: %s (%.2f)", a.Sentiment, a.SentimentScore)
}

func parsePubDate(s string) time.Time {
	for _, layout := range pubDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
