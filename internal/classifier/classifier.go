// Package classifier assigns category, sentiment, trend and topic labels to
// articles by keyword matching over the lowercased title and description.
package classifier

import (
	"math"
	"strings"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
)

// NeutralScore is the score given to articles with balanced or no sentiment words.
const NeutralScore = 0.05

// Matchers are built once from the fixed tables and shared read-only.
var (
	categoryMatcher = newGroupMatcher(categoryGroups)
	trendMatcher    = newGroupMatcher(trendGroups)
	topicMatcher    = newGroupMatcher(topicGroups)
	positiveMatcher = newGroupMatcher([]keywordGroup[domain.Sentiment]{{domain.SentimentPositive, positiveWords}})
	negativeMatcher = newGroupMatcher([]keywordGroup[domain.Sentiment]{{domain.SentimentNegative, negativeWords}})
)

// Result bundles every classification of one article.
type Result struct {
	Category       domain.Category
	Sentiment      domain.Sentiment
	SentimentScore float64
	Trend          domain.Trend
	Topics         []string
}

// Classify runs all four classifiers over the article text.
func Classify(title, description string) Result {
	text := normalize(title, description)
	label, score := sentimentOf(text)

	return Result{
		Category:       categoryOf(text),
		Sentiment:      label,
		SentimentScore: score,
		Trend:          trendOf(text),
		Topics:         topicsOf(text),
	}
}

// Category returns the first category, in priority order, with a keyword in
// the text. Articles matching none are domain.CategoryOther.
func Category(title, description string) domain.Category {
	return categoryOf(normalize(title, description))
}

// Sentiment counts distinct positive and negative words and maps the
// counts to a label and a score in [-0.9, 0.9].
func Sentiment(title, description string) (domain.Sentiment, float64) {
	return sentimentOf(normalize(title, description))
}

// Trend returns the first trend signal with a keyword in the text, or
// domain.TrendStable.
func Trend(title, description string) domain.Trend {
	return trendOf(normalize(title, description))
}

// Topics returns up to MaxTopics topic labels in table order.
func Topics(title, description string) []string {
	return topicsOf(normalize(title, description))
}

func normalize(title, description string) string {
	return strings.ToLower(title + " " + description)
}

func categoryOf(text string) domain.Category {
	if c, ok := categoryMatcher.first(text); ok {
		return c
	}
	return domain.CategoryOther
}

func sentimentOf(text string) (domain.Sentiment, float64) {
	_, pc := positiveMatcher.match(text)
	_, nc := negativeMatcher.match(text)

	switch {
	case pc > nc+1:
		return domain.SentimentPositive, round2(math.Min(0.3+0.12*float64(pc), 0.9))
	case nc > pc+1:
		return domain.SentimentNegative, round2(math.Max(-0.3-0.12*float64(nc), -0.9))
	case pc > nc:
		return domain.SentimentPositive, round2(math.Min(0.2+0.08*float64(pc), 0.9))
	case nc > pc:
		return domain.SentimentNegative, round2(math.Max(-0.2-0.08*float64(nc), -0.9))
	default:
		return domain.SentimentNeutral, NeutralScore
	}
}

func trendOf(text string) domain.Trend {
	if t, ok := trendMatcher.first(text); ok {
		return t
	}
	return domain.TrendStable
}

func topicsOf(text string) []string {
	return topicMatcher.all(text, MaxTopics)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
