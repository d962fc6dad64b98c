// Package report aggregates enriched articles into run-level metrics.
package report

import (
	"math"
	"sort"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
)

// MaxTrendingTopics is the number of topics listed as trending.
const MaxTrendingTopics = 12

// Count is a label with the number of articles carrying it.
type Count struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Summary holds the headline metrics of a run.
type Summary struct {
	Total          int     `json:"total"           yaml:"total"`
	Positive       int     `json:"positive"        yaml:"positive"`
	Negative       int     `json:"negative"        yaml:"negative"`
	Neutral        int     `json:"neutral"         yaml:"neutral"`
	AverageScore   float64 `json:"average_score"   yaml:"average_score"`
	Categories     []Count `json:"categories"      yaml:"categories"`
	Trends         []Count `json:"trends"          yaml:"trends"`
	Sources        []Count `json:"sources"         yaml:"sources"`
	TrendingTopics []Count `json:"trending_topics" yaml:"trending_topics"`
}

// Summarize computes the metrics for articles. Category, trend and source
// counts keep first-seen order; trending topics are sorted by count, ties
// in first-seen order, and capped at MaxTrendingTopics.
func Summarize(articles []domain.EnrichedArticle) Summary {
	s := Summary{Total: len(articles)}

	categories := newCounter()
	trends := newCounter()
	sources := newCounter()
	topics := newCounter()
	var scoreSum float64

	for i := range articles {
		a := &articles[i]
		switch a.Sentiment {
		case domain.SentimentPositive:
			s.Positive++
		case domain.SentimentNegative:
			s.Negative++
		default:
			s.Neutral++
		}
		scoreSum += a.SentimentScore

		categories.add(string(a.Category))
		trends.add(string(a.TrendSignal))
		sources.add(a.Source)
		for _, t := range a.KeyTopics {
			topics.add(t)
		}
	}

	if s.Total > 0 {
		s.AverageScore = math.RoundToEven(scoreSum/float64(s.Total)*100) / 100
	}

	s.Categories = categories.counts
	s.Trends = trends.counts
	s.Sources = sources.counts

	trending := topics.counts
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Count > trending[j].Count
	})
	if len(trending) > MaxTrendingTopics {
		trending = trending[:MaxTrendingTopics]
	}
	s.TrendingTopics = trending

	return s
}

type counter struct {
	index  map[string]int
	counts []Count
}

func newCounter() *counter {
	return &counter{index: make(map[string]int), counts: []Count{}}
}

func (c *counter) add(label string) {
	if i, ok := c.index[label]; ok {
		c.counts[i].Count++
		return
	}
	c.index[label] = len(c.counts)
	c.counts = append(c.counts, Count{Label: label, Count: 1})
}
