// Package domain holds the article records and labels shared by the pipeline stages.
package domain

// Category is the single subject bucket assigned to an article.
type Category string

// Categories in classification priority order, followed by the fallback.
const (
	CategorySecurity   Category = "Security"
	CategoryAIML       Category = "AI/ML"
	CategoryCloud      Category = "Cloud Computing"
	CategoryDevOps     Category = "DevOps"
	CategoryEnterprise Category = "Enterprise"
	CategoryInnovation Category = "Innovation"
	CategoryOther      Category = "Other"
)

// Categories lists every category, in priority order with Other last.
var Categories = []Category{
	CategorySecurity,
	CategoryAIML,
	CategoryCloud,
	CategoryDevOps,
	CategoryEnterprise,
	CategoryInnovation,
	CategoryOther,
}

// Sentiment is the polarity label of an article.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Trend is a coarse directional signal derived from keyword presence.
type Trend string

const (
	TrendEmerging  Trend = "emerging"
	TrendGrowing   Trend = "growing"
	TrendStable    Trend = "stable"
	TrendDeclining Trend = "declining"
)

// Source is a named feed URL.
type Source struct {
	Name string `json:"name" mapstructure:"name" yaml:"name"`
	URL  string `json:"url"  mapstructure:"url"  yaml:"url"`
}

// RawArticle is one feed item as extracted from the feed text.
// Missing tags leave the corresponding field empty.
type RawArticle struct {
	Title       string `json:"title"       yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Link        string `json:"link"        yaml:"link"`
	PubDate     string `json:"pub_date"    yaml:"pub_date"`
	Source      string `json:"source"      yaml:"source"`
}

// EnrichedArticle is a RawArticle with classification and generated content attached.
type EnrichedArticle struct {
	RawArticle `yaml:",inline"`

	Category       Category  `json:"category"        yaml:"category"`
	Sentiment      Sentiment `json:"sentiment"       yaml:"sentiment"`
	SentimentScore float64   `json:"sentiment_score" yaml:"sentiment_score"`
	TrendSignal    Trend     `json:"trend_signal"    yaml:"trend_signal"`
	KeyTopics      []string  `json:"key_topics"      yaml:"key_topics"`
	BusinessImpact string    `json:"business_impact" yaml:"business_impact"`
	Recommendation string    `json:"recommendation"  yaml:"recommendation"`
	TwitterPost    string    `json:"twitter_post"    yaml:"twitter_post"`
	LinkedInPost   string    `json:"linkedin_post"   yaml:"linkedin_post"`
}
