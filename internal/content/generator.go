// Package content renders social posts and business commentary for a classified article.
package content

import (
	"fmt"
	"strings"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/textutil"
)

// Length limits for generated posts.
const (
	TweetTitleLength      = 210
	LinkedInSummaryLength = 150
)

const (
	tweetPrefix            = "📰"
	defaultHashtags        = "#Tech"
	linkedInPrefix         = "🔍"
	linkedInCallToAction   = "What are your thoughts?"
	linkedInTrailingHashes = "#TechTrends"
)

var hashtags = map[domain.Category]string{
	domain.CategoryAIML:       "#AI #MachineLearning #Tech",
	domain.CategoryCloud:      "#Cloud #Azure #CloudComputing",
	domain.CategorySecurity:   "#CyberSecurity #InfoSec #Tech",
	domain.CategoryDevOps:     "#DevOps #CloudNative #Tech",
	domain.CategoryEnterprise: "#Enterprise #Digital #Tech",
	domain.CategoryInnovation: "#Innovation #FutureTech",
	domain.CategoryOther:      "#Tech #Digital #Innovation",
}

var impacts = map[domain.Category]string{
	domain.CategoryAIML:       "AI capabilities reshape enterprise workflows, requiring integration strategy evaluation.",
	domain.CategoryCloud:      "Cloud developments impact operational costs and transformation timelines.",
	domain.CategorySecurity:   "Security developments affect risk management and compliance requirements.",
	domain.CategoryDevOps:     "DevOps improvements accelerate release cycles and system reliability.",
	domain.CategoryEnterprise: "Enterprise tech shifts influence procurement and IT strategy.",
	domain.CategoryInnovation: "Emerging tech presents competitive advantages and disruption risks.",
	domain.CategoryOther:      "Technology trends evolve the digital landscape with new opportunities.",
}

var recommendations = map[domain.Category]string{
	domain.CategoryAIML:       "Evaluate this AI development for workflow integration.",
	domain.CategoryCloud:      "Review cloud architecture to leverage latest services.",
	domain.CategorySecurity:   "Assess security posture for this evolving landscape.",
	domain.CategoryDevOps:     "Consider these tools to streamline your pipeline.",
	domain.CategoryEnterprise: "Align technology roadmap with these trends.",
	domain.CategoryInnovation: "Monitor this technology for early-adoption advantages.",
	domain.CategoryOther:      "Evaluate this trend for potential business impact.",
}

// Posts is the generated text for one article.
type Posts struct {
	Twitter        string
	LinkedIn       string
	BusinessImpact string
	Recommendation string
}

// Generate renders every post and commentary line for article in category.
func Generate(article domain.RawArticle, category domain.Category) Posts {
	return Posts{
		Twitter:        TwitterPost(article.Title, category),
		LinkedIn:       LinkedInPost(article.Title, article.Description, category),
		BusinessImpact: BusinessImpact(category),
		Recommendation: Recommendation(category),
	}
}

// TwitterPost returns the short-form post: prefix, title cut to
// TweetTitleLength characters, then the category hashtags.
func TwitterPost(title string, category domain.Category) string {
	tags, ok := hashtags[category]
	if !ok {
		tags = defaultHashtags
	}
	return fmt.Sprintf("%s %s %s", tweetPrefix, textutil.Truncate(title, TweetTitleLength), tags)
}

// LinkedInPost returns the long-form post built around the title and a
// description excerpt.
func LinkedInPost(title, description string, category domain.Category) string {
	return fmt.Sprintf("%s Key development in %s: %s. %s %s #%s %s",
		linkedInPrefix,
		category,
		title,
		textutil.Truncate(description, LinkedInSummaryLength),
		linkedInCallToAction,
		CategoryHashtag(category),
		linkedInTrailingHashes,
	)
}

// CategoryHashtag strips slashes and spaces so a category can be used as a tag.
func CategoryHashtag(category domain.Category) string {
	return strings.NewReplacer("/", "", " ", "").Replace(string(category))
}

// BusinessImpact returns the one-sentence impact statement for category.
func BusinessImpact(category domain.Category) string {
	return lookup(impacts, category)
}

// Recommendation returns the one-sentence action item for category.
func Recommendation(category domain.Category) string {
	return lookup(recommendations, category)
}

func lookup(table map[domain.Category]string, category domain.Category) string {
	if s, ok := table[category]; ok {
		return s
	}
	return table[domain.CategoryOther]
}
