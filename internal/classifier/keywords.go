package classifier

import "github.com/jonesrussell/north-cloud/techintel/internal/domain"

// keywordGroup pairs a label with the keywords that select it.
type keywordGroup[L ~string] struct {
	label    L
	keywords []string
}

// Group order is significant: the first matching group wins for category
// and trend, and topics are reported in this order.

var categoryGroups = []keywordGroup[domain.Category]{
	{domain.CategorySecurity, []string{"security", "cyber", "lockdown", "threat", "privacy", "governance", "compliance"}},
	{domain.CategoryAIML, []string{"ai", "machine learning", "chatbot", "copilot", "gpt", "inference", "llm", "neural"}},
	{domain.CategoryCloud, []string{"cloud", "azure", "aws", "storage", "datacenter", "data center", "saas", "kubernetes"}},
	{domain.CategoryDevOps, []string{"devops", "postgresql", "database", "container", "docker", "deploy"}},
	{domain.CategoryEnterprise, []string{"enterprise", "partner", "marketplace", "business", "strategy"}},
	{domain.CategoryInnovation, []string{"innovation", "xr", "vr", "ar", "robot", "quantum", "glasses", "wearable"}},
}

var positiveWords = []string{
	"best", "great", "excellent", "supercharged", "breakthrough", "proud", "leader",
	"upgrade", "boost", "improve", "advance", "exciting", "honored", "strong",
	"worthy", "wonders", "exhilarating", "premium", "momentum", "future", "new",
}

var negativeWords = []string{
	"slow", "problem", "blame", "attack", "threat", "risk", "issue",
	"missing", "old", "dropped", "hard", "fail", "decline",
}

var trendGroups = []keywordGroup[domain.Trend]{
	{domain.TrendEmerging, []string{"launch", "introduce", "announce", "first", "new"}},
	{domain.TrendGrowing, []string{"grow", "rise", "boost", "expand", "future"}},
	{domain.TrendDeclining, []string{"decline", "drop", "slow", "end"}},
}

// MaxTopics caps the number of topics reported per article.
const MaxTopics = 4

var topicGroups = []keywordGroup[string]{
	{"AI", []string{"ai", "machine learning", "chatbot", "gpt", "copilot", "inference"}},
	{"Cloud", []string{"cloud", "azure", "aws", "gcp"}},
	{"Security", []string{"security", "cyber", "privacy", "lockdown"}},
	{"Storage", []string{"storage", "datacenter", "netapp"}},
	{"Microsoft", []string{"microsoft", "azure", "windows"}},
	{"Database", []string{"postgresql", "sql", "database"}},
	{"Hardware", []string{"laptop", "phone", "chip", "gpu", "nvidia", "ssd"}},
	{"Mobile", []string{"iphone", "android", "app"}},
	{"Enterprise", []string{"enterprise", "business", "marketplace"}},
	{"Healthcare", []string{"healthcare", "medicine", "life sciences"}},
}
