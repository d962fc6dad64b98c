package pipeline_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/feed"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
)

const azureItem = `<item><title>Azure launches new AI copilot</title><description>Great new AI feature</description><link>http://x</link><pubDate>Mon</pubDate></item>`

// stubFetcher serves canned bodies keyed by URL; unknown URLs fail.
type stubFetcher struct {
	bodies map[string]string
	mu     sync.Mutex
	calls  []string
}

func (s *stubFetcher) Fetch(_ context.Context, url string) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, url)
	s.mu.Unlock()

	body, ok := s.bodies[url]
	if !ok {
		return "", fmt.Errorf("%w: unexpected status 404", feed.ErrFetchFailed)
	}
	return body, nil
}

type countingRecorder struct {
	fetchOK   int
	fetchFail int
	enriched  map[domain.Category]int
	runs      []string
}

func (r *countingRecorder) RecordFetch(_ string, ok bool, _ int, _ time.Duration) {
	if ok {
		r.fetchOK++
		return
	}
	r.fetchFail++
}

func (r *countingRecorder) RecordEnriched(c domain.Category) {
	if r.enriched == nil {
		r.enriched = make(map[domain.Category]int)
	}
	r.enriched[c]++
}

func (r *countingRecorder) RecordRun(outcome string, _ time.Duration) {
	r.runs = append(r.runs, outcome)
}

func items(prefix string, n int) string {
	var b strings.Builder
	b.WriteString("<rss><channel>")
	for i := range n {
		fmt.Fprintf(&b, "<item><title>%s %d</title><link>https://example.com/%s/%d</link></item>", prefix, i, prefix, i)
	}
	b.WriteString("</channel></rss>")
	return b.String()
}

func sources(names ...string) []domain.Source {
	out := make([]domain.Source, 0, len(names))
	for _, n := range names {
		out = append(out, domain.Source{Name: n, URL: "https://feeds.test/" + n})
	}
	return out
}

func TestRun_EndToEndExample(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{bodies: map[string]string{
		"https://feeds.test/Azure Blog": "<rss><channel>" + azureItem + "</channel></rss>",
	}}

	result, err := pipeline.New(fetcher, nil, nil).Run(context.Background(), sources("Azure Blog"), 30)

	require.NoError(t, err)
	require.Len(t, result.Articles, 1)
	a := result.Articles[0]
	assert.Equal(t, "Azure Blog", a.Source)
	assert.Equal(t, "http://x", a.Link)
	assert.Equal(t, "Mon", a.PubDate)
	assert.Equal(t, domain.CategoryAIML, a.Category)
	assert.Equal(t, domain.SentimentPositive, a.Sentiment)
	assert.InDelta(t, 0.54, a.SentimentScore, 1e-9)
	assert.Equal(t, domain.TrendEmerging, a.TrendSignal)
	assert.Contains(t, a.KeyTopics, "AI")
	assert.Contains(t, a.KeyTopics, "Microsoft")
	assert.Equal(t, "📰 Azure launches new AI copilot #AI #MachineLearning #Tech", a.TwitterPost)
	assert.Equal(t, "Evaluate this AI development for workflow integration.", a.Recommendation)
	assert.NotEmpty(t, result.RunID)
}

func TestRun_TruncatesInSourceOrder(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{bodies: map[string]string{
		"https://feeds.test/a": items("a", 4),
		"https://feeds.test/b": items("b", 4),
		"https://feeds.test/c": items("c", 4),
	}}

	result, err := pipeline.New(fetcher, nil, nil).Run(context.Background(), sources("a", "b", "c"), 5)

	require.NoError(t, err)
	require.Len(t, result.Articles, 5)
	assert.Equal(t, 12, result.Fetched)
	for i := range 4 {
		assert.Equal(t, "a", result.Articles[i].Source)
	}
	assert.Equal(t, "b", result.Articles[4].Source)
	assert.Equal(t, "b 0", result.Articles[4].Title)
	assert.Equal(t, []string{"https://feeds.test/a", "https://feeds.test/b", "https://feeds.test/c"}, fetcher.calls)
}

func TestRun_NonPositiveLimitKeepsEverything(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{bodies: map[string]string{
		"https://feeds.test/a": items("a", 3),
		"https://feeds.test/b": items("b", 3),
	}}

	result, err := pipeline.New(fetcher, nil, nil).Run(context.Background(), sources("a", "b"), 0)

	require.NoError(t, err)
	assert.Len(t, result.Articles, 6)
}

func TestRun_FailedSourceIsSkipped(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{bodies: map[string]string{
		"https://feeds.test/a": items("a", 2),
		"https://feeds.test/c": items("c", 3),
	}}
	rec := &countingRecorder{}

	var progress []string
	p := pipeline.New(fetcher, nil, nil,
		pipeline.WithRecorder(rec),
		pipeline.WithProgress(func(r pipeline.SourceReport) { progress = append(progress, r.String()) }),
	)

	result, err := p.Run(context.Background(), sources("a", "b", "c"), 50)

	require.NoError(t, err)
	assert.Len(t, result.Articles, 5)
	assert.Equal(t, []string{"a: 2 articles", "Could not fetch b", "c: 3 articles"}, progress)
	require.Len(t, result.Sources, 3)
	assert.False(t, result.Sources[1].OK)
	assert.Equal(t, 2, rec.fetchOK)
	assert.Equal(t, 1, rec.fetchFail)
	assert.Equal(t, []string{"success"}, rec.runs)
	assert.Equal(t, 5, rec.enriched[domain.CategoryOther])
}

func TestRun_NoArticles(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{bodies: map[string]string{
		"https://feeds.test/empty": "<rss><channel></channel></rss>",
	}}
	rec := &countingRecorder{}

	result, err := pipeline.New(fetcher, nil, nil, pipeline.WithRecorder(rec)).
		Run(context.Background(), sources("empty", "down"), 30)

	require.ErrorIs(t, err, pipeline.ErrNoArticles)
	require.NotNil(t, result)
	assert.Empty(t, result.Articles)
	require.Len(t, result.Sources, 2)
	assert.True(t, result.Sources[0].OK)
	assert.Equal(t, "empty: 0 articles", result.Sources[0].String())
	assert.False(t, result.Sources[1].OK)
	assert.Equal(t, []string{"no_articles"}, rec.runs)
}

func TestRun_NoSources(t *testing.T) {
	t.Parallel()

	result, err := pipeline.New(&stubFetcher{}, nil, nil).Run(context.Background(), nil, 30)

	require.ErrorIs(t, err, pipeline.ErrNoArticles)
	assert.Empty(t, result.Sources)
}

func TestRun_EmptyBodyCountsAsFailure(t *testing.T) {
	t.Parallel()

	fetcher := &stubFetcher{bodies: map[string]string{"https://feeds.test/a": ""}}

	result, err := pipeline.New(fetcher, nil, nil).Run(context.Background(), sources("a"), 30)

	require.ErrorIs(t, err, pipeline.ErrNoArticles)
	assert.Equal(t, "Could not fetch a", result.Sources[0].String())
}

func TestRun_LogsFetchFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	log := logger.NewFromZap(zap.New(core))

	fetcher := &stubFetcher{bodies: map[string]string{"https://feeds.test/a": items("a", 1)}}
	result, err := pipeline.New(fetcher, nil, log).Run(context.Background(), sources("a", "b"), 30)
	require.NoError(t, err)

	warnings := logs.FilterMessage("Could not fetch source").All()
	require.Len(t, warnings, 1)
	fields := warnings[0].ContextMap()
	assert.Equal(t, "b", fields["source"])
	assert.Equal(t, result.RunID, fields["run_id"])
	assert.Equal(t, 1, logs.FilterMessage("Pipeline run completed").Len())
}

func TestRun_WithHTTPFetcher(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/azure", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<rss><channel>" + azureItem + "</channel></rss>"))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := pipeline.New(feed.NewHTTPFetcher(srv.Client(), ""), feed.NewParser(), nil)
	result, err := p.Run(context.Background(), []domain.Source{
		{Name: "Broken", URL: srv.URL + "/broken"},
		{Name: "Azure Blog", URL: srv.URL + "/azure"},
	}, 10)

	require.NoError(t, err)
	require.Len(t, result.Articles, 1)
	assert.Equal(t, "Azure Blog", result.Articles[0].Source)
	assert.False(t, result.Sources[0].OK)
}

func TestEnrich_KeepsRawFields(t *testing.T) {
	t.Parallel()

	raw := domain.RawArticle{Title: "Quarterly results", Link: "l", PubDate: "d", Source: "s"}
	got := pipeline.Enrich(raw)

	assert.Equal(t, raw, got.RawArticle)
	assert.Equal(t, domain.CategoryOther, got.Category)
	assert.Equal(t, domain.SentimentNeutral, got.Sentiment)
	assert.Equal(t, domain.TrendStable, got.TrendSignal)
	assert.NotNil(t, got.KeyTopics)
}

func TestSourceReport_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Azure Blog: 12 articles", pipeline.SourceReport{Name: "Azure Blog", OK: true, Articles: 12}.String())
	assert.Equal(t, "Could not fetch ZDNet Cloud", pipeline.SourceReport{Name: "ZDNet Cloud"}.String())
}

func TestErrNoArticles_IsSentinel(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("analyze: %w", pipeline.ErrNoArticles)
	assert.True(t, errors.Is(wrapped, pipeline.ErrNoArticles))
}
