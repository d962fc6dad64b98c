// Package pipeline sequences feed retrieval, parsing and enrichment into one run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/north-cloud/techintel/internal/classifier"
	"github.com/jonesrussell/north-cloud/techintel/internal/content"
	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/feed"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
)

// ErrNoArticles is returned when no source produced any article. The
// accompanying Result still carries the per-source reports.
var ErrNoArticles = errors.New("no articles fetched")

// Parser turns raw feed text into articles.
type Parser interface {
	Parse(raw, source string) []domain.RawArticle
}

// Recorder receives metrics for each run.
type Recorder interface {
	RecordFetch(source string, ok bool, articles int, duration time.Duration)
	RecordEnriched(category domain.Category)
	RecordRun(outcome string, duration time.Duration)
}

// SourceReport describes how one source fared during a run.
type SourceReport struct {
	Name     string        `json:"name"        yaml:"name"`
	URL      string        `json:"url"         yaml:"url"`
	OK       bool          `json:"ok"          yaml:"ok"`
	Articles int           `json:"articles"    yaml:"articles"`
	Duration time.Duration `json:"duration_ns" yaml:"duration"`
}

// String renders the report as a progress line.
func (r SourceReport) String() string {
	if !r.OK {
		return "Could not fetch " + r.Name
	}
	return fmt.Sprintf("%s: %d articles", r.Name, r.Articles)
}

// Result is the outcome of one run.
type Result struct {
	RunID    string                   `json:"run_id"      yaml:"run_id"`
	Articles []domain.EnrichedArticle `json:"articles"    yaml:"articles"`
	Sources  []SourceReport           `json:"sources"     yaml:"sources"`
	// Fetched counts articles before the cap was applied.
	Fetched  int           `json:"fetched"     yaml:"fetched"`
	Duration time.Duration `json:"duration_ns" yaml:"duration"`
}

// Pipeline fetches sources one at a time and enriches what they return.
type Pipeline struct {
	fetcher  feed.Fetcher
	parser   Parser
	log      logger.Logger
	recorder Recorder
	progress func(SourceReport)
	now      func() time.Time
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(p *Pipeline) {
		p.recorder = r
	}
}

// WithProgress registers fn to be called after each source is processed.
func WithProgress(fn func(SourceReport)) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// New creates a Pipeline. A nil parser defaults to a plain RSS parser and a
// nil logger to a no-op logger.
func New(fetcher feed.Fetcher, parser Parser, log logger.Logger, opts ...Option) *Pipeline {
	if parser == nil {
		parser = feed.NewParser()
	}
	if log == nil {
		log = logger.NewNop()
	}

	p := &Pipeline{
		fetcher:  fetcher,
		parser:   parser,
		log:      log,
		recorder: nopRecorder{},
		progress: func(SourceReport) {},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Run fetches sources in order, keeps the first limit articles (all of them
// when limit is not positive) and enriches each one. A source that cannot be
// fetched is skipped. ErrNoArticles is the only error returned.
func (p *Pipeline) Run(ctx context.Context, sources []domain.Source, limit int) (*Result, error) {
	start := p.now()
	result := &Result{
		RunID:    uuid.NewString(),
		Articles: []domain.EnrichedArticle{},
		Sources:  make([]SourceReport, 0, len(sources)),
	}
	log := p.log.With(logger.String("run_id", result.RunID))

	log.Info("Pipeline run started",
		logger.Int("sources", len(sources)),
		logger.Int("limit", limit),
	)

	var raw []domain.RawArticle
	for _, src := range sources {
		articles, report := p.collect(ctx, log, src)
		result.Sources = append(result.Sources, report)
		raw = append(raw, articles...)
		p.progress(report)
	}

	result.Fetched = len(raw)
	if len(raw) == 0 {
		result.Duration = p.now().Sub(start)
		p.recorder.RecordRun(outcomeNoArticles, result.Duration)
		log.Warn("Pipeline run produced no articles", logger.Int("sources", len(sources)))
		return result, ErrNoArticles
	}

	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	result.Articles = make([]domain.EnrichedArticle, 0, len(raw))
	for _, a := range raw {
		enriched := Enrich(a)
		p.recorder.RecordEnriched(enriched.Category)
		result.Articles = append(result.Articles, enriched)
	}

	result.Duration = p.now().Sub(start)
	p.recorder.RecordRun(outcomeSuccess, result.Duration)
	log.Info("Pipeline run completed",
		logger.Int("fetched", result.Fetched),
		logger.Int("enriched", len(result.Articles)),
		logger.Duration("duration", result.Duration),
	)

	return result, nil
}

func (p *Pipeline) collect(ctx context.Context, log logger.Logger, src domain.Source) ([]domain.RawArticle, SourceReport) {
	start := p.now()
	report := SourceReport{Name: src.Name, URL: src.URL}

	body, err := p.fetcher.Fetch(ctx, src.URL)
	if err == nil && body == "" {
		err = fmt.Errorf("%w: empty body", feed.ErrFetchFailed)
	}
	if err != nil {
		report.Duration = p.now().Sub(start)
		p.recorder.RecordFetch(src.Name, false, 0, report.Duration)
		log.Warn("Could not fetch source",
			logger.String("source", src.Name),
			logger.String("url", src.URL),
			logger.Error(err),
		)
		return nil, report
	}

	articles := p.parser.Parse(body, src.Name)
	report.OK = true
	report.Articles = len(articles)
	report.Duration = p.now().Sub(start)
	p.recorder.RecordFetch(src.Name, true, len(articles), report.Duration)
	log.Info("Fetched source",
		logger.String("source", src.Name),
		logger.Int("articles", len(articles)),
		logger.Duration("duration", report.Duration),
	)

	return articles, report
}

// Enrich classifies one article and attaches its generated content.
func Enrich(a domain.RawArticle) domain.EnrichedArticle {
	c := classifier.Classify(a.Title, a.Description)
	posts := content.Generate(a, c.Category)

	return domain.EnrichedArticle{
		RawArticle:     a,
		Category:       c.Category,
		Sentiment:      c.Sentiment,
		SentimentScore: c.SentimentScore,
		TrendSignal:    c.Trend,
		KeyTopics:      c.Topics,
		BusinessImpact: posts.BusinessImpact,
		Recommendation: posts.Recommendation,
		TwitterPost:    posts.Twitter,
		LinkedInPost:   posts.LinkedIn,
	}
}

const (
	outcomeSuccess    = "success"
	outcomeNoArticles = "no_articles"
)

type nopRecorder struct{}

func (nopRecorder) RecordFetch(string, bool, int, time.Duration) {}
func (nopRecorder) RecordEnriched(domain.Category)               {}
func (nopRecorder) RecordRun(string, time.Duration)              {}
