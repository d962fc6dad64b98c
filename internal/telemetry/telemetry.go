// Package telemetry exports Prometheus metrics for feed fetches and enrichment runs.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
)

const namespace = "techintel"

// Label values for fetch and run outcomes.
const (
	OutcomeSuccess    = "success"
	OutcomeFailure    = "failure"
	OutcomeNoArticles = "no_articles"
)

// Metrics holds all techintel Prometheus metrics.
type Metrics struct {
	FeedFetches       *prometheus.CounterVec
	FeedFetchDuration *prometheus.HistogramVec
	ArticlesParsed    *prometheus.CounterVec
	ArticlesEnriched  *prometheus.CounterVec
	PipelineRuns      *prometheus.CounterVec
	PipelineDuration  prometheus.Histogram
}

// Provider owns a private registry so several providers can coexist in one process.
type Provider struct {
	registry *prometheus.Registry
	Metrics  *Metrics
}

// NewProvider creates a Provider with Go runtime and process collectors registered.
func NewProvider() *Provider {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return &Provider{
		registry: reg,
		Metrics:  initMetrics(promauto.With(reg)),
	}
}

// Registry exposes the underlying registry.
func (p *Provider) Registry() *prometheus.Registry {
	return p.registry
}

// Handler returns the Prometheus HTTP handler for the /metrics endpoint.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

func initMetrics(factory promauto.Factory) *Metrics {
	return &Metrics{
		FeedFetches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "feed_fetch_total",
			Help:      "Feed fetch attempts by source and outcome",
		}, []string{"source", "outcome"}),
		FeedFetchDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "feed_fetch_duration_seconds",
			Help:      "Time to fetch a feed",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"source"}),
		ArticlesParsed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_parsed_total",
			Help:      "Articles extracted from feeds by source",
		}, []string{"source"}),
		ArticlesEnriched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_enriched_total",
			Help:      "Articles classified and enriched by category",
		}, []string{"category"}),
		PipelineRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Pipeline runs by outcome",
		}, []string{"outcome"}),
		PipelineDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_duration_seconds",
			Help:      "Wall time of a full pipeline run",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}),
	}
}

// RecordFetch records the outcome of one feed fetch.
func (p *Provider) RecordFetch(source string, ok bool, articles int, duration time.Duration) {
	outcome := OutcomeSuccess
	if !ok {
		outcome = OutcomeFailure
	}
	p.Metrics.FeedFetches.WithLabelValues(source, outcome).Inc()
	p.Metrics.FeedFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
	if ok {
		p.Metrics.ArticlesParsed.WithLabelValues(source).Add(float64(articles))
	}
}

// RecordEnriched counts one enriched article.
func (p *Provider) RecordEnriched(category domain.Category) {
	p.Metrics.ArticlesEnriched.WithLabelValues(string(category)).Inc()
}

// RecordRun records a finished pipeline run.
func (p *Provider) RecordRun(outcome string, duration time.Duration) {
	p.Metrics.PipelineRuns.WithLabelValues(outcome).Inc()
	p.Metrics.PipelineDuration.Observe(duration.Seconds())
}
