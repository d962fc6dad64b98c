package common

import (
	"github.com/jonesrussell/north-cloud/techintel/internal/config"
	"github.com/jonesrussell/north-cloud/techintel/internal/feed"
	"github.com/jonesrussell/north-cloud/techintel/internal/httpclient"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
)

// NewPipeline wires the fetcher and parser described by cfg into a Pipeline.
func NewPipeline(cfg *config.Config, log logger.Logger, opts ...pipeline.Option) *pipeline.Pipeline {
	client := httpclient.NewClient(&httpclient.ClientConfig{Timeout: cfg.Fetcher.Timeout})
	fetcher := feed.NewHTTPFetcher(client, cfg.Fetcher.UserAgent)

	parserOpts := []feed.ParserOption{feed.WithParserLogger(log)}
	if cfg.Parser.AtomFallback {
		parserOpts = append(parserOpts, feed.WithAtomFallback())
	}

	return pipeline.New(fetcher, feed.NewParser(parserOpts...), log, opts...)
}
