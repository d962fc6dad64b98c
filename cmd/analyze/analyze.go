// Package analyze implements the analyze command, which runs the pipeline
// once and writes the enriched articles.
package analyze

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/north-cloud/techintel/cmd/common"
	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/export"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
	"github.com/jonesrussell/north-cloud/techintel/internal/report"
)

type options struct {
	sources   []string
	customURL string
	max       int
	format    string
	output    string
}

// Command creates the analyze command. load is called when the command runs.
func Command(load common.Loader) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Fetch feeds and print enriched articles",
		Long: `Fetches the selected feeds, classifies every article by category,
sentiment and trend, and generates social posts for it.

Example:
  techintel analyze
  techintel analyze --source "Azure Blog" --max 10 --format csv -o report.csv
  techintel analyze --custom-url https://example.com/feed.xml --format rss`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load()
			if err != nil {
				return err
			}
			return run(cmd, deps, opts)
		},
	}

	cmd.Flags().StringArrayVarP(&opts.sources, "source", "s", nil,
		"Source to fetch, repeatable (default: every configured source)")
	cmd.Flags().StringVar(&opts.customURL, "custom-url", "", "Additional RSS feed URL")
	cmd.Flags().IntVarP(&opts.max, "max", "n", 0,
		fmt.Sprintf("Maximum articles, %d to %d (default: pipeline.max_articles)", pipeline.MinArticles, pipeline.MaxArticles))
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(export.FormatTable),
		"Output format: table, json, yaml, csv, social, rss")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

func run(cmd *cobra.Command, deps common.CommandDeps, opts *options) error {
	cfg := deps.Config

	format, err := export.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	limit := opts.max
	if limit == 0 {
		limit = cfg.Pipeline.MaxArticles
	}
	if limitErr := pipeline.ValidateLimit(limit); limitErr != nil {
		return limitErr
	}

	sources, err := selectSources(cfg.Sources, opts)
	if err != nil {
		return err
	}

	progress := cmd.ErrOrStderr()
	p := common.NewPipeline(cfg, deps.Logger,
		pipeline.WithProgress(func(r pipeline.SourceReport) {
			fmt.Fprintln(progress, r.String())
		}),
	)

	result, err := p.Run(cmd.Context(), sources, limit)
	if errors.Is(err, pipeline.ErrNoArticles) {
		return fmt.Errorf("%w: check your sources or internet connection", err)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(progress, "Analyzed %d articles\n", len(result.Articles))

	out, closeOut, err := openOutput(cmd.OutOrStdout(), opts.output)
	if err != nil {
		return err
	}

	writeErr := export.Write(out, format, report.FromResult(result), cfg.Channel, time.Now())
	if closeErr := closeOut(); writeErr == nil {
		writeErr = closeErr
	}
	if writeErr != nil {
		return fmt.Errorf("write %s output: %w", format, writeErr)
	}

	if opts.output != "" {
		deps.Logger.Info("Report written",
			logger.String("path", opts.output),
			logger.String("format", string(format)),
		)
	}

	return nil
}

func selectSources(available []domain.Source, opts *options) ([]domain.Source, error) {
	names := opts.sources
	if len(names) == 0 {
		names = make([]string, 0, len(available))
		for _, src := range available {
			names = append(names, src.Name)
		}
	}
	return pipeline.SelectSources(available, names, opts.customURL)
}

func openOutput(stdout io.Writer, path string) (io.Writer, func() error, error) {
	if path == "" {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}
