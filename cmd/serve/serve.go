// Package serve implements the serve command, which exposes the pipeline
// over HTTP.
package serve

import (
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/north-cloud/techintel/cmd/common"
	"github.com/jonesrussell/north-cloud/techintel/internal/api"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
	"github.com/jonesrussell/north-cloud/techintel/internal/telemetry"
)

// Command creates the serve command.
func Command(load common.Loader) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Long: `Starts the HTTP API. Endpoints:
  GET  /health
  GET  /metrics
  GET  /api/v1/sources
  POST /api/v1/analyze?format=json|yaml|csv|social|rss`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, err := load()
			if err != nil {
				return err
			}
			defer func() { _ = deps.Logger.Sync() }()

			return newServer(deps).RunWithGracefulShutdown(cmd.Context())
		},
	}
}

func newServer(deps common.CommandDeps) *api.Server {
	cfg := deps.Config
	metrics := telemetry.NewProvider()

	handler := api.NewHandler(
		common.NewPipeline(cfg, deps.Logger, pipeline.WithRecorder(metrics)),
		api.HandlerConfig{
			ServiceName:  cfg.App.Name,
			Sources:      cfg.Sources,
			DefaultLimit: cfg.Pipeline.MaxArticles,
			Channel:      cfg.Channel,
			Metrics:      metrics.Handler(),

			AnalyzeLimiter: api.NewAnalyzeLimiter(cfg.Server.AnalyzePerMinute, cfg.Server.AnalyzeBurst),
		},
		deps.Logger,
	)

	deps.Logger.Info("Configured sources", logger.Int("count", len(cfg.Sources)))

	return api.NewServer(cfg.Server, cfg.App.Debug, deps.Logger, func(router *gin.Engine) {
		api.SetupRoutes(router, handler)
	})
}
