package api

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/export"
	"github.com/jonesrussell/north-cloud/techintel/internal/logger"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
	"github.com/jonesrussell/north-cloud/techintel/internal/report"
)

// Runner executes one pipeline run.
type Runner interface {
	Run(ctx context.Context, sources []domain.Source, limit int) (*pipeline.Result, error)
}

// HandlerConfig holds what the handler needs besides the runner.
type HandlerConfig struct {
	ServiceName  string
	Sources      []domain.Source
	DefaultLimit int
	Channel      export.ChannelInfo
	// Metrics is served on /metrics when set.
	Metrics http.Handler
	// AnalyzeLimiter throttles POST /api/v1/analyze when set.
	AnalyzeLimiter *rate.Limiter
}

// Handler handles techintel HTTP requests.
type Handler struct {
	runner  Runner
	cfg     HandlerConfig
	log     logger.Logger
	started time.Time
	now     func() time.Time
}

// NewHandler creates a Handler.
func NewHandler(runner Runner, cfg HandlerConfig, log logger.Logger) *Handler {
	if cfg.DefaultLimit == 0 {
		cfg.DefaultLimit = pipeline.DefaultArticles
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &Handler{
		runner:  runner,
		cfg:     cfg,
		log:     log,
		started: time.Now(),
		now:     time.Now,
	}
}

// SetupRoutes registers the health, metrics and v1 routes.
func SetupRoutes(router *gin.Engine, h *Handler) {
	router.GET("/health", h.Health)
	router.HEAD("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	if h.cfg.Metrics != nil {
		router.GET("/metrics", gin.WrapH(h.cfg.Metrics))
	}

	analyze := []gin.HandlerFunc{h.Analyze}
	if h.cfg.AnalyzeLimiter != nil {
		analyze = append([]gin.HandlerFunc{RateLimitMiddleware(h.cfg.AnalyzeLimiter, h.log)}, analyze...)
	}

	v1 := router.Group("/api/v1")
	v1.GET("/sources", h.ListSources) // GET /api/v1/sources
	v1.POST("/analyze", analyze...)   // POST /api/v1/analyze
}

// Health handles GET /health.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Service: h.cfg.ServiceName,
		Uptime:  h.now().Sub(h.started).Truncate(time.Second).String(),
	})
}

// ListSources handles GET /api/v1/sources.
func (h *Handler) ListSources(c *gin.Context) {
	c.JSON(http.StatusOK, SourcesResponse{
		Sources: h.cfg.Sources,
		Total:   len(h.cfg.Sources),
	})
}

// Analyze handles POST /api/v1/analyze. The response format is chosen with
// ?format= and defaults to json.
func (h *Handler) Analyze(c *gin.Context) {
	log := logger.FromContext(c.Request.Context())

	format, err := export.ParseFormat(c.DefaultQuery("format", string(export.FormatJSON)))
	if err == nil && format == export.FormatTable {
		err = fmt.Errorf("%w: %q is only available from the command line", export.ErrUnknownFormat, format)
	}
	if err != nil {
		h.badRequest(c, err)
		return
	}

	var req AnalyzeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && !errors.Is(bindErr, io.EOF) {
		h.badRequest(c, bindErr)
		return
	}

	sources, limit, err := h.resolve(req)
	if err != nil {
		h.badRequest(c, err)
		return
	}

	log.Info("Analyze requested",
		logger.Int("sources", len(sources)),
		logger.Int("limit", limit),
		logger.String("format", string(format)),
	)

	result, err := h.runner.Run(c.Request.Context(), sources, limit)
	if errors.Is(err, pipeline.ErrNoArticles) {
		resp := ErrorResponse{Error: err.Error(), Code: CodeNoArticles}
		if result != nil {
			resp.Sources = result.Sources
		}
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	if err != nil {
		log.Error("Analyze failed", logger.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeInternal})
		return
	}

	h.render(c, format, result)
}

// resolve turns a request into the sources and cap for a run.
func (h *Handler) resolve(req AnalyzeRequest) ([]domain.Source, int, error) {
	limit := req.MaxArticles
	if limit == 0 {
		limit = h.cfg.DefaultLimit
	}
	if err := pipeline.ValidateLimit(limit); err != nil {
		return nil, 0, err
	}

	names := req.Sources
	if names == nil {
		names = make([]string, 0, len(h.cfg.Sources))
		for _, src := range h.cfg.Sources {
			names = append(names, src.Name)
		}
	}

	sources, err := pipeline.SelectSources(h.cfg.Sources, names, req.CustomURL)
	if err != nil {
		return nil, 0, err
	}

	return sources, limit, nil
}

// render writes the run in format. JSON goes through gin; the other formats
// are buffered so a render error can still produce a 500.
func (h *Handler) render(c *gin.Context, format export.Format, result *pipeline.Result) {
	run := report.FromResult(result)
	if format == export.FormatJSON {
		c.JSON(http.StatusOK, run)
		return
	}

	now := h.now()
	var buf bytes.Buffer
	if err := export.Write(&buf, format, run, h.cfg.Channel, now); err != nil {
		h.log.Error("Render failed", logger.String("format", string(format)), logger.Error(err))
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error(), Code: CodeInternal})
		return
	}

	if format != export.FormatYAML {
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", format.FileName(now)))
	}
	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}

func (h *Handler) badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error(), Code: CodeInvalidRequest})
}
