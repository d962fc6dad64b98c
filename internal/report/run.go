package report

import (
	"time"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
)

// Run is the presentable form of one pipeline run.
type Run struct {
	RunID    string                   `json:"run_id"      yaml:"run_id"`
	Articles []domain.EnrichedArticle `json:"articles"    yaml:"articles"`
	Sources  []pipeline.SourceReport  `json:"sources"     yaml:"sources"`
	Summary  Summary                  `json:"summary"     yaml:"summary"`
	Fetched  int                      `json:"fetched"     yaml:"fetched"`
	Duration time.Duration            `json:"duration_ns" yaml:"duration"`
}

// FromResult summarizes a pipeline result.
func FromResult(result *pipeline.Result) Run {
	return Run{
		RunID:    result.RunID,
		Articles: result.Articles,
		Sources:  result.Sources,
		Summary:  Summarize(result.Articles),
		Fetched:  result.Fetched,
		Duration: result.Duration,
	}
}
