package export

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/report"
)

const titleWidth = 60

// TableRenderer writes human-readable tables.
type TableRenderer struct {
	out io.Writer
}

// NewTableRenderer creates a TableRenderer writing to out.
func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{out: out}
}

func (r *TableRenderer) newWriter(title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)
	return t
}

// RenderArticles lists the enriched articles.
func (r *TableRenderer) RenderArticles(articles []domain.EnrichedArticle) {
	t := r.newWriter("Articles")
	t.AppendHeader(table.Row{"#", "Title", "Source", "Category", "Sentiment", "Score", "Trend", "Topics"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: titleWidth},
		{Number: 6, Align: text.AlignRight},
	})

	for i := range articles {
		a := &articles[i]
		t.AppendRow(table.Row{
			i + 1,
			a.Title,
			a.Source,
			a.Category,
			a.Sentiment,
			fmt.Sprintf("%.2f", a.SentimentScore),
			a.TrendSignal,
			joinTopics(a),
		})
	}

	t.Render()
}

// RenderSummary prints headline metrics and the trending topics.
func (r *TableRenderer) RenderSummary(s report.Summary) {
	t := r.newWriter("Key Metrics")
	t.AppendHeader(table.Row{"Total", "Positive", "Negative", "Neutral", "Avg Score", "Categories"})
	t.AppendRow(table.Row{s.Total, s.Positive, s.Negative, s.Neutral, fmt.Sprintf("%.2f", s.AverageScore), len(s.Categories)})
	t.Render()

	r.renderCounts("Categories", s.Categories)
	r.renderCounts("Trend Signals", s.Trends)
	r.renderCounts("Articles by Source", s.Sources)
	r.renderCounts("Trending Topics", s.TrendingTopics)
}

func (r *TableRenderer) renderCounts(title string, counts []report.Count) {
	if len(counts) == 0 {
		return
	}
	t := r.newWriter(title)
	t.AppendHeader(table.Row{"Label", "Count"})
	for _, c := range counts {
		t.AppendRow(table.Row{c.Label, c.Count})
	}
	t.Render()
}

// RenderSources lists feed sources.
func (r *TableRenderer) RenderSources(sources []domain.Source) {
	t := r.newWriter("Sources")
	t.AppendHeader(table.Row{"Name", "URL"})
	for _, s := range sources {
		t.AppendRow(table.Row{s.Name, s.URL})
	}
	t.Render()
}
