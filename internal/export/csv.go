package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
)

// CSVHeader is the column order of the CSV report.
var CSVHeader = []string{
	"Title", "Source", "Sentiment", "Score", "Category", "Trend",
	"Topics", "Summary", "Twitter", "LinkedIn",
}

// WriteCSV writes one row per article under CSVHeader.
func WriteCSV(w io.Writer, articles []domain.EnrichedArticle) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for i := range articles {
		a := &articles[i]
		row := []string{
			a.Title,
			a.Source,
			string(a.Sentiment),
			strconv.FormatFloat(a.SentimentScore, 'f', -1, 64),
			string(a.Category),
			string(a.TrendSignal),
			joinTopics(a),
			a.Description,
			a.TwitterPost,
			a.LinkedInPost,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}
