package export

import (
	"fmt"
	"io"
	"time"

	"github.com/jonesrussell/north-cloud/techintel/internal/report"
)

// Write renders run in format f. Table output lists the articles followed
// by the summary.
func Write(w io.Writer, f Format, run report.Run, channel ChannelInfo, now time.Time) error {
	switch f {
	case FormatTable:
		r := NewTableRenderer(w)
		r.RenderArticles(run.Articles)
		r.RenderSummary(run.Summary)
		return nil
	case FormatJSON:
		return WriteJSON(w, run)
	case FormatYAML:
		return WriteYAML(w, run)
	case FormatCSV:
		return WriteCSV(w, run.Articles)
	case FormatSocial:
		return WriteSocial(w, run.Articles, now)
	case FormatRSS:
		return WriteRSS(w, channel, run.Articles, now)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}
