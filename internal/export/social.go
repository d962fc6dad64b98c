package export

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
)

// WriteSocial writes the social post digest: a header with the generation
// time followed by one numbered block per article.
func WriteSocial(w io.Writer, articles []domain.EnrichedArticle, generated time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "SOCIAL MEDIA POSTS\nGenerated: %s\n\n", generated.Format(time.RFC3339))
	for i := range articles {
		a := &articles[i]
		fmt.Fprintf(bw, "--- Post %d ---\nArticle: %s\nTwitter: %s\nLinkedIn: %s\n\n",
			i+1, a.Title, a.TwitterPost, a.LinkedInPost)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write social posts: %w", err)
	}
	return nil
}
