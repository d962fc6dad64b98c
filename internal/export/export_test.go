package export_test

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jonesrussell/north-cloud/techintel/internal/domain"
	"github.com/jonesrussell/north-cloud/techintel/internal/export"
	"github.com/jonesrussell/north-cloud/techintel/internal/feed"
	"github.com/jonesrussell/north-cloud/techintel/internal/pipeline"
	"github.com/jonesrussell/north-cloud/techintel/internal/report"
)

var generatedAt = time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC)

func fixtureArticles() []domain.EnrichedArticle {
	return []domain.EnrichedArticle{
		pipeline.Enrich(domain.RawArticle{
			Title:       "Azure launches new AI copilot",
			Description: "Great new AI feature",
			Link:        "https://example.com/azure",
			PubDate:     "Mon, 15 Jan 2024 08:00:00 +0000",
			Source:      "Azure Blog",
		}),
		pipeline.Enrich(domain.RawArticle{
			Title:       "Ransomware attack hits hospitals",
			Description: "Security teams respond, with commas",
			Link:        "https://example.com/ransom",
			Source:      "ZDNet Cloud",
		}),
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for _, f := range export.Formats {
		got, err := export.ParseFormat(strings.ToUpper(string(f)))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := export.ParseFormat("pdf")
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}

func TestFormat_FileName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tech_intel_20240115.csv", export.FormatCSV.FileName(generatedAt))
	assert.Equal(t, "social_20240115.txt", export.FormatSocial.FileName(generatedAt))
	assert.Equal(t, "text/csv; charset=utf-8", export.FormatCSV.ContentType())
}

func TestWriteCSV(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteCSV(&buf, fixtureArticles()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, export.CSVHeader, rows[0])

	first := rows[1]
	assert.Equal(t, "Azure launches new AI copilot", first[0])
	assert.Equal(t, "Azure Blog", first[1])
	assert.Equal(t, "positive", first[2])
	assert.Equal(t, "0.54", first[3])
	assert.Equal(t, "AI/ML", first[4])
	assert.Equal(t, "emerging", first[5])
	assert.Equal(t, "AI, Cloud, Microsoft", first[6])
	assert.Equal(t, "Great new AI feature", first[7])
	assert.Equal(t, "Security teams respond, with commas", rows[2][7])
}

func TestWriteSocial(t *testing.T) {
	t.Parallel()

	articles := fixtureArticles()
	var buf bytes.Buffer
	require.NoError(t, export.WriteSocial(&buf, articles, generatedAt))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "SOCIAL MEDIA POSTS\nGenerated: 2024-01-15T09:30:00Z\n\n"))
	assert.Contains(t, out, "--- Post 1 ---\nArticle: Azure launches new AI copilot\nTwitter: "+articles[0].TwitterPost+"\nLinkedIn: "+articles[0].LinkedInPost+"\n\n")
	assert.Contains(t, out, "--- Post 2 ---\nArticle: Ransomware attack hits hospitals\n")
}

func TestWriteRSS_ReadableByParser(t *testing.T) {
	t.Parallel()

	articles := fixtureArticles()
	var buf bytes.Buffer
	info := export.ChannelInfo{Title: "Tech Intelligence", Link: "https://example.com", Description: "Enriched"}
	require.NoError(t, export.WriteRSS(&buf, info, articles, generatedAt))

	out := buf.String()
	assert.Contains(t, out, "<category>AI/ML</category>")
	assert.Contains(t, out, "<category>Security</category>")

	reparsed := feed.NewParser().Parse(out, "republished")
	require.Len(t, reparsed, 2)
	assert.Equal(t, "Azure launches new AI copilot", reparsed[0].Title)
	assert.Equal(t, "https://example.com/azure", reparsed[0].Link)
	assert.Equal(t, fmt.Sprintf("Great new AI feature\n\nSentiment: %s (%.2f)",
		articles[0].Sentiment, articles[0].SentimentScore), reparsed[0].Description)
	assert.Contains(t, reparsed[1].Description, "Sentiment: "+string(articles[1].Sentiment))
	assert.Equal(t, "Mon, 15 Jan 2024 08:00:00 +0000", reparsed[0].PubDate)
	assert.Empty(t, reparsed[1].PubDate)
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteJSON(&buf, fixtureArticles()[:1]))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Azure Blog", decoded[0]["source"])
	assert.Equal(t, "AI/ML", decoded[0]["category"])
	assert.Equal(t, "emerging", decoded[0]["trend_signal"])
	assert.Contains(t, decoded[0], "pub_date")
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, fixtureArticles()[:1]))

	var decoded []map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "Azure launches new AI copilot", decoded[0]["title"])
	assert.Equal(t, "positive", decoded[0]["sentiment"])
}

func TestTableRenderer(t *testing.T) {
	t.Parallel()

	articles := fixtureArticles()
	var buf bytes.Buffer
	r := export.NewTableRenderer(&buf)

	r.RenderArticles(articles)
	r.RenderSummary(report.Summarize(articles))
	r.RenderSources(pipeline.DefaultSources())

	out := buf.String()
	assert.Contains(t, out, "Azure launches new AI copilot")
	assert.Contains(t, out, "Trending Topics")
	assert.Contains(t, out, "https://www.zdnet.com/topic/cloud/rss.xml")
}

func TestWrite_AllFormats(t *testing.T) {
	t.Parallel()

	run := report.FromResult(&pipeline.Result{RunID: "run-7", Articles: fixtureArticles(), Fetched: 2})
	info := export.ChannelInfo{Title: "Tech Intelligence", Link: "https://example.com"}

	want := map[export.Format]string{
		export.FormatTable:  "Key Metrics",
		export.FormatJSON:   `"run_id": "run-7"`,
		export.FormatYAML:   "run_id: run-7",
		export.FormatCSV:    "Title,Source,Sentiment",
		export.FormatSocial: "--- Post 2 ---",
		export.FormatRSS:    "<title>Tech Intelligence</title>",
	}

	for _, f := range export.Formats {
		t.Run(string(f), func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			require.NoError(t, export.Write(&buf, f, run, info, generatedAt))
			assert.Contains(t, buf.String(), want[f])
		})
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	t.Parallel()

	err := export.Write(&bytes.Buffer{}, export.Format("pdf"), report.Run{}, export.ChannelInfo{}, generatedAt)
	require.ErrorIs(t, err, export.ErrUnknownFormat)
}
