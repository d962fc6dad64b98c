package feed_test

import (
	"fmt"
	"strings"
)

// rssFeed wraps item fragments in a minimal RSS 2.0 document.
func rssFeed(items ...string) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?><rss version="2.0"><channel><title>Test</title>`)
	for _, item := range items {
		b.WriteString(item)
	}
	b.WriteString(`</channel></rss>`)
	return b.String()
}

func rssItem(title, description string) string {
	return fmt.Sprintf(
		"<item>\n<title>%s</title>\n<link>https://example.com/%s</link>\n<description>%s</description>\n<pubDate>Mon, 01 Jan 2024 00:00:00 GMT</pubDate>\n</item>",
		title, strings.ReplaceAll(strings.ToLower(title), " ", "-"), description,
	)
}
