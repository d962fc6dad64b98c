// Package feed retrieves syndication feeds and extracts article records from them.
package feed

import (
	"regexp"
	"strings"
)

// Item-level tags read by the parser.
const (
	TagTitle       = "title"
	TagLink        = "link"
	TagDescription = "description"
	TagPubDate     = "pubDate"
)

var tagPatterns = map[string]*regexp.Regexp{
	TagTitle:       compileTag(TagTitle),
	TagLink:        compileTag(TagLink),
	TagDescription: compileTag(TagDescription),
	TagPubDate:     compileTag(TagPubDate),
}

func compileTag(tag string) *regexp.Regexp {
	name := regexp.QuoteMeta(tag)
	return regexp.MustCompile(`(?s)<` + name + `>(?:<!\[CDATA\[)?(.*?)(?:\]\]>)?</` + name + `>`)
}

// ExtractTag returns the trimmed text between the first <tag> and </tag> in
// fragment, with a CDATA wrapper removed. Opening tags that carry attributes
// do not match. It returns "" when the tag is absent.
func ExtractTag(fragment, tag string) string {
	re, ok := tagPatterns[tag]
	if !ok {
		re = compileTag(tag)
	}

	m := re.FindStringSubmatch(fragment)
	if m == nil {
		return ""
	}

	return strings.TrimSpace(m[1])
}
