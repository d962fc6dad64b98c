package classifier

import (
	"strings"
	"sync"

	ahocorasick "github.com/cloudflare/ahocorasick"
)

// groupMatcher finds, in one pass, which keyword groups occur in a text.
// Keywords are matched as substrings, so "ai" also hits "maintain".
type groupMatcher[L ~string] struct {
	// Matcher.Match updates per-call counters inside the automaton.
	mu       sync.Mutex
	matcher  *ahocorasick.Matcher
	groups   []keywordGroup[L]
	keywords []string
	kwGroups [][]int // keyword index -> group indexes
}

func newGroupMatcher[L ~string](groups []keywordGroup[L]) *groupMatcher[L] {
	g := &groupMatcher[L]{groups: groups}
	index := make(map[string]int)

	for gi, group := range groups {
		for _, kw := range group.keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			ki, ok := index[kw]
			if !ok {
				ki = len(g.keywords)
				index[kw] = ki
				g.keywords = append(g.keywords, kw)
				g.kwGroups = append(g.kwGroups, nil)
			}
			g.kwGroups[ki] = append(g.kwGroups[ki], gi)
		}
	}

	if len(g.keywords) > 0 {
		g.matcher = ahocorasick.NewStringMatcher(g.keywords)
	}

	return g
}

// match reports, per group, whether any of its keywords occurs in text, and
// how many distinct keywords occurred overall. text must already be lowercase.
func (g *groupMatcher[L]) match(text string) (hit []bool, distinct int) {
	hit = make([]bool, len(g.groups))
	if g.matcher == nil || text == "" {
		return hit, 0
	}

	g.mu.Lock()
	indexes := g.matcher.Match([]byte(text))
	g.mu.Unlock()

	for _, ki := range indexes {
		if ki < 0 || ki >= len(g.kwGroups) {
			continue
		}
		for _, gi := range g.kwGroups[ki] {
			hit[gi] = true
		}
	}

	return hit, len(indexes)
}

// first returns the label of the earliest group present in text.
func (g *groupMatcher[L]) first(text string) (L, bool) {
	hit, _ := g.match(text)
	for i, ok := range hit {
		if ok {
			return g.groups[i].label, true
		}
	}
	var zero L
	return zero, false
}

// all returns the labels of every group present in text, in group order,
// stopping after limit labels when limit is positive.
func (g *groupMatcher[L]) all(text string, limit int) []L {
	hit, _ := g.match(text)
	labels := make([]L, 0, len(g.groups))
	for i, ok := range hit {
		if !ok {
			continue
		}
		labels = append(labels, g.groups[i].label)
		if limit > 0 && len(labels) == limit {
			break
		}
	}
	return labels
}
