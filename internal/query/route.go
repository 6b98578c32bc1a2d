// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package query classifies free-text questions into intents and runs the
// matching operation over a record snapshot.
package query

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/pubflow/internal/recency"
	"github.com/pdiddy/pubflow/pkg/types"
)

// DefaultLimit is the ranking length when a question does not name one.
const DefaultLimit = 10

// rule is one classifier step. match sees the lower-cased question and
// reports the extracted parameters when the rule applies.
type rule struct {
	kind  types.IntentKind
	match func(text string, ctx types.QueryContext) (types.QueryParameters, bool)
}

// rules are tried in order; the first match wins.
var rules = []rule{
	{types.IntentAuthorSearch, matchAuthor},
	{types.IntentDomainFilter, matchDomain},
	{types.IntentYearFilter, matchYear},
	{types.IntentImpactRanking, matchImpact},
	{types.IntentUsageAnalysis, matchUsage},
	{types.IntentTrendAnalysis, matchTrend},
	{types.IntentCollaboration, matchCollaboration},
}

// Route classifies text. It is total: anything no rule recognizes becomes a
// general search over the question's terms.
func Route(text string, ctx types.QueryContext) types.QueryIntent {
	lower := strings.ToLower(strings.TrimSpace(text))
	for _, r := range rules {
		if params, ok := r.match(lower, ctx); ok {
			return types.QueryIntent{Kind: r.kind, Parameters: params}
		}
	}
	return types.QueryIntent{
		Kind:       types.IntentGeneralSearch,
		Parameters: types.QueryParameters{Terms: Terms(lower)},
	}
}

var (
	byPattern       = regexp.MustCompile(`\bby\s+([a-z][a-z.'\- ]*)`)
	authorPattern   = regexp.MustCompile(`\bauthor(?:s|ed)?\s*(?:named|is|=|:)?\s+([a-z][a-z.'\- ]*)`)
	domainPattern   = regexp.MustCompile(`\b(?:domain|field)\s*(?:of|is|=|:)?\s+([a-z][a-z&/'\- ]*)`)
	domainSuffix    = regexp.MustCompile(`\bin\s+(?:the\s+)?([a-z][a-z&/'\- ]*?)\s+(?:domain|field)\b`)
	yearPattern     = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)
	yearWord        = regexp.MustCompile(`\byears?\b`)
	lastYears       = regexp.MustCompile(`\b(?:last|past)\s+(\d{1,2})\s+years?\b`)
	topN            = regexp.MustCompile(`\btop\s+(\d{1,3})\b`)
	topWord         = regexp.MustCompile(`\btop\b`)
	collabSubject   = regexp.MustCompile(`\b(?:of|for|with|around)\s+([a-z][a-z.'\- ]*)`)
	captureBoundary = regexp.MustCompile(`\s+(?:in|from|since|during|about|on|for|with|between|after|before|published|who|that|over)\b`)
)

// authorReserved words cannot start a captured author; "by impact" and
// "by year" describe an ordering, not a person.
var authorReserved = map[string]bool{
	"impact": true, "year": true, "years": true, "domain": true, "field": true,
	"usage": true, "type": true, "date": true, "score": true, "count": true,
	"time": true, "the": true, "a": true, "an": true, "policy": true,
	"quality": true, "number": true, "publication": true, "publications": true,
	"collaboration": true, "collaborations": true, "collaborators": true, "network": true,
}

// domainReserved is kept short: domain names such as "Quality improvement"
// or "Policy analysis" start with words that are reserved for authors.
var domainReserved = map[string]bool{
	"the": true, "a": true, "an": true, "domain": true, "field": true,
	"has": true, "have": true, "are": true,
}

// capture trims a regex group at the first boundary word and rejects
// captures that start with a reserved word.
func capture(re *regexp.Regexp, text string, reserved map[string]bool) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	s := m[1]
	if loc := captureBoundary.FindStringIndex(s); loc != nil {
		s = s[:loc[0]]
	}
	s = strings.Trim(s, " .'-")
	if s == "" {
		return "", false
	}
	if first, _, _ := strings.Cut(s, " "); reserved[first] {
		return "", false
	}
	return s, true
}

func matchAuthor(text string, _ types.QueryContext) (types.QueryParameters, bool) {
	for _, re := range []*regexp.Regexp{authorPattern, byPattern} {
		if name, ok := capture(re, text, authorReserved); ok {
			name, _, _ = strings.Cut(name, " and ")
			return types.QueryParameters{Author: name}, true
		}
	}
	return types.QueryParameters{}, false
}

func matchDomain(text string, _ types.QueryContext) (types.QueryParameters, bool) {
	for _, re := range []*regexp.Regexp{domainPattern, domainSuffix} {
		if d, ok := capture(re, text, domainReserved); ok {
			return types.QueryParameters{Domain: d}, true
		}
	}
	return types.QueryParameters{}, false
}

func matchYear(text string, ctx types.QueryContext) (types.QueryParameters, bool) {
	var years []int
	for _, tok := range yearPattern.FindAllString(text, -1) {
		y, _ := strconv.Atoi(tok)
		years = append(years, y)
	}
	switch {
	case len(years) == 1:
		return types.QueryParameters{YearFrom: years[0], YearTo: years[0]}, true
	case len(years) > 1:
		lo, hi := years[0], years[0]
		for _, y := range years[1:] {
			lo, hi = min(lo, y), max(hi, y)
		}
		return types.QueryParameters{YearFrom: lo, YearTo: hi}, true
	}
	if m := lastYears.FindStringSubmatch(text); m != nil {
		n, _ := strconv.Atoi(m[1])
		asOf := recency.Resolve(ctx.AsOfYear)
		return types.QueryParameters{YearFrom: asOf - max(n, 1) + 1, YearTo: asOf}, true
	}
	return types.QueryParameters{}, yearWord.MatchString(text)
}

func matchImpact(text string, _ types.QueryContext) (types.QueryParameters, bool) {
	if !strings.Contains(text, "impact") && !topWord.MatchString(text) {
		return types.QueryParameters{}, false
	}
	limit := DefaultLimit
	if m := topN.FindStringSubmatch(text); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			limit = n
		}
	}
	return types.QueryParameters{Limit: limit}, true
}

func matchUsage(text string, _ types.QueryContext) (types.QueryParameters, bool) {
	ok := strings.Contains(text, "usage") ||
		(containsWord(text, "how") && containsWord(text, "used"))
	return types.QueryParameters{}, ok
}

func matchTrend(text string, _ types.QueryContext) (types.QueryParameters, bool) {
	return types.QueryParameters{}, strings.Contains(text, "trend") || strings.Contains(text, "over time")
}

func matchCollaboration(text string, _ types.QueryContext) (types.QueryParameters, bool) {
	if !strings.Contains(text, "collaborat") && !strings.Contains(text, "network") {
		return types.QueryParameters{}, false
	}
	var p types.QueryParameters
	if name, ok := capture(collabSubject, text, authorReserved); ok {
		p.Author = name
	}
	return p, true
}

var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "about": true, "any": true,
	"as": true, "at": true, "be": true, "do": true, "does": true, "find": true,
	"for": true, "from": true, "give": true, "has": true, "have": true,
	"how": true, "i": true, "in": true, "is": true, "it": true, "list": true,
	"me": true, "of": true, "on": true, "or": true, "paper": true,
	"papers": true, "publication": true, "publications": true, "search": true,
	"show": true, "study": true, "studies": true, "that": true, "the": true,
	"there": true, "this": true, "to": true, "what": true, "which": true,
	"with": true, "who": true, "all": true, "tell": true, "can": true, "you": true,
}

// Terms splits text into lower-cased search terms, dropping stopwords and
// punctuation.
func Terms(text string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, f := range strings.FieldsFunc(strings.ToLower(text), isSeparator) {
		if stopwords[f] || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

func isSeparator(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '\'':
		return false
	case r > 127:
		return false
	}
	return true
}

func containsWord(text, word string) bool {
	for _, f := range strings.FieldsFunc(text, isSeparator) {
		if f == word {
			return true
		}
	}
	return false
}
