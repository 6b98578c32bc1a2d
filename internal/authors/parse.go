// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package authors turns free-text author fields into distinct people and
// institutions. Parsing is pure: every call builds fresh values and keeps no
// state between calls.
package authors

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/pubflow/pkg/types"
)

var (
	// incompleteMarker matches "[+ others]" and "[et al.]" in any case.
	incompleteMarker = regexp.MustCompile(`(?i)\[\s*(?:\+\s*others?|et\s*al\.?)\s*\]`)

	// trailingEtAl matches an unbracketed "et al." closing the field.
	trailingEtAl = regexp.MustCompile(`(?i)[,;]?\s*\bet\s+al\.?\s*$`)

	// annotation matches bracketed or parenthesized notes inside a token.
	annotation = regexp.MustCompile(`\s*(?:\[[^\]]*\]|\([^)]*\))`)

	// suffix matches one trailing professional suffix.
	suffix = regexp.MustCompile(`(?i)(?:,\s*|\s+)(?:jr\.?|sr\.?|iii|ph\.?\s?d\.?|m\.?d\.?|m\.?p\.?h\.?)$`)

	// honorific matches a leading "Dr." or "Dr".
	honorific = regexp.MustCompile(`^(?i:dr\.?)\s+`)

	// titleClause matches a job title trailing a name, e.g. ", Deputy Director".
	titleClause = regexp.MustCompile(`(?:,\s*|\s+)(?:(?:Deputy|Associate|Senior|Acting|Executive|Principal)\s+)*(?:Director|Assistant|Chief|Manager)\b.*$`)

	// leadingTitle matches a token that is only a job title, e.g. "Chief
	// Medical Officer" left over after a comma split.
	leadingTitle = regexp.MustCompile(`^(?:(?:Deputy|Associate|Senior|Acting|Executive|Principal)\s+)*(?:Director|Assistant|Chief|Manager)\b`)

	// bareAffix matches a token that is nothing but an honorific or suffix.
	bareAffix = regexp.MustCompile(`(?i)^(?:dr|jr|sr|iii|ph\.?\s?d|m\.?d|m\.?p\.?h)\.?$`)

	// lastFirst matches a single "Last, First" name with at most one given name
	// and an optional middle initial.
	lastFirst = regexp.MustCompile(`^[\p{Lu}][\p{L}'\-]+(?:\s[\p{Lu}][\p{L}'\-]+)?,\s*[\p{Lu}][\p{L}'\-]*\.?(?:\s?[\p{Lu}]\.?)?$`)

	spaces = regexp.MustCompile(`\s+`)
)

// bareTitles are title words that are residue when they stand alone.
var bareTitles = map[string]bool{
	"director":  true,
	"manager":   true,
	"chief":     true,
	"assistant": true,
	"deputy":    true,
}

// Parse splits a raw author field into distinct authors. Empty or
// whitespace-only input yields an empty, non-nil slice.
//
// A field wrapped in a single bracket pair is a formally listed body: its
// contents are the author list and every entry is an institution.
func Parse(raw string) []types.ParsedAuthor {
	text := incompleteMarker.ReplaceAllString(raw, " ")
	text = trailingEtAl.ReplaceAllString(strings.TrimSpace(text), "")
	text = strings.Trim(strings.TrimSpace(text), ";, ")

	result := []types.ParsedAuthor{}
	if text == "" {
		return result
	}

	bracketed := false
	if inner, ok := unwrapBrackets(text); ok {
		text = inner
		bracketed = true
	}

	seen := make(map[string]bool)
	for _, tok := range splitTokens(text) {
		name := cleanToken(tok)
		if isResidue(name) || seen[name] {
			continue
		}
		seen[name] = true

		institution := bracketed || IsInstitution(name)
		pa := types.ParsedAuthor{FullName: name, IsInstitution: institution}
		if !institution {
			pa.FirstName, pa.LastName = splitName(name)
		}
		result = append(result, pa)
	}
	return result
}

// Names returns the full names of the people (not institutions) in raw.
func Names(raw string) []string {
	var names []string
	for _, a := range Parse(raw) {
		if !a.IsInstitution {
			names = append(names, a.FullName)
		}
	}
	return names
}

// unwrapBrackets returns the contents of s when the whole of s is one
// bracket pair with no other brackets inside.
func unwrapBrackets(s string) (string, bool) {
	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return "", false
	}
	inner := s[1 : len(s)-1]
	if strings.ContainsAny(inner, "[]") {
		return "", false
	}
	return strings.TrimSpace(inner), true
}

// splitTokens splits on semicolons. A lone comma-bearing token is split on
// commas unless it looks like a single "Last, First" name.
func splitTokens(text string) []string {
	var tokens []string
	for _, part := range strings.Split(text, ";") {
		if p := strings.TrimSpace(part); p != "" {
			tokens = append(tokens, p)
		}
	}
	if len(tokens) != 1 || !strings.Contains(tokens[0], ",") {
		return tokens
	}
	only := tokens[0]
	if lastFirst.MatchString(stripSuffixes(only)) {
		return tokens
	}
	tokens = tokens[:0]
	for _, part := range strings.Split(only, ",") {
		if p := strings.TrimSpace(part); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// cleanToken strips annotations, honorifics, suffixes, and trailing job
// titles, then normalizes whitespace.
func cleanToken(tok string) string {
	s := annotation.ReplaceAllString(tok, " ")
	s = spaces.ReplaceAllString(strings.TrimSpace(s), " ")
	s = honorific.ReplaceAllString(s, "")
	s = stripSuffixes(s)
	if !hasInstitutionKeyword(s) {
		if leadingTitle.MatchString(s) {
			return ""
		}
		if loc := titleClause.FindStringIndex(s); loc != nil && loc[0] > 0 {
			s = s[:loc[0]]
		}
	}
	s = stripSuffixes(s)
	return strings.Trim(strings.TrimSpace(s), ",;:")
}

func stripSuffixes(s string) string {
	for {
		next := strings.TrimSpace(suffix.ReplaceAllString(s, ""))
		if next == s {
			return s
		}
		s = next
	}
}

// isResidue reports whether a cleaned token is too short, a bare title, or a
// bare honorific or suffix.
func isResidue(name string) bool {
	if utf8.RuneCountInString(name) <= 2 || bareAffix.MatchString(name) {
		return true
	}
	return bareTitles[strings.ToLower(strings.TrimRight(name, "."))]
}

// splitName makes a best-effort first/last split of a personal name.
// "Last, First" splits on the comma; "Becker C." treats the trailing
// initials as the given name; otherwise the last word is the surname. In an
// all-caps name only one or two trailing capitals count as initials.
func splitName(name string) (first, last string) {
	if i := strings.Index(name, ","); i >= 0 {
		return strings.TrimSpace(name[i+1:]), strings.TrimSpace(name[:i])
	}
	words := strings.Fields(name)
	if len(words) == 1 {
		return "", words[0]
	}
	if tail := words[len(words)-1]; isInitials(tail) && (hasLower(name) || len(tail) <= 2 || strings.Contains(tail, ".")) {
		return strings.Join(words[1:], " "), words[0]
	}
	return strings.Join(words[:len(words)-1], " "), words[len(words)-1]
}

func hasLower(s string) bool {
	return strings.IndexFunc(s, unicode.IsLower) >= 0
}

// isInitials reports whether w is initials such as "C.", "JA", or "J.A.".
func isInitials(w string) bool {
	letters := 0
	for _, r := range w {
		switch {
		case r == '.':
		case unicode.IsUpper(r):
			letters++
		default:
			return false
		}
	}
	return letters > 0 && letters <= 3
}
