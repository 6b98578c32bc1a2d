// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// institutionKeywords mark organization names. Matched case-insensitively
// against whole words of the name.
var institutionKeywords = []string{
	"department", "commission", "office", "administration", "agency",
	"institute", "institutes", "university", "center", "centre", "council",
	"committee", "association", "foundation", "bureau", "board",
	"corporation", "inc", "llc", "ministry", "service", "services",
	"program", "group", "organization", "society", "consortium",
	"hospital", "school", "college", "panel", "authority", "coalition",
	"collaborative", "network", "project", "team", "staff", "division",
	"secretary", "congress", "senate", "government",
}

// particles may appear lowercase inside a personal name.
var particles = map[string]bool{
	"van": true, "von": true, "de": true, "der": true, "den": true,
	"del": true, "della": true, "da": true, "di": true, "du": true,
	"la": true, "le": true, "bin": true, "al": true, "st.": true,
}

// IsInstitution reports whether name reads as an organization rather than a
// person. A name is an institution when it carries an organization keyword
// or when it does not fit a "First Last" or "Last, First" shape.
func IsInstitution(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return false
	}
	if hasInstitutionKeyword(name) {
		return true
	}
	return !looksPersonal(name)
}

func hasInstitutionKeyword(name string) bool {
	lower := strings.ToLower(name)
	if strings.Contains(lower, "office of") || strings.Contains(lower, "u.s.") {
		return true
	}
	words := strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\''
	})
	for _, w := range words {
		for _, kw := range institutionKeywords {
			if w == kw {
				return true
			}
		}
	}
	return false
}

// looksPersonal accepts two to five capitalized words (particles and
// initials allowed), optionally around one comma, with at least one word
// that is not an initial. All-caps words read as a name only when every
// other word is all caps or initials, as in "SMITH J" or "LEE CHEN"; next
// to a mixed-case word they read as acronyms.
func looksPersonal(name string) bool {
	if strings.Count(name, ",") > 1 {
		return false
	}
	words := strings.Fields(strings.ReplaceAll(name, ",", " "))
	if len(words) < 2 || len(words) > 5 {
		return false
	}
	var mixed, caps, shortCaps int
	for _, w := range words {
		switch {
		case particles[strings.ToLower(w)]:
		case isCapitalizedWord(w):
			mixed++
		case isAllCapsWord(w) && utf8.RuneCountInString(w) > 2:
			if utf8.RuneCountInString(w) == 3 {
				shortCaps++
			}
			caps++
		case isInitials(w):
		default:
			return false
		}
	}
	if mixed > 0 {
		// "Smith JAK": three capitals beside a surname are initials.
		return caps == shortCaps
	}
	return caps > 0
}

// isCapitalizedWord accepts "Smith", "O'Neil", "Smith-Jones", "McDonald".
func isCapitalizedWord(w string) bool {
	runes := []rune(w)
	if len(runes) < 2 || !unicode.IsUpper(runes[0]) {
		return false
	}
	lower := 0
	for _, r := range runes[1:] {
		switch {
		case unicode.IsLower(r):
			lower++
		case unicode.IsUpper(r), r == '\'', r == '-', r == '.':
		default:
			return false
		}
	}
	return lower > 0
}

// isAllCapsWord accepts "SMITH" and "O'NEIL" but not dotted initials.
func isAllCapsWord(w string) bool {
	letters := 0
	for _, r := range w {
		switch {
		case unicode.IsUpper(r):
			letters++
		case r == '\'', r == '-':
		default:
			return false
		}
	}
	return letters >= 2
}
