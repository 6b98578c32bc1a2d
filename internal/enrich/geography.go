// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"regexp"
	"strings"

	"github.com/pdiddy/pubflow/pkg/types"
)

// Reach keyword groups, matched against lower-cased focus text in this
// order. The flow categorizer in package sankey keeps its own, shorter lists.
var (
	internationalPattern = regexp.MustCompile(`\b(international|global|worldwide|multinational|cross-national|countries|oecd|canada|europe|european|united kingdom|uk|england|australia|germany|france|japan|china|mexico|world)\b`)
	nationalPattern      = regexp.MustCompile(`\b(national|nationwide|nation|united states|usa|us|federal|medicare|all states|50 states)\b`)
	regionalPattern      = regexp.MustCompile(`\b(regional|region|regions|multi-state|multistate|midwest|midwestern|northeast|northeastern|southeast|southeastern|southwest|southwestern|northwest|new england|appalachia|appalachian|gulf coast|west coast|east coast|mid-atlantic|great lakes)\b`)
	statewidePattern     = regexp.MustCompile(`\b(state|statewide|state-level|states)\b`)
	localPattern         = regexp.MustCompile(`\b(local|county|counties|city|cities|municipal|community|communities|metropolitan|metro|urban|rural|neighborhood|town|village|district|hospital|health system)\b`)
	stateCodePattern     = regexp.MustCompile(`\b[A-Z]{2}\b`)
)

var usStateNames = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana", "maine",
	"maryland", "massachusetts", "michigan", "minnesota", "mississippi",
	"missouri", "montana", "nebraska", "nevada", "new hampshire", "new jersey",
	"new mexico", "new york", "north carolina", "north dakota", "ohio",
	"oklahoma", "oregon", "pennsylvania", "rhode island", "south carolina",
	"south dakota", "tennessee", "texas", "utah", "vermont", "virginia",
	"washington", "west virginia", "wisconsin", "wyoming", "district of columbia",
}

var usStateCodes = map[string]bool{
	"AL": true, "AK": true, "AZ": true, "AR": true, "CA": true, "CO": true,
	"CT": true, "DE": true, "FL": true, "GA": true, "HI": true, "ID": true,
	"IL": true, "IN": true, "IA": true, "KS": true, "KY": true, "LA": true,
	"ME": true, "MD": true, "MA": true, "MI": true, "MN": true, "MS": true,
	"MO": true, "MT": true, "NE": true, "NV": true, "NH": true, "NJ": true,
	"NM": true, "NY": true, "NC": true, "ND": true, "OH": true, "OK": true,
	"OR": true, "PA": true, "RI": true, "SC": true, "SD": true, "TN": true,
	"TX": true, "UT": true, "VT": true, "VA": true, "WA": true, "WV": true,
	"WI": true, "WY": true, "DC": true,
}

// ClassifyReach derives the geographic reach of a record from its free-text
// focus. A field that is exactly the country name is NATIONAL; otherwise
// international > national > regional > state > local keywords, first match
// wins. Unmatched non-empty text is LOCAL and an empty field is NATIONAL.
func ClassifyReach(focus string) types.GeographicReach {
	trimmed := strings.TrimSpace(focus)
	lower := normalizeCountry(strings.ToLower(trimmed))

	switch lower {
	case "":
		return types.ReachNational
	case "usa", "us", "united states", "united states of america":
		return types.ReachNational
	}

	switch {
	case internationalPattern.MatchString(lower):
		return types.ReachInternational
	case nationalPattern.MatchString(lower):
		return types.ReachNational
	case regionalPattern.MatchString(lower):
		return types.ReachRegional
	case mentionsState(trimmed, lower):
		return types.ReachState
	case localPattern.MatchString(lower):
		return types.ReachLocal
	}
	return types.ReachLocal
}

// normalizeCountry folds dotted spellings of the country into "usa" or "us".
func normalizeCountry(s string) string {
	s = strings.ReplaceAll(s, "u.s.a.", "usa")
	s = strings.ReplaceAll(s, "u.s.", "us")
	return strings.TrimSpace(s)
}

// mentionsState reports whether the text names a US state, uses a two-letter
// state code, or says "state"/"statewide".
func mentionsState(original, lower string) bool {
	for _, name := range usStateNames {
		if containsWord(lower, name) {
			return true
		}
	}
	for _, code := range stateCodePattern.FindAllString(original, -1) {
		if usStateCodes[code] {
			return true
		}
	}
	return statewidePattern.MatchString(lower)
}

// containsWord reports whether phrase occurs in s on word boundaries.
func containsWord(s, phrase string) bool {
	for i := 0; ; {
		j := strings.Index(s[i:], phrase)
		if j < 0 {
			return false
		}
		start, end := i+j, i+j+len(phrase)
		if (start == 0 || !isWordByte(s[start-1])) && (end == len(s) || !isWordByte(s[end])) {
			return true
		}
		i = start + 1
	}
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= '0' && b <= '9' || b == '_'
}
