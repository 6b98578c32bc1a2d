// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sankey

import (
	"regexp"
	"strings"
)

// Unknown is the category of a record with no usable value at a stage.
const Unknown = "Unknown"

// Geographic categories used at the last stage.
const (
	GeoNational      = "NATIONAL"
	GeoState         = "STATE"
	GeoRegional      = "REGIONAL"
	GeoLocal         = "LOCAL"
	GeoInternational = "INTERNATIONAL"
	GeoUnknown       = Unknown
)

// These lists are narrower than the enrichment reach classifier's. The two
// are kept apart so the flow stage can be tuned for display on its own.
var (
	geoInternational = regexp.MustCompile(`\b(international|global|worldwide|cross-national|oecd|countries)\b`)
	geoNational      = regexp.MustCompile(`\b(national|nationwide|united states|usa|u\.s\.?|us)\b`)
	geoRegional      = regexp.MustCompile(`\b(region|regional|multi-?state|midwest|northeast|southeast|southwest|northwest|new england)\b`)
	geoState         = regexp.MustCompile(`\b(state|statewide|california|new york|texas|florida|pennsylvania|massachusetts|maryland|michigan|ohio|illinois|washington|oregon|colorado|georgia|north carolina|virginia|minnesota|wisconsin|arizona|tennessee)\b`)
	geoLocal         = regexp.MustCompile(`\b(local|county|counties|city|cities|municipal|metropolitan|metro|urban|rural|community|communities|hospital)\b`)
)

var geoRules = []struct {
	category string
	re       *regexp.Regexp
}{
	{GeoInternational, geoInternational},
	{GeoNational, geoNational},
	{GeoRegional, geoRegional},
	{GeoState, geoState},
	{GeoLocal, geoLocal},
}

// Categorize buckets a raw geographic-focus value for the flow's last stage.
// Blank and placeholder values, and text that matches no rule, are Unknown.
func Categorize(focus string) string {
	s := strings.ToLower(strings.TrimSpace(focus))
	switch s {
	case "", "n/a", "na", "none", "unknown", "not specified", "-":
		return GeoUnknown
	}
	for _, rule := range geoRules {
		if rule.re.MatchString(s) {
			return rule.category
		}
	}
	return GeoUnknown
}
