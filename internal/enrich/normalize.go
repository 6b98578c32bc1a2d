// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/araddon/dateparse"

	"github.com/pdiddy/pubflow/pkg/types"
)

var (
	nonAlnum  = regexp.MustCompile(`[^A-Z0-9]+`)
	yearToken = regexp.MustCompile(`\b(1[89]\d{2}|2\d{3})\b`)
)

// cleanEnum upper-cases s and folds every run of separators into one
// underscore, so "primary analysis", "Primary-Analysis" and
// "PRIMARY_ANALYSIS" compare equal.
func cleanEnum(s string) string {
	return strings.Trim(nonAlnum.ReplaceAllString(strings.ToUpper(strings.TrimSpace(s)), "_"), "_")
}

var publicationTypeSynonyms = map[string]types.PublicationType{
	"GOVERNMENT":        types.PubGovernment,
	"GOVT":              types.PubGovernment,
	"GOV":               types.PubGovernment,
	"GOVERNMENT_REPORT": types.PubGovernment,
	"FEDERAL":           types.PubGovernment,
	"FEDERAL_REPORT":    types.PubGovernment,
	"ACADEMIC":          types.PubAcademic,
	"JOURNAL":           types.PubAcademic,
	"JOURNAL_ARTICLE":   types.PubAcademic,
	"ACADEMIC_JOURNAL":  types.PubAcademic,
	"PEER_REVIEWED":     types.PubAcademic,
	"POLICY":            types.PubPolicy,
	"POLICY_BRIEF":      types.PubPolicy,
	"POLICY_REPORT":     types.PubPolicy,
	"THINK_TANK":        types.PubPolicy,
	"OTHER":             types.PubOther,
}

// Publisher and journal cues used when the type column is unrecognized.
var (
	governmentCues = []string{"agency", "department", "government", "federal", "ahrq", "cms", "gao", "congress", "office of", "commission", "cbo", "medpac", "hhs"}
	academicCues   = []string{"journal", "university", "press", "review", "jama", "health affairs", "annals", "proceedings", "elsevier", "springer", "wiley"}
	policyCues     = []string{"institute", "foundation", "policy", "center for", "brookings", "urban", "rand", "commonwealth fund", "kff", "kaiser"}
)

// NormalizePublicationType maps a free-text publication type to the closed
// set. Unrecognized values are inferred from the publisher and journal text,
// falling back to OTHER. ok is false when the type column was unrecognized.
func NormalizePublicationType(raw, publisher, journal string) (pt types.PublicationType, cleaned string, ok bool) {
	cleaned = cleanEnum(raw)
	if t, found := publicationTypeSynonyms[cleaned]; found {
		return t, cleaned, true
	}
	hint := strings.ToLower(publisher + " " + journal)
	switch {
	case containsAny(hint, governmentCues):
		return types.PubGovernment, cleaned, false
	case containsAny(hint, academicCues):
		return types.PubAcademic, cleaned, false
	case containsAny(hint, policyCues):
		return types.PubPolicy, cleaned, false
	}
	return types.PubOther, cleaned, false
}

var usageTypeSynonyms = map[string]types.UsageType{
	"PRIMARY_ANALYSIS":      types.UsagePrimaryAnalysis,
	"PRIMARY":               types.UsagePrimaryAnalysis,
	"PRIMARY_DATA":          types.UsagePrimaryAnalysis,
	"PRIMARY_DATA_ANALYSIS": types.UsagePrimaryAnalysis,
	"PRIMARY_DATA_SOURCE":   types.UsagePrimaryAnalysis,
	"DIRECT_ANALYSIS":       types.UsagePrimaryAnalysis,
	"ANALYSIS":              types.UsagePrimaryAnalysis,
	"RESEARCH_ENABLER":      types.UsageResearchEnabler,
	"ENABLER":               types.UsageResearchEnabler,
	"RESEARCH_TOOL":         types.UsageResearchEnabler,
	"SUPPORTING":            types.UsageResearchEnabler,
	"SUPPORTING_DATA":       types.UsageResearchEnabler,
	"METHODOLOGICAL":        types.UsageResearchEnabler,
	"SAMPLING_FRAME":        types.UsageResearchEnabler,
	"CONTEXTUAL_REFERENCE":  types.UsageContextualReference,
	"CONTEXTUAL":            types.UsageContextualReference,
	"CONTEXT":               types.UsageContextualReference,
	"REFERENCE":             types.UsageContextualReference,
	"CITATION":              types.UsageContextualReference,
	"BACKGROUND":            types.UsageContextualReference,
}

// NormalizeUsageType maps a free-text usage type to the closed set.
// Unrecognized values become CONTEXTUAL_REFERENCE with ok false.
func NormalizeUsageType(raw string) (ut types.UsageType, cleaned string, ok bool) {
	cleaned = cleanEnum(raw)
	if t, found := usageTypeSynonyms[cleaned]; found {
		return t, cleaned, true
	}
	return types.UsageContextualReference, cleaned, false
}

// NormalizeYear parses a publication year cell. It accepts plain integers,
// spreadsheet floats ("2021.0"), and date strings. Values outside
// [1900, asOfYear+1] or unparsable input yield asOfYear with ok false.
func NormalizeYear(raw string, asOfYear int) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return asOfYear, false
	}

	year := 0
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		year = int(f)
	} else if t, err := dateparse.ParseAny(s); err == nil {
		year = t.Year()
	} else if m := yearToken.FindString(s); m != "" {
		year, _ = strconv.Atoi(m)
	}

	if year < 1900 || year > asOfYear+1 {
		return asOfYear, false
	}
	return year, true
}

// isPresent reports whether an optional text field carries a real value.
func isPresent(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "n/a", "na", "none", "null", "nan", "-", "unknown", "not specified", "not available":
		return false
	}
	return true
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
