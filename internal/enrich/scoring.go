// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package enrich

import (
	"strings"
	"unicode/utf8"

	"github.com/pdiddy/pubflow/pkg/types"
)

// rigorTextThreshold is the minimum length, in characters, of findings and
// justification text for a HIGH rigor primary analysis.
const rigorTextThreshold = 100

// MethodologicalRigor tiers a record. PRIMARY_ANALYSIS is HIGH only with
// substantial findings, stated data years, and a substantial usage
// justification; RESEARCH_ENABLER is MEDIUM; CONTEXTUAL_REFERENCE is LOW.
func MethodologicalRigor(usage types.UsageType, findings, dataYears, justification string) types.Rigor {
	switch usage {
	case types.UsagePrimaryAnalysis:
		if textLen(findings) > rigorTextThreshold && isPresent(dataYears) && textLen(justification) > rigorTextThreshold {
			return types.RigorHigh
		}
		return types.RigorMedium
	case types.UsageResearchEnabler:
		return types.RigorMedium
	default:
		return types.RigorLow
	}
}

// QualityScore awards points for documentation completeness, capped at 100.
func QualityScore(r types.PublicationRecord) int {
	score := 0
	if isPresent(r.DOIURL) {
		score += 20
	}
	score += tiered(textLen(r.UsageJustification), 100, 50)
	score += tiered(textLen(r.KeyFindings), 200, 100)
	score += tiered(textLen(r.PolicyImplications), 200, 100)
	if isPresent(r.DataYearsUsed) {
		score += 10
	}
	if strings.TrimSpace(r.AuthorsRaw) != "" {
		score += 10
	}
	return min(score, 100)
}

// tiered returns 20 above high, 10 above low, else 0.
func tiered(n, high, low int) int {
	switch {
	case n > high:
		return 20
	case n > low:
		return 10
	}
	return 0
}

// policyLexicon weights policy-impact keywords. Order is fixed so scoring
// is reproducible.
var policyLexicon = []struct {
	keyword string
	weight  int
}{
	{"legislation", 20},
	{"regulatory", 15},
	{"enforcement", 15},
	{"antitrust", 15},
	{"reform", 15},
	{"policy", 10},
	{"guidelines", 10},
	{"compliance", 10},
	{"oversight", 10},
	{"competition", 10},
}

// PolicyImpactScore sums lexicon weights for keywords found in the policy
// implications text. Matching is case-insensitive substring; each keyword
// counts once. Capped at 100.
func PolicyImpactScore(implications string) int {
	lower := strings.ToLower(implications)
	score := 0
	for _, e := range policyLexicon {
		if strings.Contains(lower, e.keyword) {
			score += e.weight
		}
	}
	return min(score, 100)
}

// impactPhrases mark policy implications that report a realized effect.
var impactPhrases = []string{"informed", "supports", "led to", "resulted in", "influenced"}

// IsHighImpact reports whether a record counts toward the dashboard's
// high-impact figure: a government publication, a primary analysis, or
// implications describing a realized policy effect.
func IsHighImpact(r types.PublicationRecord) bool {
	if r.PublicationType == types.PubGovernment || r.UsageType == types.UsagePrimaryAnalysis {
		return true
	}
	return containsAny(strings.ToLower(r.PolicyImplications), impactPhrases)
}

func textLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}
