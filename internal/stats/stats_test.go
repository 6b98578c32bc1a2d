// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/pubflow/pkg/types"
)

func records() []types.PublicationRecord {
	return []types.PublicationRecord{
		{ID: 1, Year: 2020, PublicationType: types.PubGovernment, UsageType: types.UsageContextualReference, ResearchDomain: "Pricing", GeographicFocusRaw: "National", GeographicReach: types.ReachNational, HighImpact: true, QualityScore: 50, PolicyImpactScore: 20, AuthorQuality: types.AuthorsGood, PolicyImplications: "Informed rulemaking."},
		{ID: 2, Year: 2021, PublicationType: types.PubAcademic, UsageType: types.UsagePrimaryAnalysis, ResearchDomain: "Pricing", GeographicFocusRaw: "Ohio", GeographicReach: types.ReachState, HighImpact: true, QualityScore: 70, PolicyImpactScore: 10, AuthorQuality: types.AuthorsAbbreviated},
		{ID: 3, Year: 2023, PublicationType: types.PubAcademic, UsageType: types.UsageContextualReference, ResearchDomain: "Quality", GeographicReach: types.ReachNational, QualityScore: 30, AuthorQuality: types.AuthorsSingle, Defaulted: []string{"usage_type"}},
		{ID: 4, Year: 2026, PublicationType: types.PubOther, UsageType: types.UsageResearchEnabler, GeographicFocusRaw: "County", GeographicReach: types.ReachLocal, QualityScore: 40, AuthorQuality: types.AuthorsSingle, Defaulted: []string{"publication_type", "publication_year"}},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(records(), Options{})

	assert.Equal(t, 4, s.TotalPublications)
	assert.Equal(t, DefaultSinceYear, s.SinceYear)
	assert.Equal(t, 3, s.PublicationsSince)
	assert.Equal(t, DefaultRecentYear, s.RecentYear)
	assert.Equal(t, 2, s.RecentPublications)
	assert.Equal(t, 2, s.HighImpactStudies)
	assert.Equal(t, 2, s.UniqueDomains)
	assert.InDelta(t, 47.5, s.AvgQualityScore, 1e-9)
	assert.InDelta(t, 7.5, s.AvgPolicyImpact, 1e-9)

	assert.Equal(t, map[types.PublicationType]int{types.PubGovernment: 1, types.PubAcademic: 2, types.PubOther: 1}, s.PublicationTypes)
	assert.Equal(t, 2, s.UsageTypes[types.UsageContextualReference])
	assert.Equal(t, map[int]int{2020: 1, 2021: 1, 2023: 1, 2026: 1}, s.Years)
	assert.Equal(t, 2, s.Reach[types.ReachNational])
	assert.Equal(t, 2, s.AuthorQuality[types.AuthorsSingle])
	assert.Equal(t, []types.DomainCount{{Domain: "Pricing", Count: 2}, {Domain: "Quality", Count: 1}}, s.TopDomains)

	assert.Equal(t, types.MissingCounts{
		PublicationType:    1,
		UsageType:          1,
		PublicationYear:    1,
		ResearchDomain:     1,
		GeographicFocus:    1,
		PolicyImplications: 3,
	}, s.Missing)
}

func TestSummarizeCutoffs(t *testing.T) {
	s := Summarize(records(), Options{SinceYear: 2023, RecentYear: 2026})
	assert.Equal(t, 2, s.PublicationsSince)
	assert.Equal(t, 1, s.RecentPublications)
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil, Options{})
	assert.Zero(t, s.TotalPublications)
	assert.Zero(t, s.AvgQualityScore)
	assert.Empty(t, s.TopDomains)
	assert.NotNil(t, s.TopDomains)
	assert.Empty(t, s.Years)
}
