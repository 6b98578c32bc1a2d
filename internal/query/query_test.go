// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubflow/pkg/types"
)

var ctx2026 = types.QueryContext{AsOfYear: 2026}

func TestRoute(t *testing.T) {
	tests := []struct {
		text string
		want types.QueryIntent
	}{
		{"top 5 publications by impact", types.QueryIntent{Kind: types.IntentImpactRanking, Parameters: types.QueryParameters{Limit: 5}}},
		{"Which papers have the most impact?", types.QueryIntent{Kind: types.IntentImpactRanking, Parameters: types.QueryParameters{Limit: DefaultLimit}}},
		{"who are the top authors", types.QueryIntent{Kind: types.IntentImpactRanking, Parameters: types.QueryParameters{Limit: DefaultLimit}}},
		{"papers by John Smith", types.QueryIntent{Kind: types.IntentAuthorSearch, Parameters: types.QueryParameters{Author: "john smith"}}},
		{"papers by John Smith in 2020", types.QueryIntent{Kind: types.IntentAuthorSearch, Parameters: types.QueryParameters{Author: "john smith"}}},
		{"author: Becker", types.QueryIntent{Kind: types.IntentAuthorSearch, Parameters: types.QueryParameters{Author: "becker"}}},
		{"work by Jones and Smith", types.QueryIntent{Kind: types.IntentAuthorSearch, Parameters: types.QueryParameters{Author: "jones"}}},
		{"domain: hospital quality", types.QueryIntent{Kind: types.IntentDomainFilter, Parameters: types.QueryParameters{Domain: "hospital quality"}}},
		{"studies in the pricing domain", types.QueryIntent{Kind: types.IntentDomainFilter, Parameters: types.QueryParameters{Domain: "pricing"}}},
		{"domain: quality", types.QueryIntent{Kind: types.IntentDomainFilter, Parameters: types.QueryParameters{Domain: "quality"}}},
		{"field: policy analysis", types.QueryIntent{Kind: types.IntentDomainFilter, Parameters: types.QueryParameters{Domain: "policy analysis"}}},
		{"domain quality improvement", types.QueryIntent{Kind: types.IntentDomainFilter, Parameters: types.QueryParameters{Domain: "quality improvement"}}},
		{"publications in the policy domain", types.QueryIntent{Kind: types.IntentDomainFilter, Parameters: types.QueryParameters{Domain: "policy"}}},
		{"papers by quality", types.QueryIntent{Kind: types.IntentGeneralSearch, Parameters: types.QueryParameters{Terms: []string{"by", "quality"}}}},
		{"publications from 2021", types.QueryIntent{Kind: types.IntentYearFilter, Parameters: types.QueryParameters{YearFrom: 2021, YearTo: 2021}}},
		{"between 2022 and 2019 please", types.QueryIntent{Kind: types.IntentYearFilter, Parameters: types.QueryParameters{YearFrom: 2019, YearTo: 2022}}},
		{"what came out in the last 3 years", types.QueryIntent{Kind: types.IntentYearFilter, Parameters: types.QueryParameters{YearFrom: 2024, YearTo: 2026}}},
		{"count publications by year", types.QueryIntent{Kind: types.IntentYearFilter}},
		{"usage breakdown", types.QueryIntent{Kind: types.IntentUsageAnalysis}},
		{"How is the data used?", types.QueryIntent{Kind: types.IntentUsageAnalysis}},
		{"show trends", types.QueryIntent{Kind: types.IntentTrendAnalysis}},
		{"publishing over time", types.QueryIntent{Kind: types.IntentTrendAnalysis}},
		{"collaboration network", types.QueryIntent{Kind: types.IntentCollaboration}},
		{"who collaborates with Mary Jones", types.QueryIntent{Kind: types.IntentCollaboration, Parameters: types.QueryParameters{Author: "mary jones"}}},
		{"show the author collaboration network", types.QueryIntent{Kind: types.IntentCollaboration}},
		{"papers about Medicare spending", types.QueryIntent{Kind: types.IntentGeneralSearch, Parameters: types.QueryParameters{Terms: []string{"medicare", "spending"}}}},
		{"", types.QueryIntent{Kind: types.IntentGeneralSearch}},
		{"?!", types.QueryIntent{Kind: types.IntentGeneralSearch}},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.text, ctx2026))
		})
	}
}

func records() []types.PublicationRecord {
	return []types.PublicationRecord{
		{ID: 1, Title: "Medicare spending variation", AuthorsRaw: "John Smith; Mary Jones", Year: 2021, ResearchDomain: "Pricing", PolicyImpactScore: 40, UsageType: types.UsagePrimaryAnalysis, PublicationType: types.PubAcademic},
		{ID: 2, Title: "Hospital quality ratings", AuthorsRaw: "Mary Jones; Carl Reed", Year: 2023, ResearchDomain: "Hospital Quality", PolicyImpactScore: 60, UsageType: types.UsageResearchEnabler, PublicationType: types.PubGovernment},
		{ID: 3, Title: "Physician workforce", AuthorsRaw: "Ana Lopez", Year: 2019, ResearchDomain: "Workforce", PolicyImpactScore: 40, UsageType: types.UsageContextualReference, PublicationType: types.PubPolicy, KeyFindings: "Medicare enrollment grew."},
		{ID: 4, Title: "Price transparency", AuthorsRaw: "Zoe Park; John Smith", Year: 2025, ResearchDomain: "Pricing", PolicyImpactScore: 90, UsageType: types.UsagePrimaryAnalysis, PublicationType: types.PubAcademic},
	}
}

func dataIDs(res types.QueryResult) []int {
	out := make([]int, len(res.Data))
	for i, r := range res.Data {
		out[i] = r.ID
	}
	return out
}

func TestExecuteImpactRanking(t *testing.T) {
	res := Ask("top 3 publications by impact", records(), ctx2026)
	assert.Equal(t, types.IntentImpactRanking, res.Intent.Kind)
	assert.Equal(t, []int{4, 2, 1}, dataIDs(res), "ties break by id")
	assert.Equal(t, 4, res.Count)
	assert.Contains(t, res.Summary, "Top 3 of 4")

	empty := Execute(types.QueryIntent{Kind: types.IntentImpactRanking, Parameters: types.QueryParameters{Limit: 5}}, nil, ctx2026)
	assert.Empty(t, empty.Data)
	assert.Zero(t, empty.Count)
}

func TestExecuteFilters(t *testing.T) {
	tests := []struct {
		name string
		text string
		ctx  types.QueryContext
		want []int
	}{
		{"author substring", "papers by john smith", ctx2026, []int{1, 4}},
		{"domain substring", "domain: quality", ctx2026, []int{2}},
		{"single year", "what was published in 2023", ctx2026, []int{2}},
		{"year range", "from 2019 to 2021", ctx2026, []int{1, 3}},
		{"general search ANDs terms", "medicare spending", ctx2026, []int{1}},
		{"general search reaches findings", "medicare", ctx2026, []int{1, 3}},
		{"context filter applies first", "papers by john smith", types.QueryContext{AsOfYear: 2026, YearFrom: 2024}, []int{4}},
		{"context domain filter", "medicare", types.QueryContext{AsOfYear: 2026, Domains: []string{"workforce"}}, []int{3}},
		{"context publication type", "price", types.QueryContext{AsOfYear: 2026, PublicationTypes: []types.PublicationType{types.PubGovernment}}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Ask(tt.text, records(), tt.ctx)
			assert.Equal(t, tt.want, dataIDs(res))
			assert.Equal(t, len(tt.want), res.Count)
			assert.NotEmpty(t, res.Summary)
		})
	}
}

func TestExecuteCapsData(t *testing.T) {
	var many []types.PublicationRecord
	for i := 1; i <= 120; i++ {
		many = append(many, types.PublicationRecord{ID: i, Title: fmt.Sprintf("Medicare study %d", i), Year: 2020})
	}
	res := Ask("medicare", many, ctx2026)
	assert.Equal(t, 120, res.Count)
	assert.Len(t, res.Data, MaxSample)
	assert.Equal(t, 1, res.Data[0].ID)
}

func TestExecuteUsageAnalysis(t *testing.T) {
	res := Ask("usage breakdown", records(), ctx2026)
	require.Len(t, res.UsageBreakdown, 3)
	assert.Equal(t, types.UsagePrimaryAnalysis, res.UsageBreakdown[0].UsageType)
	assert.Equal(t, 2, res.UsageBreakdown[0].Count)
	assert.Empty(t, res.Data)
	assert.Equal(t, 4, res.Count)
	assert.Contains(t, res.Summary, "PRIMARY_ANALYSIS 2 (50%)")
}

func TestExecuteTrendAnalysis(t *testing.T) {
	res := Ask("trend over time", records(), ctx2026)
	require.Len(t, res.YearTrend, 4)
	assert.Equal(t, 2019, res.YearTrend[0].Year)
	assert.Equal(t, 2025, res.YearTrend[3].Year)
	assert.Equal(t, "Publications span 2019 to 2025, peaking in 2019 with 1.", res.Summary)
}

func TestExecuteCollaboration(t *testing.T) {
	res := Ask("collaboration network", records(), ctx2026)
	require.NotNil(t, res.Network)
	assert.Equal(t, 5, res.Network.Metrics.NodeCount)
	assert.Equal(t, 3, res.Network.Metrics.EdgeCount)
	assert.Equal(t, 5, res.Count)

	around := Ask("who collaborates with carl reed", records(), ctx2026)
	require.NotNil(t, around.Network)
	assert.Equal(t, 2, around.Network.Metrics.NodeCount)
	assert.Contains(t, around.Summary, `"carl reed"`)
}
