// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sankey

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubflow/internal/recency"
	"github.com/pdiddy/pubflow/pkg/types"
)

const asOf = 2026

func fixture() []types.PublicationRecord {
	return []types.PublicationRecord{
		{ID: 1, Year: 2025, PublicationType: types.PubGovernment, UsageType: types.UsagePrimaryAnalysis, ResearchDomain: "Pricing", GeographicFocusRaw: "National"},
		{ID: 2, Year: 2024, PublicationType: types.PubGovernment, UsageType: types.UsagePrimaryAnalysis, ResearchDomain: "Pricing", GeographicFocusRaw: "California"},
		{ID: 3, Year: 2019, PublicationType: types.PubAcademic, UsageType: types.UsageResearchEnabler, ResearchDomain: "Quality", GeographicFocusRaw: "County level"},
		{ID: 4, Year: 2022, PublicationType: types.PubAcademic, UsageType: types.UsagePrimaryAnalysis},
	}
}

func nodeIDs(flow types.SankeyFlow) []string {
	out := make([]string, len(flow.Nodes))
	for i, n := range flow.Nodes {
		out[i] = n.ID
	}
	return out
}

func insightTypes(flow types.SankeyFlow) []string {
	out := make([]string, len(flow.Insights))
	for i, in := range flow.Insights {
		out[i] = in.Type
	}
	return out
}

func TestBuild(t *testing.T) {
	flow, err := Build(fixture(), Filter{}, Options{AsOfYear: asOf})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"0-GOVERNMENT", "0-ACADEMIC",
		"1-PRIMARY_ANALYSIS", "1-RESEARCH_ENABLER",
		"2-Pricing", "2-Unknown", "2-Quality",
		"3-NATIONAL", "3-STATE", "3-Unknown", "3-LOCAL",
	}, nodeIDs(flow))

	gov := flow.Nodes[0]
	assert.Equal(t, "GOVERNMENT", gov.Name)
	assert.Equal(t, types.StagePublicationType, gov.Stage)
	assert.InDelta(t, 2.7, gov.Value, 1e-9)
	assert.Equal(t, 2, gov.Count)
	assert.Equal(t, []int{1, 2}, gov.MemberPublicationIDs)

	require.Len(t, flow.Links, 10)
	first := flow.Links[0]
	assert.Equal(t, "0-GOVERNMENT", first.Source)
	assert.Equal(t, "1-PRIMARY_ANALYSIS", first.Target)
	assert.InDelta(t, 2.7, first.Value, 1e-9)
	assert.Equal(t, []int{1, 2}, first.PublicationIDs)

	m := flow.Metrics
	assert.Equal(t, 4, m.TotalRecords)
	assert.InDelta(t, 4.5, m.TotalWeight, 1e-9)
	assert.Equal(t, 11, m.TotalNodes)
	assert.Equal(t, 10, m.TotalLinks)
	assert.InDelta(t, 2.7, m.MaxLinkValue, 1e-9)
	assert.InDelta(t, 1.35, m.AvgLinkValue, 1e-9)
	assert.InDelta(t, 0.455, m.FlowDensity, 1e-9)
	assert.Zero(t, m.DroppedLinkValue)

	require.NotNil(t, m.TopPath)
	assert.Equal(t, types.FlowPath{Source: "0-GOVERNMENT", Target: "1-PRIMARY_ANALYSIS", Value: 2.7, Count: 2}, *m.TopPath)

	require.Len(t, m.StageDistribution, 4)
	usage := m.StageDistribution[types.StageUsageType]
	assert.Equal(t, "Usage Type", usage.Name)
	assert.Equal(t, 2, usage.NodeCount)
	assert.Equal(t, "PRIMARY_ANALYSIS", usage.DominantNode)
	assert.InDelta(t, 3.7, usage.DominantValue, 1e-9)

	require.Len(t, m.YearTrend, 4)
	assert.Equal(t, 2019, m.YearTrend[0].Year)

	assert.Equal(t, []string{
		types.InsightPathway,
		types.InsightConcentrated, types.InsightConcentrated, types.InsightConcentrated,
		types.InsightDiversity,
		types.InsightTrend,
	}, insightTypes(flow))
	assert.Contains(t, flow.Insights[0].Message, "GOVERNMENT → PRIMARY_ANALYSIS")
	assert.InDelta(t, 0.75, flow.Insights[5].Value, 1e-9)
}

func TestBuildConservesFlowPerStage(t *testing.T) {
	records := fixture()
	flow, err := Build(records, Filter{}, Options{AsOfYear: asOf})
	require.NoError(t, err)

	var total float64
	for _, r := range records {
		total += recency.Weight(r.Year, asOf)
	}

	values := make(map[int]float64)
	counts := make(map[int]int)
	for _, n := range flow.Nodes {
		values[n.Stage] += n.Value
		counts[n.Stage] += n.Count
	}
	for stage := range types.StageNames {
		assert.InDelta(t, total, values[stage], 1e-9, "stage %d", stage)
		assert.Equal(t, len(records), counts[stage], "stage %d", stage)
	}

	outgoing := make(map[int]float64)
	for _, l := range flow.Links {
		for _, n := range flow.Nodes {
			if n.ID == l.Source {
				outgoing[n.Stage] += l.Value
			}
		}
	}
	for stage := 0; stage < len(types.StageNames)-1; stage++ {
		assert.InDelta(t, total, outgoing[stage], 1e-9, "stage %d", stage)
	}
}

func TestBuildMinLinkValue(t *testing.T) {
	flow, err := Build(fixture(), Filter{MinLinkValue: 1.0}, Options{AsOfYear: asOf})
	require.NoError(t, err)

	assert.Len(t, flow.Links, 7)
	for _, l := range flow.Links {
		assert.GreaterOrEqual(t, l.Value, 1.0)
	}
	assert.Len(t, flow.Nodes, 11, "node values are not pruned")
	assert.InDelta(t, 2.4, flow.Metrics.DroppedLinkValue, 1e-9)
	assert.Contains(t, insightTypes(flow), types.InsightFiltered)
}

func TestBuildFilters(t *testing.T) {
	tests := []struct {
		name      string
		filter    Filter
		wantNodes int
		wantLinks int
	}{
		{"usage type", Filter{UsageTypes: []types.UsageType{types.UsageResearchEnabler}}, 4, 3},
		{"publication type", Filter{PublicationTypes: []types.PublicationType{types.PubGovernment}}, 5, 4},
		{"year range", Filter{YearFrom: 2024, YearTo: 2025}, 5, 4},
		{"domain", Filter{Domains: []string{"QUALITY"}}, 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow, err := Build(fixture(), tt.filter, Options{AsOfYear: asOf})
			require.NoError(t, err)
			assert.Len(t, flow.Nodes, tt.wantNodes)
			assert.Len(t, flow.Links, tt.wantLinks)
		})
	}
}

func TestBuildEmpty(t *testing.T) {
	tests := []struct {
		name    string
		records []types.PublicationRecord
		filter  Filter
	}{
		{"no records", nil, Filter{}},
		{"everything filtered", fixture(), Filter{YearFrom: 2090}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flow, err := Build(tt.records, tt.filter, Options{AsOfYear: asOf})
			require.NoError(t, err)
			assert.Empty(t, flow.Nodes)
			assert.Empty(t, flow.Links)
			assert.Zero(t, flow.Metrics.TotalRecords)
			assert.Zero(t, flow.Metrics.TotalLinks)
			assert.Nil(t, flow.Metrics.TopPath)
			require.Len(t, flow.Insights, 1)
			assert.Equal(t, types.InsightNoData, flow.Insights[0].Type)
		})
	}
}

func TestValidate(t *testing.T) {
	nodes := []types.SankeyNode{
		{ID: "0-GOVERNMENT", Stage: 0},
		{ID: "1-PRIMARY_ANALYSIS", Stage: 1},
		{ID: "2-Pricing", Stage: 2},
	}

	require.NoError(t, Validate(nodes, []types.SankeyLink{
		{Source: "0-GOVERNMENT", Target: "1-PRIMARY_ANALYSIS"},
		{Source: "1-PRIMARY_ANALYSIS", Target: "2-Pricing"},
	}))

	err := Validate(nodes, []types.SankeyLink{
		{Source: "0-GOVERNMENT", Target: "1-Nowhere"},
		{Source: "0-GOVERNMENT", Target: "2-Pricing"},
		{Source: "1-PRIMARY_ANALYSIS", Target: "2-Pricing"},
	})
	require.Error(t, err)

	var se *StructuralError
	require.True(t, errors.As(err, &se))
	require.Len(t, se.Problems, 2)
	assert.Equal(t, "target node missing", se.Problems[0].Reason)
	assert.Equal(t, "links stage 0 to stage 2", se.Problems[1].Reason)
	assert.Contains(t, err.Error(), "2 invalid link(s)")
}

func TestCategorize(t *testing.T) {
	tests := []struct {
		focus string
		want  string
	}{
		{"", GeoUnknown},
		{"N/A", GeoUnknown},
		{"Mars colony", GeoUnknown},
		{"International comparison", GeoInternational},
		{"OECD countries", GeoInternational},
		{"National", GeoNational},
		{"USA", GeoNational},
		{"United States", GeoNational},
		{"U.S. hospitals", GeoNational},
		{"Midwest", GeoRegional},
		{"Multi-state analysis", GeoRegional},
		{"California", GeoState},
		{"Statewide", GeoState},
		{"County level", GeoLocal},
		{"Rural communities", GeoLocal},
	}
	for _, tt := range tests {
		t.Run(tt.focus, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.focus))
		})
	}
}
