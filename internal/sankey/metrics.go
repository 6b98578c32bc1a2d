// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sankey

import (
	"fmt"
	"math"

	"github.com/pdiddy/pubflow/internal/aggregate"
	"github.com/pdiddy/pubflow/internal/recency"
	"github.com/pdiddy/pubflow/pkg/types"
)

// A stage is concentrated when its dominant node carries at least this
// share of the stage's flow.
const concentrationShare = 0.5

func computeMetrics(records []types.PublicationRecord, nodes []types.SankeyNode, links []types.SankeyLink, dropped float64, asOf int) types.SankeyMetrics {
	m := types.SankeyMetrics{
		TotalRecords:     len(records),
		TotalNodes:       len(nodes),
		TotalLinks:       len(links),
		DroppedLinkValue: round(dropped),
		YearTrend:        aggregate.ByYear(records, asOf),
	}
	for _, r := range records {
		m.TotalWeight += recency.Weight(r.Year, asOf)
	}
	m.TotalWeight = round(m.TotalWeight)

	stats := make([]types.StageStats, len(types.StageNames))
	for s := range stats {
		stats[s] = types.StageStats{Stage: s, Name: types.StageNames[s]}
	}
	for _, n := range nodes {
		st := &stats[n.Stage]
		st.NodeCount++
		st.TotalValue += n.Value
		if n.Value > st.DominantValue {
			st.DominantNode, st.DominantValue = n.Name, n.Value
		}
	}
	for s := range stats {
		stats[s].TotalValue = round(stats[s].TotalValue)
		stats[s].DominantValue = round(stats[s].DominantValue)
	}
	m.StageDistribution = stats

	var possible int
	for s := 0; s < len(stats)-1; s++ {
		possible += stats[s].NodeCount * stats[s+1].NodeCount
	}
	if possible > 0 {
		m.FlowDensity = round(float64(len(links)) / float64(possible))
	}

	var sum float64
	var top *types.SankeyLink
	for i := range links {
		l := &links[i]
		sum += l.Value
		if top == nil || l.Value > top.Value {
			top = l
		}
	}
	if top != nil {
		m.MaxLinkValue = round(top.Value)
		m.AvgLinkValue = round(sum / float64(len(links)))
		m.TopPath = &types.FlowPath{Source: top.Source, Target: top.Target, Value: round(top.Value), Count: top.Count}
	}
	return m
}

// insights turns the metrics of a non-empty flow into short observations.
func insights(flow types.SankeyFlow, asOf int) []types.Insight {
	m := flow.Metrics
	names := make(map[string]string, len(flow.Nodes))
	for _, n := range flow.Nodes {
		names[n.ID] = n.Name
	}

	var out []types.Insight
	if p := m.TopPath; p != nil {
		out = append(out, types.Insight{
			Type:  types.InsightPathway,
			Title: "Dominant pathway",
			Message: fmt.Sprintf("The dominant pathway is %s → %s, covering %d publications.",
				names[p.Source], names[p.Target], p.Count),
			Value: p.Value,
		})
	}

	for _, st := range m.StageDistribution {
		if st.NodeCount < 2 || st.TotalValue == 0 {
			continue
		}
		share := st.DominantValue / st.TotalValue
		if share >= concentrationShare {
			out = append(out, types.Insight{
				Type:    types.InsightConcentrated,
				Title:   st.Name + " concentration",
				Message: fmt.Sprintf("%s carries %.0f%% of the %s flow.", st.DominantNode, share*100, st.Name),
				Value:   round(share),
			})
		}
	}

	if domains := m.StageDistribution[types.StageResearchDomain].NodeCount; domains > 0 {
		out = append(out, types.Insight{
			Type:    types.InsightDiversity,
			Title:   "Research breadth",
			Message: fmt.Sprintf("Publications span %d research domains.", domains),
			Value:   float64(domains),
		})
	}

	recent := 0
	for _, b := range m.YearTrend {
		if recency.IsRecent(b.Year, asOf) {
			recent += b.Count
		}
	}
	if m.TotalRecords > 0 {
		share := float64(recent) / float64(m.TotalRecords)
		out = append(out, types.Insight{
			Type:  types.InsightTrend,
			Title: "Recent activity",
			Message: fmt.Sprintf("%.0f%% of publications appeared in the last %d years.",
				share*100, recency.RecentWindow),
			Value: round(share),
		})
	}

	if m.DroppedLinkValue > 0 {
		out = append(out, types.Insight{
			Type:  types.InsightFiltered,
			Title: "Filtered links",
			Message: fmt.Sprintf("Links below the minimum value were removed, hiding %.2f of flow; outgoing totals fall short of node values.",
				m.DroppedLinkValue),
			Value: m.DroppedLinkValue,
		})
	}
	return out
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
