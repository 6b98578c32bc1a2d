// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package sankey builds the four-stage categorical flow: publication type,
// then usage type, then research domain, then geographic category. Every
// record contributes its recency-scaled flow weight to one node per stage
// and to one link per stage transition.
package sankey

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pdiddy/pubflow/internal/aggregate"
	"github.com/pdiddy/pubflow/internal/recency"
	"github.com/pdiddy/pubflow/pkg/types"
)

// Filter restricts the flow. Zero values mean "no restriction".
type Filter struct {
	YearFrom         int                     `json:"yearFrom,omitempty"`
	YearTo           int                     `json:"yearTo,omitempty"`
	PublicationTypes []types.PublicationType `json:"publicationTypes,omitempty"`
	UsageTypes       []types.UsageType       `json:"usageTypes,omitempty"`
	Domains          []string                `json:"domains,omitempty"`

	// MinLinkValue drops links whose value is below it. Node values are
	// unaffected; the removed flow is reported in the metrics.
	MinLinkValue float64 `json:"minLinkValue,omitempty"`
}

// Options holds build parameters that are not filters.
type Options struct {
	AsOfYear int
}

// stageValue returns the category a record takes at each stage.
var stageValue = [...]func(types.PublicationRecord) string{
	types.StagePublicationType: func(r types.PublicationRecord) string { return string(r.PublicationType) },
	types.StageUsageType:       func(r types.PublicationRecord) string { return string(r.UsageType) },
	types.StageResearchDomain: func(r types.PublicationRecord) string {
		if d := strings.TrimSpace(r.ResearchDomain); d != "" {
			return d
		}
		return Unknown
	},
	types.StageGeography: func(r types.PublicationRecord) string { return Categorize(r.GeographicFocusRaw) },
}

// NodeID returns the node identifier for a category value at a stage.
func NodeID(stage int, value string) string {
	return fmt.Sprintf("%d-%s", stage, value)
}

// Build derives the flow graph from records. Empty or fully filtered input
// yields an empty flow with zero metrics and a single no-data insight. A
// *StructuralError is returned when the assembled links do not fit the
// node set.
func Build(records []types.PublicationRecord, f Filter, opts Options) (types.SankeyFlow, error) {
	asOf := recency.Resolve(opts.AsOfYear)
	selected := aggregate.Criteria{
		YearFrom:         f.YearFrom,
		YearTo:           f.YearTo,
		PublicationTypes: f.PublicationTypes,
		UsageTypes:       f.UsageTypes,
		Domains:          f.Domains,
	}.Apply(records)

	if len(selected) == 0 {
		return Empty(), nil
	}

	nodes := buildNodes(selected, asOf)
	links, dropped := buildLinks(selected, asOf, f.MinLinkValue)
	if err := Validate(nodes, links); err != nil {
		return types.SankeyFlow{}, err
	}

	flow := types.SankeyFlow{Nodes: nodes, Links: links}
	flow.Metrics = computeMetrics(selected, nodes, links, dropped, asOf)
	flow.Insights = insights(flow, asOf)
	return flow, nil
}

// Empty returns the flow rendered when no publications match.
func Empty() types.SankeyFlow {
	return types.SankeyFlow{
		Nodes: []types.SankeyNode{},
		Links: []types.SankeyLink{},
		Metrics: types.SankeyMetrics{
			StageDistribution: []types.StageStats{},
			YearTrend:         []types.YearBucket{},
		},
		Insights: []types.Insight{{
			Type:    types.InsightNoData,
			Title:   "No data",
			Message: "No publications match the current filters.",
		}},
	}
}

func buildNodes(records []types.PublicationRecord, asOf int) []types.SankeyNode {
	index := make(map[string]int)
	var nodes []types.SankeyNode
	for _, r := range records {
		w := recency.Weight(r.Year, asOf)
		for stage, value := range stageValue {
			name := value(r)
			id := NodeID(stage, name)
			i, ok := index[id]
			if !ok {
				i = len(nodes)
				index[id] = i
				nodes = append(nodes, types.SankeyNode{ID: id, Name: name, Stage: stage})
			}
			nodes[i].Value += w
			nodes[i].Count++
			nodes[i].MemberPublicationIDs = append(nodes[i].MemberPublicationIDs, r.ID)
		}
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		a, b := nodes[i], nodes[j]
		if a.Stage != b.Stage {
			return a.Stage < b.Stage
		}
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		return a.Name < b.Name
	})
	return nodes
}

// buildLinks groups records by category pair for each adjacent stage pair.
// Links below minValue are dropped and their summed value returned.
func buildLinks(records []types.PublicationRecord, asOf int, minValue float64) ([]types.SankeyLink, float64) {
	type key struct{ src, tgt string }
	index := make(map[key]int)
	var links []types.SankeyLink
	stageOf := make(map[string]int)

	for _, r := range records {
		w := recency.Weight(r.Year, asOf)
		for stage := 0; stage < len(stageValue)-1; stage++ {
			k := key{NodeID(stage, stageValue[stage](r)), NodeID(stage+1, stageValue[stage+1](r))}
			i, ok := index[k]
			if !ok {
				i = len(links)
				index[k] = i
				stageOf[k.src] = stage
				links = append(links, types.SankeyLink{Source: k.src, Target: k.tgt})
			}
			links[i].Value += w
			links[i].Count++
			links[i].PublicationIDs = append(links[i].PublicationIDs, r.ID)
		}
	}

	var dropped float64
	kept := links[:0]
	for _, l := range links {
		if minValue > 0 && l.Value < minValue {
			dropped += l.Value
			continue
		}
		kept = append(kept, l)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		a, b := kept[i], kept[j]
		if stageOf[a.Source] != stageOf[b.Source] {
			return stageOf[a.Source] < stageOf[b.Source]
		}
		if a.Value != b.Value {
			return a.Value > b.Value
		}
		if a.Source != b.Source {
			return a.Source < b.Source
		}
		return a.Target < b.Target
	})
	return kept, dropped
}
