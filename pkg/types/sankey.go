// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Sankey stages in flow order.
const (
	StagePublicationType = 0
	StageUsageType       = 1
	StageResearchDomain  = 2
	StageGeography       = 3
)

// StageNames holds the display name of each stage, indexed by stage.
var StageNames = [...]string{"Publication Type", "Usage Type", "Research Domain", "Geographic Focus"}

// SankeyNode is one category value at one stage.
type SankeyNode struct {
	// ID is "{stage}-{categoryValue}".
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Stage int    `json:"stage" yaml:"stage"`

	// Value is the summed flow weight of the member publications.
	Value float64 `json:"value" yaml:"value"`
	Count int     `json:"count" yaml:"count"`

	MemberPublicationIDs []int `json:"memberPublicationIds" yaml:"member_publication_ids"`
}

// SankeyLink connects a node to a node in the next stage.
type SankeyLink struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Value  float64 `json:"value" yaml:"value"`
	Count  int     `json:"count" yaml:"count"`

	PublicationIDs []int `json:"publicationIds" yaml:"publication_ids"`
}

// StageStats describes the distribution of one stage.
type StageStats struct {
	Stage         int     `json:"stage" yaml:"stage"`
	Name          string  `json:"name" yaml:"name"`
	NodeCount     int     `json:"nodeCount" yaml:"node_count"`
	TotalValue    float64 `json:"totalValue" yaml:"total_value"`
	DominantNode  string  `json:"dominantNode" yaml:"dominant_node"`
	DominantValue float64 `json:"dominantValue" yaml:"dominant_value"`
}

// FlowPath is the single highest-value link.
type FlowPath struct {
	Source string  `json:"source" yaml:"source"`
	Target string  `json:"target" yaml:"target"`
	Value  float64 `json:"value" yaml:"value"`
	Count  int     `json:"count" yaml:"count"`
}

// YearBucket aggregates records published in one year.
type YearBucket struct {
	Year              int     `json:"year" yaml:"year"`
	Count             int     `json:"count" yaml:"count"`
	Weight            float64 `json:"weight" yaml:"weight"`
	AvgQualityScore   float64 `json:"avgQualityScore" yaml:"avg_quality_score"`
	AvgPolicyImpact   float64 `json:"avgPolicyImpact" yaml:"avg_policy_impact"`
	PrimaryAnalysis   int     `json:"primaryAnalysis" yaml:"primary_analysis"`
	HighImpactRecords int     `json:"highImpactRecords" yaml:"high_impact_records"`
}

// SankeyMetrics summarizes a flow graph.
type SankeyMetrics struct {
	TotalRecords int     `json:"totalRecords" yaml:"total_records"`
	TotalWeight  float64 `json:"totalWeight" yaml:"total_weight"`
	TotalNodes   int     `json:"totalNodes" yaml:"total_nodes"`
	TotalLinks   int     `json:"totalLinks" yaml:"total_links"`
	MaxLinkValue float64 `json:"maxLinkValue" yaml:"max_link_value"`
	AvgLinkValue float64 `json:"avgLinkValue" yaml:"avg_link_value"`
	FlowDensity  float64 `json:"flowDensity" yaml:"flow_density"`

	// DroppedLinkValue is the flow removed by a minimum link value filter.
	// When positive, outgoing link sums fall short of node values.
	DroppedLinkValue float64 `json:"droppedLinkValue" yaml:"dropped_link_value"`

	StageDistribution []StageStats `json:"stageDistribution" yaml:"stage_distribution"`
	TopPath           *FlowPath    `json:"topPath,omitempty" yaml:"top_path,omitempty"`
	YearTrend         []YearBucket `json:"yearTrend" yaml:"year_trend"`
}

// Insight is a human-readable observation derived from flow metrics.
type Insight struct {
	Type    string  `json:"type" yaml:"type"`
	Title   string  `json:"title" yaml:"title"`
	Message string  `json:"message" yaml:"message"`
	Value   float64 `json:"value,omitempty" yaml:"value,omitempty"`
}

// Insight types.
const (
	InsightNoData       = "no_data"
	InsightPathway      = "dominant_pathway"
	InsightConcentrated = "stage_concentration"
	InsightDiversity    = "domain_diversity"
	InsightTrend        = "trend"
	InsightFiltered     = "filtered_flow"
)

// SankeyFlow is the four-stage flow graph handed to visualization consumers.
type SankeyFlow struct {
	Nodes    []SankeyNode  `json:"nodes" yaml:"nodes"`
	Links    []SankeyLink  `json:"links" yaml:"links"`
	Metrics  SankeyMetrics `json:"metrics" yaml:"metrics"`
	Insights []Insight     `json:"insights" yaml:"insights"`
}
