// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// IntentKind names the classified purpose of a free-text query.
type IntentKind string

const (
	IntentAuthorSearch  IntentKind = "author_search"
	IntentDomainFilter  IntentKind = "domain_filter"
	IntentYearFilter    IntentKind = "year_filter"
	IntentImpactRanking IntentKind = "impact_ranking"
	IntentUsageAnalysis IntentKind = "usage_analysis"
	IntentTrendAnalysis IntentKind = "trend_analysis"
	IntentCollaboration IntentKind = "collaboration_network"
	IntentGeneralSearch IntentKind = "general_search"
)

// QueryParameters is the kind-specific payload extracted from query text.
type QueryParameters struct {
	Author   string   `json:"author,omitempty" yaml:"author,omitempty"`
	Domain   string   `json:"domain,omitempty" yaml:"domain,omitempty"`
	YearFrom int      `json:"yearFrom,omitempty" yaml:"year_from,omitempty"`
	YearTo   int      `json:"yearTo,omitempty" yaml:"year_to,omitempty"`
	Limit    int      `json:"limit,omitempty" yaml:"limit,omitempty"`
	Terms    []string `json:"terms,omitempty" yaml:"terms,omitempty"`
}

// QueryIntent is a classified query. It is built per request and discarded
// after execution.
type QueryIntent struct {
	Kind       IntentKind      `json:"kind" yaml:"kind"`
	Parameters QueryParameters `json:"parameters" yaml:"parameters"`
}

// QueryContext carries the caller's active UI filters. It is applied before
// the intent-specific filter.
type QueryContext struct {
	YearFrom         int               `json:"yearFrom,omitempty" yaml:"year_from,omitempty"`
	YearTo           int               `json:"yearTo,omitempty" yaml:"year_to,omitempty"`
	PublicationTypes []PublicationType `json:"publicationTypes,omitempty" yaml:"publication_types,omitempty"`
	UsageTypes       []UsageType       `json:"usageTypes,omitempty" yaml:"usage_types,omitempty"`
	Domains          []string          `json:"domains,omitempty" yaml:"domains,omitempty"`

	// AsOfYear anchors recency calculations; zero means the current year.
	AsOfYear int `json:"asOfYear,omitempty" yaml:"as_of_year,omitempty"`
}

// UsageBucket aggregates records sharing a usage type.
type UsageBucket struct {
	UsageType        UsageType `json:"usageType" yaml:"usage_type"`
	Count            int       `json:"count" yaml:"count"`
	Share            float64   `json:"share" yaml:"share"`
	AvgQualityScore  float64   `json:"avgQualityScore" yaml:"avg_quality_score"`
	AvgPolicyImpact  float64   `json:"avgPolicyImpact" yaml:"avg_policy_impact"`
	HighRigorRecords int       `json:"highRigorRecords" yaml:"high_rigor_records"`
	TopDomain        string    `json:"topDomain,omitempty" yaml:"top_domain,omitempty"`
}

// QueryResult is the executed form of a QueryIntent. Count is the number of
// matching records before Data is truncated; callers must not assume
// len(Data) == Count.
type QueryResult struct {
	Intent  QueryIntent         `json:"intent" yaml:"intent"`
	Count   int                 `json:"count" yaml:"count"`
	Data    []PublicationRecord `json:"data" yaml:"data"`
	Summary string              `json:"summary" yaml:"summary"`

	UsageBreakdown []UsageBucket `json:"usageBreakdown,omitempty" yaml:"usage_breakdown,omitempty"`
	YearTrend      []YearBucket  `json:"yearTrend,omitempty" yaml:"year_trend,omitempty"`
	Network        *Network      `json:"network,omitempty" yaml:"network,omitempty"`
}
