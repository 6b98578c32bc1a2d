// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// DomainCount pairs a research domain with its publication count.
type DomainCount struct {
	Domain string `json:"domain" yaml:"domain"`
	Count  int    `json:"count" yaml:"count"`
}

// MissingCounts counts records whose column was blank or unrecognized.
type MissingCounts struct {
	PublicationType    int `json:"publicationType" yaml:"publication_type"`
	UsageType          int `json:"usageType" yaml:"usage_type"`
	PublicationYear    int `json:"publicationYear" yaml:"publication_year"`
	ResearchDomain     int `json:"researchDomain" yaml:"research_domain"`
	GeographicFocus    int `json:"geographicFocus" yaml:"geographic_focus"`
	PolicyImplications int `json:"policyImplications" yaml:"policy_implications"`
}

// Summary holds the headline figures of the dashboard.
type Summary struct {
	TotalPublications int `json:"totalPublications" yaml:"total_publications"`

	SinceYear          int `json:"sinceYear" yaml:"since_year"`
	PublicationsSince  int `json:"publicationsSince" yaml:"publications_since"`
	RecentYear         int `json:"recentYear" yaml:"recent_year"`
	RecentPublications int `json:"recentPublications" yaml:"recent_publications"`

	HighImpactStudies int     `json:"highImpactStudies" yaml:"high_impact_studies"`
	UniqueDomains     int     `json:"uniqueDomains" yaml:"unique_domains"`
	AvgQualityScore   float64 `json:"avgQualityScore" yaml:"avg_quality_score"`
	AvgPolicyImpact   float64 `json:"avgPolicyImpact" yaml:"avg_policy_impact"`

	PublicationTypes map[PublicationType]int `json:"publicationTypes" yaml:"publication_types"`
	UsageTypes       map[UsageType]int       `json:"usageTypes" yaml:"usage_types"`
	Years            map[int]int             `json:"years" yaml:"years"`
	Reach            map[GeographicReach]int `json:"reach" yaml:"reach"`
	AuthorQuality    map[AuthorQuality]int   `json:"authorQuality" yaml:"author_quality"`
	TopDomains       []DomainCount           `json:"topDomains" yaml:"top_domains"`

	Missing MissingCounts `json:"missing" yaml:"missing"`
}
