// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the pubflow dashboard.
// Records, enums, graph and flow outputs, query intents, and configuration
// live here so every stage exchanges the same shapes.
//
// All output structures carry json and yaml tags with stable field names; a
// rendering layer consumes them without reaching back into the builders.
package types

// PublicationType classifies the kind of body that issued a publication.
type PublicationType string

const (
	PubGovernment PublicationType = "GOVERNMENT"
	PubAcademic   PublicationType = "ACADEMIC"
	PubPolicy     PublicationType = "POLICY"
	PubOther      PublicationType = "OTHER"
)

// PublicationTypes lists every PublicationType in display order.
var PublicationTypes = []PublicationType{PubGovernment, PubAcademic, PubPolicy, PubOther}

// UsageType describes how a publication used the dataset.
type UsageType string

const (
	UsagePrimaryAnalysis     UsageType = "PRIMARY_ANALYSIS"
	UsageResearchEnabler     UsageType = "RESEARCH_ENABLER"
	UsageContextualReference UsageType = "CONTEXTUAL_REFERENCE"
)

// UsageTypes lists every UsageType in display order.
var UsageTypes = []UsageType{UsagePrimaryAnalysis, UsageResearchEnabler, UsageContextualReference}

// GeographicReach is the enrichment-time classification of geographic focus.
type GeographicReach string

const (
	ReachLocal         GeographicReach = "LOCAL"
	ReachState         GeographicReach = "STATE"
	ReachRegional      GeographicReach = "REGIONAL"
	ReachNational      GeographicReach = "NATIONAL"
	ReachInternational GeographicReach = "INTERNATIONAL"
)

// Rigor is the methodological-rigor tier of a record.
type Rigor string

const (
	RigorHigh   Rigor = "HIGH"
	RigorMedium Rigor = "MEDIUM"
	RigorLow    Rigor = "LOW"
)

// AuthorQuality buckets the completeness of a raw author field.
type AuthorQuality string

const (
	AuthorsAbbreviated     AuthorQuality = "abbreviated"
	AuthorsSingle          AuthorQuality = "single_author"
	AuthorsBracketed       AuthorQuality = "bracket_format"
	AuthorsNeedsValidation AuthorQuality = "needs_validation"
	AuthorsGood            AuthorQuality = "good_format"
)

// RawRow is one tabular input row after the caller has normalized column
// names. Values are untrimmed strings exactly as they appeared in the source.
type RawRow struct {
	PublicationType    string `json:"publication_type" yaml:"publication_type"`
	Title              string `json:"title" yaml:"title"`
	Authors            string `json:"authors" yaml:"authors"`
	PublicationYear    string `json:"publication_year" yaml:"publication_year"`
	JournalVenue       string `json:"journal_venue" yaml:"journal_venue"`
	Publisher          string `json:"publisher" yaml:"publisher"`
	UsageType          string `json:"usage_type" yaml:"usage_type"`
	UsageJustification string `json:"usage_justification" yaml:"usage_justification"`
	UsageDescription   string `json:"usage_description" yaml:"usage_description"`
	ResearchDomain     string `json:"research_domain" yaml:"research_domain"`
	GeographicFocus    string `json:"geographic_focus" yaml:"geographic_focus"`
	DataYearsUsed      string `json:"data_years_used" yaml:"data_years_used"`
	KeyFindings        string `json:"key_findings" yaml:"key_findings"`
	PolicyImplications string `json:"policy_implications" yaml:"policy_implications"`
	DOIURL             string `json:"doi_url" yaml:"doi_url"`
	Notes              string `json:"notes" yaml:"notes"`
}

// PublicationRecord is an enriched publication. Records are produced only by
// enrichment and are never mutated afterwards.
type PublicationRecord struct {
	// ID is assigned in ingestion order; stable within one process run only.
	ID int `json:"id" yaml:"id"`

	PublicationType PublicationType `json:"publicationType" yaml:"publication_type"`
	Title           string          `json:"title" yaml:"title"`
	AuthorsRaw      string          `json:"authorsRaw" yaml:"authors_raw"`

	// Year is clamped to [1900, ingestion year + 1].
	Year int `json:"year" yaml:"year"`

	Journal   string `json:"journal,omitempty" yaml:"journal,omitempty"`
	Publisher string `json:"publisher,omitempty" yaml:"publisher,omitempty"`

	UsageType          UsageType `json:"usageType" yaml:"usage_type"`
	UsageJustification string    `json:"usageJustification,omitempty" yaml:"usage_justification,omitempty"`
	UsageDescription   string    `json:"usageDescription,omitempty" yaml:"usage_description,omitempty"`

	ResearchDomain     string `json:"researchDomain" yaml:"research_domain"`
	GeographicFocusRaw string `json:"geographicFocusRaw" yaml:"geographic_focus_raw"`

	DataYearsUsed      string `json:"dataYearsUsed,omitempty" yaml:"data_years_used,omitempty"`
	KeyFindings        string `json:"keyFindings,omitempty" yaml:"key_findings,omitempty"`
	PolicyImplications string `json:"policyImplications,omitempty" yaml:"policy_implications,omitempty"`
	DOIURL             string `json:"doiUrl,omitempty" yaml:"doi_url,omitempty"`
	Notes              string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Derived by enrichment.
	GeographicReach     GeographicReach `json:"geographicReach" yaml:"geographic_reach"`
	MethodologicalRigor Rigor           `json:"methodologicalRigor" yaml:"methodological_rigor"`
	QualityScore        int             `json:"qualityScore" yaml:"quality_score"`
	PolicyImpactScore   int             `json:"policyImpactScore" yaml:"policy_impact_score"`
	HighImpact          bool            `json:"highImpact" yaml:"high_impact"`
	AuthorQuality       AuthorQuality   `json:"authorQuality" yaml:"author_quality"`

	// Defaulted names the raw columns whose values were unrecognized and
	// replaced by a default during enrichment.
	Defaulted []string `json:"defaulted,omitempty" yaml:"defaulted,omitempty"`
}

// ParsedAuthor is one person or institution extracted from an author string.
type ParsedAuthor struct {
	FullName      string `json:"fullName" yaml:"full_name"`
	IsInstitution bool   `json:"isInstitution" yaml:"is_institution"`

	// FirstName and LastName are set only for people; best-effort split.
	FirstName string `json:"firstName,omitempty" yaml:"first_name,omitempty"`
	LastName  string `json:"lastName,omitempty" yaml:"last_name,omitempty"`
}
