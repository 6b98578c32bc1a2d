// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package enrich turns raw tabular rows into PublicationRecords: it
// normalizes enum columns, clamps years, and derives geographic reach,
// methodological rigor, quality score, and policy-impact score.
//
// Enrichment is a pure function of the row and the as-of year. Unrecognized
// values are replaced by documented defaults and reported as warnings on the
// injected logger; they never fail a row.
package enrich

import (
	"strings"

	"github.com/charmbracelet/log"

	"github.com/pdiddy/pubflow/internal/authors"
	"github.com/pdiddy/pubflow/internal/logging"
	"github.com/pdiddy/pubflow/internal/recency"
	"github.com/pdiddy/pubflow/pkg/types"
)

// Enricher derives PublicationRecords from raw rows.
type Enricher struct {
	logger   *log.Logger
	asOfYear int
}

// New returns an Enricher that reports data-quality warnings to logger and
// clamps years against asOfYear (zero means the current year). A nil logger
// discards warnings.
func New(logger *log.Logger, asOfYear int) *Enricher {
	return &Enricher{
		logger:   logging.OrDiscard(logger),
		asOfYear: recency.Resolve(asOfYear),
	}
}

// AsOfYear returns the year the Enricher clamps against.
func (e *Enricher) AsOfYear() int {
	return e.asOfYear
}

// Enrich builds the record with the given id from row.
func (e *Enricher) Enrich(id int, row types.RawRow) types.PublicationRecord {
	r := types.PublicationRecord{
		ID:                 id,
		Title:              strings.TrimSpace(row.Title),
		AuthorsRaw:         strings.TrimSpace(row.Authors),
		Journal:            strings.TrimSpace(row.JournalVenue),
		Publisher:          strings.TrimSpace(row.Publisher),
		UsageJustification: strings.TrimSpace(row.UsageJustification),
		UsageDescription:   strings.TrimSpace(row.UsageDescription),
		ResearchDomain:     strings.TrimSpace(row.ResearchDomain),
		GeographicFocusRaw: strings.TrimSpace(row.GeographicFocus),
		DataYearsUsed:      strings.TrimSpace(row.DataYearsUsed),
		KeyFindings:        strings.TrimSpace(row.KeyFindings),
		PolicyImplications: strings.TrimSpace(row.PolicyImplications),
		DOIURL:             strings.TrimSpace(row.DOIURL),
		Notes:              strings.TrimSpace(row.Notes),
	}

	pt, cleaned, ok := NormalizePublicationType(row.PublicationType, r.Publisher, r.Journal)
	if !ok {
		e.warn(id, "publication_type", row.PublicationType, cleaned, string(pt))
		r.Defaulted = append(r.Defaulted, "publication_type")
	}
	r.PublicationType = pt

	ut, cleaned, ok := NormalizeUsageType(row.UsageType)
	if !ok {
		e.warn(id, "usage_type", row.UsageType, cleaned, string(ut))
		r.Defaulted = append(r.Defaulted, "usage_type")
	}
	r.UsageType = ut

	year, ok := NormalizeYear(row.PublicationYear, e.asOfYear)
	if !ok {
		e.warn(id, "publication_year", row.PublicationYear, strings.TrimSpace(row.PublicationYear), year)
		r.Defaulted = append(r.Defaulted, "publication_year")
	}
	r.Year = year

	if r.AuthorsRaw != "" && len(authors.Parse(r.AuthorsRaw)) == 0 {
		e.logger.Warn("author field yielded no authors", "record", id, "raw", r.AuthorsRaw)
	}

	r.GeographicReach = ClassifyReach(r.GeographicFocusRaw)
	r.MethodologicalRigor = MethodologicalRigor(r.UsageType, r.KeyFindings, r.DataYearsUsed, r.UsageJustification)
	r.QualityScore = QualityScore(r)
	r.PolicyImpactScore = PolicyImpactScore(r.PolicyImplications)
	r.HighImpact = IsHighImpact(r)
	r.AuthorQuality = authors.Assess(r.AuthorsRaw)
	return r
}

// EnrichAll enriches rows in order, assigning ids starting at 1.
func (e *Enricher) EnrichAll(rows []types.RawRow) []types.PublicationRecord {
	records := make([]types.PublicationRecord, len(rows))
	for i, row := range rows {
		records[i] = e.Enrich(i+1, row)
	}
	return records
}

func (e *Enricher) warn(id int, field, raw, cleaned string, fallback any) {
	e.logger.Warn("unrecognized value replaced by default",
		"record", id, "field", field, "raw", raw, "cleaned", cleaned, "default", fallback)
}
