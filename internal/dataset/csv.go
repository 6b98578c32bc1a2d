// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/pdiddy/pubflow/pkg/types"
)

// ErrNoTitleColumn is returned when the header lacks a title column; without
// it the file is not a publication table.
var ErrNoTitleColumn = errors.New("csv header has no title column")

var headerSeparators = regexp.MustCompile(`[\s\-]+`)

// NormalizeHeader folds a column name to lower snake case:
// " Publication Year " and "publication-year" both become "publication_year".
func NormalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	h = strings.ToLower(strings.TrimSpace(h))
	return headerSeparators.ReplaceAllString(h, "_")
}

// setters maps a normalized column name to the RawRow field it fills.
var setters = map[string]func(*types.RawRow, string){
	"publication_type":    func(r *types.RawRow, v string) { r.PublicationType = v },
	"title":               func(r *types.RawRow, v string) { r.Title = v },
	"authors":             func(r *types.RawRow, v string) { r.Authors = v },
	"publication_year":    func(r *types.RawRow, v string) { r.PublicationYear = v },
	"year":                func(r *types.RawRow, v string) { r.PublicationYear = v },
	"journal_venue":       func(r *types.RawRow, v string) { r.JournalVenue = v },
	"journal":             func(r *types.RawRow, v string) { r.JournalVenue = v },
	"publisher":           func(r *types.RawRow, v string) { r.Publisher = v },
	"usage_type":          func(r *types.RawRow, v string) { r.UsageType = v },
	"usage_justification": func(r *types.RawRow, v string) { r.UsageJustification = v },
	"usage_description":   func(r *types.RawRow, v string) { r.UsageDescription = v },
	"research_domain":     func(r *types.RawRow, v string) { r.ResearchDomain = v },
	"geographic_focus":    func(r *types.RawRow, v string) { r.GeographicFocus = v },
	"data_years_used":     func(r *types.RawRow, v string) { r.DataYearsUsed = v },
	"key_findings":        func(r *types.RawRow, v string) { r.KeyFindings = v },
	"policy_implications": func(r *types.RawRow, v string) { r.PolicyImplications = v },
	"doi_url":             func(r *types.RawRow, v string) { r.DOIURL = v },
	"doi":                 func(r *types.RawRow, v string) { r.DOIURL = v },
	"notes":               func(r *types.RawRow, v string) { r.Notes = v },
}

const standardizedAuthors = "authors_standardized"

// ReadCSV reads publication rows from r. The first row is the header;
// unknown columns are ignored and blank rows are skipped. A non-empty
// Authors_Standardized cell takes precedence over Authors.
func ReadCSV(r io.Reader) ([]types.RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err == io.EOF {
		return []types.RawRow{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	columns := make([]string, len(header))
	hasTitle := false
	for i, h := range header {
		columns[i] = NormalizeHeader(h)
		hasTitle = hasTitle || columns[i] == "title"
	}
	if !hasTitle {
		return nil, ErrNoTitleColumn
	}

	rows := []types.RawRow{}
	for line := 2; ; line++ {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row %d: %w", line, err)
		}
		if blank(fields) {
			continue
		}

		var row types.RawRow
		var standardized string
		for i, v := range fields {
			if i >= len(columns) {
				break
			}
			if columns[i] == standardizedAuthors {
				standardized = strings.TrimSpace(v)
				continue
			}
			if set, ok := setters[columns[i]]; ok {
				set(&row, v)
			}
		}
		if standardized != "" {
			row.Authors = standardized
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func blank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
