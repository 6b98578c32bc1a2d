// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package stats computes the headline figures shown on the dashboard.
package stats

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/pdiddy/pubflow/internal/aggregate"
	"github.com/pdiddy/pubflow/pkg/types"
)

// Default cut-off years for the "since" and "recent" counters.
const (
	DefaultSinceYear  = 2021
	DefaultRecentYear = 2023
)

// TopDomainCount is the length of Summary.TopDomains.
const TopDomainCount = 10

// Options sets the cut-off years. Zero values take the defaults.
type Options struct {
	SinceYear  int
	RecentYear int
}

// Summarize computes the dashboard summary over records.
func Summarize(records []types.PublicationRecord, opts Options) types.Summary {
	if opts.SinceYear == 0 {
		opts.SinceYear = DefaultSinceYear
	}
	if opts.RecentYear == 0 {
		opts.RecentYear = DefaultRecentYear
	}

	s := types.Summary{
		TotalPublications: len(records),
		SinceYear:         opts.SinceYear,
		RecentYear:        opts.RecentYear,
		PublicationTypes:  make(map[types.PublicationType]int),
		UsageTypes:        make(map[types.UsageType]int),
		Years:             make(map[int]int),
		Reach:             make(map[types.GeographicReach]int),
		AuthorQuality:     make(map[types.AuthorQuality]int),
	}

	var quality, impact int
	for _, r := range records {
		if r.Year >= opts.SinceYear {
			s.PublicationsSince++
		}
		if r.Year >= opts.RecentYear {
			s.RecentPublications++
		}
		if r.HighImpact {
			s.HighImpactStudies++
		}
		quality += r.QualityScore
		impact += r.PolicyImpactScore

		s.PublicationTypes[r.PublicationType]++
		s.UsageTypes[r.UsageType]++
		s.Years[r.Year]++
		s.Reach[r.GeographicReach]++
		s.AuthorQuality[r.AuthorQuality]++

		if slices.Contains(r.Defaulted, "publication_type") {
			s.Missing.PublicationType++
		}
		if slices.Contains(r.Defaulted, "usage_type") {
			s.Missing.UsageType++
		}
		if slices.Contains(r.Defaulted, "publication_year") {
			s.Missing.PublicationYear++
		}
		if strings.TrimSpace(r.ResearchDomain) == "" {
			s.Missing.ResearchDomain++
		}
		if strings.TrimSpace(r.GeographicFocusRaw) == "" {
			s.Missing.GeographicFocus++
		}
		if strings.TrimSpace(r.PolicyImplications) == "" {
			s.Missing.PolicyImplications++
		}
	}

	if n := len(records); n > 0 {
		s.AvgQualityScore = math.Round(float64(quality)/float64(n)*10) / 10
		s.AvgPolicyImpact = math.Round(float64(impact)/float64(n)*10) / 10
	}

	domains := aggregate.CountBy(records, func(r types.PublicationRecord) string {
		return strings.TrimSpace(r.ResearchDomain)
	})
	s.UniqueDomains = len(domains)
	s.TopDomains = topDomains(domains, TopDomainCount)
	return s
}

func topDomains(counts map[string]int, n int) []types.DomainCount {
	out := make([]types.DomainCount, 0, len(counts))
	for d, c := range counts {
		out = append(out, types.DomainCount{Domain: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Domain < out[j].Domain
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}
