// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package aggregate holds the record filtering, ranking, and bucketing
// helpers shared by the graph builders and the query router.
package aggregate

import (
	"slices"
	"sort"
	"strings"

	"github.com/pdiddy/pubflow/internal/recency"
	"github.com/pdiddy/pubflow/pkg/types"
)

// Criteria restricts a record collection. Zero values mean "no restriction".
// Domains match exactly, ignoring case.
type Criteria struct {
	YearFrom         int
	YearTo           int
	PublicationTypes []types.PublicationType
	UsageTypes       []types.UsageType
	Domains          []string
}

// FromContext converts a query context into Criteria.
func FromContext(ctx types.QueryContext) Criteria {
	return Criteria{
		YearFrom:         ctx.YearFrom,
		YearTo:           ctx.YearTo,
		PublicationTypes: ctx.PublicationTypes,
		UsageTypes:       ctx.UsageTypes,
		Domains:          ctx.Domains,
	}
}

// IsEmpty reports whether the criteria restrict nothing.
func (c Criteria) IsEmpty() bool {
	return c.YearFrom == 0 && c.YearTo == 0 && len(c.PublicationTypes) == 0 &&
		len(c.UsageTypes) == 0 && len(c.Domains) == 0
}

// Match reports whether r satisfies every restriction.
func (c Criteria) Match(r types.PublicationRecord) bool {
	if c.YearFrom > 0 && r.Year < c.YearFrom {
		return false
	}
	if c.YearTo > 0 && r.Year > c.YearTo {
		return false
	}
	if len(c.PublicationTypes) > 0 && !slices.Contains(c.PublicationTypes, r.PublicationType) {
		return false
	}
	if len(c.UsageTypes) > 0 && !slices.Contains(c.UsageTypes, r.UsageType) {
		return false
	}
	if len(c.Domains) > 0 && !slices.ContainsFunc(c.Domains, func(d string) bool {
		return strings.EqualFold(strings.TrimSpace(d), r.ResearchDomain)
	}) {
		return false
	}
	return true
}

// Apply returns the records matching c, in input order. The input slice is
// never modified.
func (c Criteria) Apply(records []types.PublicationRecord) []types.PublicationRecord {
	if c.IsEmpty() {
		return records
	}
	return Where(records, c.Match)
}

// Where returns the records for which keep is true, in input order.
func Where(records []types.PublicationRecord, keep func(types.PublicationRecord) bool) []types.PublicationRecord {
	out := make([]types.PublicationRecord, 0, len(records))
	for _, r := range records {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// RankByImpact returns a copy of records sorted by policy-impact score
// descending, ties broken by id ascending, truncated to limit when limit > 0.
func RankByImpact(records []types.PublicationRecord, limit int) []types.PublicationRecord {
	ranked := slices.Clone(records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].PolicyImpactScore != ranked[j].PolicyImpactScore {
			return ranked[i].PolicyImpactScore > ranked[j].PolicyImpactScore
		}
		return ranked[i].ID < ranked[j].ID
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// ByYear buckets records by publication year, ascending. Weight is the
// summed recency weight relative to asOfYear.
func ByYear(records []types.PublicationRecord, asOfYear int) []types.YearBucket {
	index := make(map[int]int)
	var buckets []types.YearBucket
	quality := make(map[int]int)
	impact := make(map[int]int)

	for _, r := range records {
		i, ok := index[r.Year]
		if !ok {
			i = len(buckets)
			index[r.Year] = i
			buckets = append(buckets, types.YearBucket{Year: r.Year})
		}
		b := &buckets[i]
		b.Count++
		b.Weight += recency.Weight(r.Year, asOfYear)
		if r.UsageType == types.UsagePrimaryAnalysis {
			b.PrimaryAnalysis++
		}
		if r.HighImpact {
			b.HighImpactRecords++
		}
		quality[r.Year] += r.QualityScore
		impact[r.Year] += r.PolicyImpactScore
	}

	for i := range buckets {
		b := &buckets[i]
		b.AvgQualityScore = float64(quality[b.Year]) / float64(b.Count)
		b.AvgPolicyImpact = float64(impact[b.Year]) / float64(b.Count)
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Year < buckets[j].Year })
	return buckets
}

// ByUsage buckets records by usage type in the fixed display order. Usage
// types without records are omitted.
func ByUsage(records []types.PublicationRecord) []types.UsageBucket {
	type acc struct {
		count, quality, impact, high int
		domains                      map[string]int
	}
	accs := make(map[types.UsageType]*acc)
	for _, r := range records {
		a := accs[r.UsageType]
		if a == nil {
			a = &acc{domains: make(map[string]int)}
			accs[r.UsageType] = a
		}
		a.count++
		a.quality += r.QualityScore
		a.impact += r.PolicyImpactScore
		if r.MethodologicalRigor == types.RigorHigh {
			a.high++
		}
		if r.ResearchDomain != "" {
			a.domains[r.ResearchDomain]++
		}
	}

	var buckets []types.UsageBucket
	for _, ut := range types.UsageTypes {
		a := accs[ut]
		if a == nil {
			continue
		}
		buckets = append(buckets, types.UsageBucket{
			UsageType:        ut,
			Count:            a.count,
			Share:            float64(a.count) / float64(len(records)),
			AvgQualityScore:  float64(a.quality) / float64(a.count),
			AvgPolicyImpact:  float64(a.impact) / float64(a.count),
			HighRigorRecords: a.high,
			TopDomain:        topKey(a.domains),
		})
	}
	return buckets
}

// CountBy counts records per key, skipping empty keys.
func CountBy(records []types.PublicationRecord, key func(types.PublicationRecord) string) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		if k := key(r); k != "" {
			counts[k]++
		}
	}
	return counts
}

// topKey returns the key with the highest count, ties broken alphabetically.
func topKey(counts map[string]int) string {
	best, bestN := "", 0
	for k, n := range counts {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	return best
}
