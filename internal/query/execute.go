// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package query

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pubflow/internal/aggregate"
	"github.com/pdiddy/pubflow/internal/network"
	"github.com/pdiddy/pubflow/internal/recency"
	"github.com/pdiddy/pubflow/pkg/types"
)

// MaxSample caps the records returned in QueryResult.Data.
const MaxSample = 50

// Execute runs intent over records. Context filters apply first and the
// intent narrows further. Count is taken before Data is capped.
func Execute(intent types.QueryIntent, records []types.PublicationRecord, ctx types.QueryContext) types.QueryResult {
	base := aggregate.FromContext(ctx).Apply(records)
	p := intent.Parameters
	asOf := recency.Resolve(ctx.AsOfYear)
	res := types.QueryResult{Intent: intent}

	switch intent.Kind {
	case types.IntentAuthorSearch:
		matched := aggregate.Where(base, func(r types.PublicationRecord) bool {
			return containsFold(r.AuthorsRaw, p.Author)
		})
		setData(&res, matched)
		res.Summary = fmt.Sprintf("Found %d publications with an author matching %q.", res.Count, p.Author)

	case types.IntentDomainFilter:
		matched := aggregate.Where(base, func(r types.PublicationRecord) bool {
			return containsFold(r.ResearchDomain, p.Domain)
		})
		setData(&res, matched)
		res.Summary = fmt.Sprintf("Found %d publications in domains matching %q.", res.Count, p.Domain)

	case types.IntentYearFilter:
		matched := aggregate.Criteria{YearFrom: p.YearFrom, YearTo: p.YearTo}.Apply(base)
		setData(&res, matched)
		res.Summary = fmt.Sprintf("Found %d publications %s.", res.Count, describeYears(p.YearFrom, p.YearTo))

	case types.IntentImpactRanking:
		limit := p.Limit
		if limit <= 0 {
			limit = DefaultLimit
		}
		ranked := aggregate.RankByImpact(base, limit)
		setData(&res, ranked)
		res.Count = len(base)
		res.Summary = fmt.Sprintf("Top %d of %d publications by policy impact score.", len(res.Data), res.Count)

	case types.IntentUsageAnalysis:
		res.Count = len(base)
		res.Data = []types.PublicationRecord{}
		res.UsageBreakdown = aggregate.ByUsage(base)
		res.Summary = summarizeUsage(res.UsageBreakdown, res.Count)

	case types.IntentTrendAnalysis:
		res.Count = len(base)
		res.Data = []types.PublicationRecord{}
		res.YearTrend = aggregate.ByYear(base, asOf)
		res.Summary = summarizeTrend(res.YearTrend)

	case types.IntentCollaboration:
		g := network.Build(base, network.Filter{AuthorContains: p.Author}, network.Options{AsOfYear: asOf})
		res.Network = &g
		res.Count = g.Metrics.NodeCount
		res.Data = []types.PublicationRecord{}
		res.Summary = fmt.Sprintf("Collaboration network with %d authors and %d collaborations.",
			g.Metrics.NodeCount, g.Metrics.EdgeCount)
		if p.Author != "" {
			res.Summary = fmt.Sprintf("Collaboration network around %q with %d authors and %d collaborations.",
				p.Author, g.Metrics.NodeCount, g.Metrics.EdgeCount)
		}

	default:
		matched := aggregate.Where(base, func(r types.PublicationRecord) bool {
			return matchesAll(r, p.Terms)
		})
		setData(&res, matched)
		if len(p.Terms) == 0 {
			res.Summary = fmt.Sprintf("Showing %d publications.", res.Count)
		} else {
			res.Summary = fmt.Sprintf("Found %d publications matching %s.", res.Count, strings.Join(p.Terms, ", "))
		}
	}
	return res
}

// Ask routes and executes text in one step.
func Ask(text string, records []types.PublicationRecord, ctx types.QueryContext) types.QueryResult {
	return Execute(Route(text, ctx), records, ctx)
}

func setData(res *types.QueryResult, matched []types.PublicationRecord) {
	res.Count = len(matched)
	if len(matched) > MaxSample {
		matched = matched[:MaxSample]
	}
	res.Data = append([]types.PublicationRecord{}, matched...)
}

// matchesAll reports whether every term occurs in the record's title,
// authors, domain, or key findings.
func matchesAll(r types.PublicationRecord, terms []string) bool {
	haystack := strings.ToLower(strings.Join([]string{r.Title, r.AuthorsRaw, r.ResearchDomain, r.KeyFindings}, " "))
	for _, t := range terms {
		if !strings.Contains(haystack, t) {
			return false
		}
	}
	return true
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(sub)))
}

func describeYears(from, to int) string {
	switch {
	case from == 0 && to == 0:
		return "across all years"
	case from == to:
		return fmt.Sprintf("from %d", from)
	case to == 0:
		return fmt.Sprintf("since %d", from)
	case from == 0:
		return fmt.Sprintf("up to %d", to)
	}
	return fmt.Sprintf("between %d and %d", from, to)
}

func summarizeUsage(buckets []types.UsageBucket, total int) string {
	if len(buckets) == 0 {
		return "No publications to analyze."
	}
	parts := make([]string, len(buckets))
	for i, b := range buckets {
		parts[i] = fmt.Sprintf("%s %d (%.0f%%)", b.UsageType, b.Count, b.Share*100)
	}
	return fmt.Sprintf("Usage across %d publications: %s.", total, strings.Join(parts, ", "))
}

func summarizeTrend(buckets []types.YearBucket) string {
	if len(buckets) == 0 {
		return "No publications to chart."
	}
	peak := buckets[0]
	for _, b := range buckets[1:] {
		if b.Count > peak.Count {
			peak = b
		}
	}
	return fmt.Sprintf("Publications span %d to %d, peaking in %d with %d.",
		buckets[0].Year, buckets[len(buckets)-1].Year, peak.Year, peak.Count)
}
