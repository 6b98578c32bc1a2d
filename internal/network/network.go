// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package network builds the co-authorship graph: one node per person named
// in the record collection and one undirected edge per pair of people who
// share at least one publication.
package network

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/pdiddy/pubflow/internal/aggregate"
	"github.com/pdiddy/pubflow/internal/authors"
	"github.com/pdiddy/pubflow/internal/recency"
	"github.com/pdiddy/pubflow/pkg/types"
)

// DefaultTopK is the length of the top-connected list when Options.TopK is zero.
const DefaultTopK = 10

// Frequency saturates at this many shared publications.
const saturationCount = 10

const (
	frequencyShare = 0.7
	recencyShare   = 0.3
)

// Filter restricts the graph. Zero values mean "no restriction".
type Filter struct {
	YearFrom int `json:"yearFrom,omitempty"`
	YearTo   int `json:"yearTo,omitempty"`

	// Domains is an allow-list matched exactly, ignoring case.
	Domains []string `json:"domains,omitempty"`

	// MinCollaborations drops edges with fewer shared publications, then
	// drops nodes left without any edge.
	MinCollaborations int `json:"minCollaborations,omitempty"`

	// MaxNodes keeps only the nodes with the most publications.
	MaxNodes int `json:"maxNodes,omitempty"`

	// AuthorContains keeps only records crediting a person whose name
	// contains this substring, ignoring case.
	AuthorContains string `json:"authorContains,omitempty"`
}

// Options holds build parameters that are not filters.
type Options struct {
	AsOfYear int
	TopK     int
}

type nodeAcc struct {
	person  types.ParsedAuthor
	pubs    []int
	years   []int
	domains map[string]bool
}

type pairKey struct{ a, b string }

type edgeAcc struct {
	pubs   []int
	years  map[int]bool
	weight float64
}

// Build derives the collaboration graph from records. Institutions never
// become nodes. An empty or fully filtered collection yields an empty graph
// with zero metrics.
func Build(records []types.PublicationRecord, f Filter, opts Options) types.Network {
	asOf := recency.Resolve(opts.AsOfYear)
	topK := opts.TopK
	if topK <= 0 {
		topK = DefaultTopK
	}

	selected := aggregate.Criteria{
		YearFrom: f.YearFrom,
		YearTo:   f.YearTo,
		Domains:  f.Domains,
	}.Apply(records)

	nodes := make(map[string]*nodeAcc)
	edges := make(map[pairKey]*edgeAcc)

	for _, r := range selected {
		credited := people(r.AuthorsRaw)
		if len(credited) == 0 || !mentions(credited, f.AuthorContains) {
			continue
		}
		for _, p := range credited {
			n := nodes[p.FullName]
			if n == nil {
				n = &nodeAcc{person: p, domains: make(map[string]bool)}
				nodes[p.FullName] = n
			}
			n.pubs = append(n.pubs, r.ID)
			n.years = append(n.years, r.Year)
			if r.ResearchDomain != "" {
				n.domains[r.ResearchDomain] = true
			}
		}
		for i := 0; i < len(credited); i++ {
			for j := i + 1; j < len(credited); j++ {
				k := canonical(credited[i].FullName, credited[j].FullName)
				e := edges[k]
				if e == nil {
					e = &edgeAcc{years: make(map[int]bool)}
					edges[k] = e
				}
				e.pubs = append(e.pubs, r.ID)
				e.years[r.Year] = true
				e.weight += recency.Weight(r.Year, asOf)
			}
		}
	}

	if f.MinCollaborations > 0 {
		for k, e := range edges {
			if len(e.pubs) < f.MinCollaborations {
				delete(edges, k)
			}
		}
		linked := make(map[string]bool)
		for k := range edges {
			linked[k.a], linked[k.b] = true, true
		}
		for id := range nodes {
			if !linked[id] {
				delete(nodes, id)
			}
		}
	}

	if f.MaxNodes > 0 && len(nodes) > f.MaxNodes {
		capNodes(nodes, edges, f.MaxNodes)
	}

	return assemble(nodes, edges, asOf, topK)
}

// capNodes keeps the limit nodes with the highest publication counts, ties
// broken by id, and every edge whose endpoints both survive.
func capNodes(nodes map[string]*nodeAcc, edges map[pairKey]*edgeAcc, limit int) {
	ids := make([]string, 0, len(nodes))
	for id := range nodes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := len(nodes[ids[i]].pubs), len(nodes[ids[j]].pubs)
		if ci != cj {
			return ci > cj
		}
		return ids[i] < ids[j]
	})
	for _, id := range ids[limit:] {
		delete(nodes, id)
	}
	for k := range edges {
		if nodes[k.a] == nil || nodes[k.b] == nil {
			delete(edges, k)
		}
	}
}

func assemble(nodes map[string]*nodeAcc, edges map[pairKey]*edgeAcc, asOf, topK int) types.Network {
	degree := make(map[string]int, len(nodes))
	out := types.Network{
		Nodes: make([]types.NetworkNode, 0, len(nodes)),
		Edges: make([]types.CollaborationEdge, 0, len(edges)),
	}

	for k, e := range edges {
		degree[k.a]++
		degree[k.b]++
		years := make([]int, 0, len(e.years))
		for y := range e.years {
			years = append(years, y)
		}
		slices.Sort(years)
		out.Edges = append(out.Edges, types.CollaborationEdge{
			Source:               k.a,
			Target:               k.b,
			SharedPublicationIDs: e.pubs,
			Count:                len(e.pubs),
			Years:                years,
			Weight:               round(e.weight),
			Strength:             Strength(len(e.pubs), years, asOf),
		})
	}
	sort.Slice(out.Edges, func(i, j int) bool {
		if out.Edges[i].Source != out.Edges[j].Source {
			return out.Edges[i].Source < out.Edges[j].Source
		}
		return out.Edges[i].Target < out.Edges[j].Target
	})

	for id, n := range nodes {
		domains := make([]string, 0, len(n.domains))
		for d := range n.domains {
			domains = append(domains, d)
		}
		slices.Sort(domains)
		out.Nodes = append(out.Nodes, types.NetworkNode{
			ID:                id,
			Name:              n.person.FullName,
			FirstName:         n.person.FirstName,
			LastName:          n.person.LastName,
			PublicationCount:  len(n.pubs),
			CollaboratorCount: degree[id],
			FirstYear:         slices.Min(n.years),
			LastYear:          slices.Max(n.years),
			Domains:           domains,
			PublicationIDs:    n.pubs,
		})
	}
	sort.Slice(out.Nodes, func(i, j int) bool { return out.Nodes[i].ID < out.Nodes[j].ID })

	out.Metrics = metrics(out.Nodes, len(out.Edges), topK)
	return out
}

func metrics(nodes []types.NetworkNode, edgeCount, topK int) types.NetworkMetrics {
	m := types.NetworkMetrics{
		NodeCount:    len(nodes),
		EdgeCount:    edgeCount,
		TopConnected: []types.NodeDegree{},
	}
	n := len(nodes)
	if n == 0 {
		return m
	}
	if n > 1 {
		m.Density = round(float64(edgeCount) / (float64(n) * float64(n-1) / 2))
	}
	m.AverageDegree = round(2 * float64(edgeCount) / float64(n))

	ranked := make([]types.NodeDegree, 0, n)
	for _, node := range nodes {
		ranked = append(ranked, types.NodeDegree{ID: node.ID, Degree: node.CollaboratorCount})
		m.MaxDegree = max(m.MaxDegree, node.CollaboratorCount)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Degree != ranked[j].Degree {
			return ranked[i].Degree > ranked[j].Degree
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	m.TopConnected = ranked
	return m
}

// Strength blends how often two people published together with how recent
// those collaborations are. The result lies in [0,1].
func Strength(count int, years []int, asOfYear int) float64 {
	if count <= 0 {
		return 0
	}
	frequency := math.Min(float64(count)/saturationCount, 1)
	var recentRatio float64
	if len(years) > 0 {
		recent := 0
		for _, y := range years {
			if recency.IsRecent(y, asOfYear) {
				recent++
			}
		}
		recentRatio = float64(recent) / float64(len(years))
	}
	s := frequencyShare*frequency + recencyShare*recentRatio
	return round(math.Max(0, math.Min(1, s)))
}

// people returns the non-institution authors credited on a record.
func people(raw string) []types.ParsedAuthor {
	var out []types.ParsedAuthor
	for _, a := range authors.Parse(raw) {
		if !a.IsInstitution {
			out = append(out, a)
		}
	}
	return out
}

func mentions(people []types.ParsedAuthor, sub string) bool {
	sub = strings.ToLower(strings.TrimSpace(sub))
	if sub == "" {
		return true
	}
	return slices.ContainsFunc(people, func(p types.ParsedAuthor) bool {
		return strings.Contains(strings.ToLower(p.FullName), sub)
	})
}

func canonical(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a, b}
}

func round(v float64) float64 {
	return math.Round(v*1000) / 1000
}
