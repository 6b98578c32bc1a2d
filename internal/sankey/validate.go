// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package sankey

import (
	"fmt"
	"strings"

	"github.com/pdiddy/pubflow/pkg/types"
)

// LinkProblem describes one link that breaks the flow's structure.
type LinkProblem struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Reason string `json:"reason"`
}

// StructuralError reports links that reference missing nodes or skip a
// stage. Renderers cannot draw such a flow.
type StructuralError struct {
	Problems []LinkProblem `json:"problems"`
}

func (e *StructuralError) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = fmt.Sprintf("%s -> %s: %s", p.Source, p.Target, p.Reason)
	}
	return fmt.Sprintf("sankey: %d invalid link(s): %s", len(e.Problems), strings.Join(parts, "; "))
}

// Validate checks that every link joins two existing nodes in adjacent
// stages. It returns a *StructuralError listing every offending link.
func Validate(nodes []types.SankeyNode, links []types.SankeyLink) error {
	stage := make(map[string]int, len(nodes))
	for _, n := range nodes {
		stage[n.ID] = n.Stage
	}

	var problems []LinkProblem
	for _, l := range links {
		src, okSrc := stage[l.Source]
		tgt, okTgt := stage[l.Target]
		switch {
		case !okSrc && !okTgt:
			problems = append(problems, LinkProblem{l.Source, l.Target, "source and target nodes missing"})
		case !okSrc:
			problems = append(problems, LinkProblem{l.Source, l.Target, "source node missing"})
		case !okTgt:
			problems = append(problems, LinkProblem{l.Source, l.Target, "target node missing"})
		case tgt != src+1:
			problems = append(problems, LinkProblem{l.Source, l.Target,
				fmt.Sprintf("links stage %d to stage %d", src, tgt)})
		}
	}
	if len(problems) > 0 {
		return &StructuralError{Problems: problems}
	}
	return nil
}
