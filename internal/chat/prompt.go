// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package chat

import (
	"bytes"
	"text/template"

	"github.com/pdiddy/pubflow/pkg/types"
)

const systemPrompt = `You are a research analyst answering questions about a curated dataset of publications that used a federal health-care data resource. Answer only from the query result you are given. Quote counts exactly, name publications by title and year, and say plainly when the result does not answer the question. Keep answers under 200 words.`

var resultPromptTmpl = template.Must(template.New("result").Parse(`Question: {{.Question}}

Query intent: {{.Result.Intent.Kind}}
Matching publications: {{.Result.Count}}
Summary: {{.Result.Summary}}
{{- if .Filters}}
Active filters: {{.Filters}}
{{- end}}
{{- with .Result.UsageBreakdown}}

Usage breakdown:
{{- range .}}
- {{.UsageType}}: {{.Count}} publications, average policy impact {{printf "%.1f" .AvgPolicyImpact}}{{if .TopDomain}}, most common domain {{.TopDomain}}{{end}}
{{- end}}
{{- end}}
{{- with .Result.YearTrend}}

Publications per year:
{{- range .}}
- {{.Year}}: {{.Count}} ({{.HighImpactRecords}} high impact)
{{- end}}
{{- end}}
{{- with .Result.Network}}

Collaboration network: {{.Metrics.NodeCount}} authors, {{.Metrics.EdgeCount}} collaborations.
{{- range .Metrics.TopConnected}}
- {{.ID}}: {{.Degree}} collaborators
{{- end}}
{{- end}}
{{- with .Sample}}

Sample publications:
{{- range .}}
- "{{.Title}}" ({{.Year}}), {{.PublicationType}}, {{.UsageType}}, domain {{if .ResearchDomain}}{{.ResearchDomain}}{{else}}unspecified{{end}}, policy impact {{.PolicyImpactScore}}{{if .AuthorsRaw}}, authors: {{.AuthorsRaw}}{{end}}
{{- end}}
{{- end}}
`))

type promptData struct {
	Question string
	Result   types.QueryResult
	Sample   []types.PublicationRecord
	Filters  string
}

// renderPrompt executes the result prompt template.
func renderPrompt(d promptData) (string, error) {
	var buf bytes.Buffer
	if err := resultPromptTmpl.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
