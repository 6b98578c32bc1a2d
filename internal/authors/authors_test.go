// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package authors

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubflow/pkg/types"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []types.ParsedAuthor
	}{
		{
			name: "drops plus-others marker",
			raw:  "Becker C.; [+ others]",
			want: []types.ParsedAuthor{
				{FullName: "Becker C.", FirstName: "C.", LastName: "Becker"},
			},
		},
		{
			name: "drops et al marker in any case",
			raw:  "Smith J; Jones K; [ET AL.]",
			want: []types.ParsedAuthor{
				{FullName: "Smith J", FirstName: "J", LastName: "Smith"},
				{FullName: "Jones K", FirstName: "K", LastName: "Jones"},
			},
		},
		{
			name: "bracketed commission is one institution",
			raw:  "[Medicare Payment Advisory Commission]",
			want: []types.ParsedAuthor{
				{FullName: "Medicare Payment Advisory Commission", IsInstitution: true},
			},
		},
		{
			name: "keeps single last-first name whole",
			raw:  "Doe, Jane",
			want: []types.ParsedAuthor{
				{FullName: "Doe, Jane", FirstName: "Jane", LastName: "Doe"},
			},
		},
		{
			name: "splits comma list that is not last-first",
			raw:  "John Smith, Mary Jones, Ana Lopez",
			want: []types.ParsedAuthor{
				{FullName: "John Smith", FirstName: "John", LastName: "Smith"},
				{FullName: "Mary Jones", FirstName: "Mary", LastName: "Jones"},
				{FullName: "Ana Lopez", FirstName: "Ana", LastName: "Lopez"},
			},
		},
		{
			name: "strips trailing job title",
			raw:  "John Smith; Jane Doe, Deputy Director",
			want: []types.ParsedAuthor{
				{FullName: "John Smith", FirstName: "John", LastName: "Smith"},
				{FullName: "Jane Doe", FirstName: "Jane", LastName: "Doe"},
			},
		},
		{
			name: "title residue after comma split is dropped",
			raw:  "Jane Doe, Deputy Director",
			want: []types.ParsedAuthor{
				{FullName: "Jane Doe", FirstName: "Jane", LastName: "Doe"},
			},
		},
		{
			name: "title-only token after comma split is dropped",
			raw:  "Jane Doe, Chief Medical Officer",
			want: []types.ParsedAuthor{
				{FullName: "Jane Doe", FirstName: "Jane", LastName: "Doe"},
			},
		},
		{
			name: "title-only tokens are dropped from semicolon lists",
			raw:  "Assistant Professor; Tom Baker; Director of Research; Senior Deputy Director",
			want: []types.ParsedAuthor{
				{FullName: "Tom Baker", FirstName: "Tom", LastName: "Baker"},
			},
		},
		{
			name: "honorific with bare suffix leaves nothing",
			raw:  "Dr. Jr.",
			want: []types.ParsedAuthor{},
		},
		{
			name: "bare affixes are residue",
			raw:  "Ana Lopez; III; Ph.D.; Dr.",
			want: []types.ParsedAuthor{
				{FullName: "Ana Lopez", FirstName: "Ana", LastName: "Lopez"},
			},
		},
		{
			name: "all-caps names with initials are people",
			raw:  "SMITH J; DOE A",
			want: []types.ParsedAuthor{
				{FullName: "SMITH J", FirstName: "J", LastName: "SMITH"},
				{FullName: "DOE A", FirstName: "A", LastName: "DOE"},
			},
		},
		{
			name: "all-caps first last name",
			raw:  "JOHN LEE; CBO",
			want: []types.ParsedAuthor{
				{FullName: "JOHN LEE", FirstName: "JOHN", LastName: "LEE"},
				{FullName: "CBO", IsInstitution: true},
			},
		},
		{
			name: "strips honorific, suffixes and annotations",
			raw:  "Dr. Alan Grant PhD; Ellie Sattler, MD (lead author); Ian Malcolm Jr.",
			want: []types.ParsedAuthor{
				{FullName: "Alan Grant", FirstName: "Alan", LastName: "Grant"},
				{FullName: "Ellie Sattler", FirstName: "Ellie", LastName: "Sattler"},
				{FullName: "Ian Malcolm", FirstName: "Ian", LastName: "Malcolm"},
			},
		},
		{
			name: "deduplicates case-sensitively",
			raw:  "Lee Chen; Lee Chen; LEE CHEN",
			want: []types.ParsedAuthor{
				{FullName: "Lee Chen", FirstName: "Lee", LastName: "Chen"},
				{FullName: "LEE CHEN", FirstName: "LEE", LastName: "CHEN"},
			},
		},
		{
			name: "drops short fragments",
			raw:  "AB; Maria Garcia; X",
			want: []types.ParsedAuthor{
				{FullName: "Maria Garcia", FirstName: "Maria", LastName: "Garcia"},
			},
		},
		{
			name: "mixes people and institutions",
			raw:  "Agency for Healthcare Research and Quality; Tom Baker",
			want: []types.ParsedAuthor{
				{FullName: "Agency for Healthcare Research and Quality", IsInstitution: true},
				{FullName: "Tom Baker", FirstName: "Tom", LastName: "Baker"},
			},
		},
		{
			name: "office of keeps its title words",
			raw:  "Office of the Assistant Secretary for Planning and Evaluation",
			want: []types.ParsedAuthor{
				{FullName: "Office of the Assistant Secretary for Planning and Evaluation", IsInstitution: true},
			},
		},
		{
			name: "empty input",
			raw:  "",
			want: []types.ParsedAuthor{},
		},
		{
			name: "whitespace only",
			raw:  "   \t ",
			want: []types.ParsedAuthor{},
		},
		{
			name: "marker only",
			raw:  "[+ others]",
			want: []types.ParsedAuthor{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.raw)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseInvariants(t *testing.T) {
	inputs := []string{
		"Becker C.; [+ others]",
		"A; B; C; Director; Manager",
		"Smith J; Smith J; smith j",
		"[Congressional Budget Office]",
		"Deputy; Chief; Kim Park, Chief Medical Officer",
		"Dr. Jr.; Sr.; M.P.H.",
		",,;;,",
		"Xu Li, Wang Fang, Zhang Wei",
		"[Alpha; Beta; Alpha]",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			seen := make(map[string]bool)
			for _, a := range Parse(in) {
				assert.Greater(t, utf8.RuneCountInString(a.FullName), 2, "short name %q", a.FullName)
				assert.False(t, seen[a.FullName], "duplicate %q", a.FullName)
				seen[a.FullName] = true
				if a.IsInstitution {
					assert.Empty(t, a.FirstName)
					assert.Empty(t, a.LastName)
				}
			}
		})
	}
}

func TestIsInstitution(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Jane Doe", false},
		{"Doe, Jane", false},
		{"Becker C.", false},
		{"Ludwig van Beethoven", false},
		{"Mary O'Neil-Smith", false},
		{"Department of Health and Human Services", true},
		{"Federal Trade Commission", true},
		{"Office of Inspector General", true},
		{"Health Resources and Services Administration", true},
		{"RAND Corporation", true},
		{"AHRQ", true},
		{"SMITH J", false},
		{"LEE CHEN", false},
		{"Smith JAK", false},
		{"AHRQ Health", true},
		{"RAND Corporation Staff", true},
		{"Medicaid", true},
		{"U.S. Government Accountability Office", true},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInstitution(tt.name))
		})
	}
}

func TestNames(t *testing.T) {
	got := Names("Tom Baker; Congressional Budget Office; Ana Lopez")
	assert.Equal(t, []string{"Tom Baker", "Ana Lopez"}, got)
	assert.Empty(t, Names(""))
}

func TestAssess(t *testing.T) {
	tests := []struct {
		raw  string
		want types.AuthorQuality
	}{
		{"Becker C.; [+ others]", types.AuthorsAbbreviated},
		{"Smith J et al.", types.AuthorsAbbreviated},
		{"Jane Doe", types.AuthorsSingle},
		{"[Alpha Board. Beta Council. Gamma Office.]", types.AuthorsBracketed},
		{"J.A. Smith, K.L. Jones", types.AuthorsNeedsValidation},
		{"Smith J; Jones K; Lee M", types.AuthorsGood},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, Assess(tt.raw))
		})
	}
}
