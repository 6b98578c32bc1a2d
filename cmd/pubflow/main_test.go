// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubflow/pkg/types"
)

func filterCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addFilterFlags(cmd)
	addOutputFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestCriteriaFromFlags(t *testing.T) {
	cmd := filterCmd(t, "--year-from", "2020", "--year-to", "2024",
		"--domain", "Pricing", "--domain", "Workforce",
		"--type", "government", "--usage", "primary analysis")

	c, err := criteriaFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, 2020, c.YearFrom)
	assert.Equal(t, 2024, c.YearTo)
	assert.Equal(t, []string{"Pricing", "Workforce"}, c.Domains)
	assert.Equal(t, []types.PublicationType{types.PubGovernment}, c.PublicationTypes)
	assert.Equal(t, []types.UsageType{types.UsagePrimaryAnalysis}, c.UsageTypes)
}

func TestCriteriaFromFlagsErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		errMsg string
	}{
		{"reversed years", []string{"--year-from", "2024", "--year-to", "2020"}, "after --year-to"},
		{"unknown type", []string{"--type", "blog"}, `unknown publication type "blog"`},
		{"unknown usage", []string{"--usage", "sideways"}, `unknown usage type "sideways"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := criteriaFromFlags(filterCmd(t, tt.args...))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestWriteOutput(t *testing.T) {
	v := map[string]int{"count": 2}

	cmd := filterCmd(t, "--format", "yaml")
	var out bytes.Buffer
	cmd.SetOut(&out)
	require.NoError(t, writeOutput(cmd, v))
	assert.Equal(t, "count: 2\n", out.String())

	path := filepath.Join(t.TempDir(), "out", "result.json")
	cmd = filterCmd(t, "--output", path)
	cmd.SetErr(&bytes.Buffer{})
	require.NoError(t, writeOutput(cmd, v))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"count": 2}`, string(data))

	cmd = filterCmd(t, "--format", "xml")
	assert.Error(t, writeOutput(cmd, v))
}

func TestParseAuthorField(t *testing.T) {
	r := parseAuthorField(3, "John Smith; Mary Jones; Urban Institute")
	assert.Equal(t, 3, r.ID)
	assert.Equal(t, types.AuthorsGood, r.Quality)
	require.Len(t, r.Authors, 3)
	assert.True(t, r.Authors[2].IsInstitution)

	empty := parseAuthorField(0, "")
	assert.NotNil(t, empty.Authors)
	assert.Empty(t, empty.Authors)
}
