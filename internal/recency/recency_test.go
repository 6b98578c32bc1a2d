// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package recency

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeight(t *testing.T) {
	tests := []struct {
		year int
		want float64
	}{
		{2026, 1.5},
		{2025, 1.5},
		{2024, 1.2},
		{2023, 1.2},
		{2022, 1.0},
		{2021, 1.0},
		{2020, 0.8},
		{1999, 0.8},
		{2027, 1.5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Weight(tt.year, 2026), "year %d", tt.year)
	}
}

func TestIsRecent(t *testing.T) {
	assert.True(t, IsRecent(2021, 2026))
	assert.False(t, IsRecent(2020, 2026))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, 2019, Resolve(2019))
	assert.Equal(t, time.Now().Year(), Resolve(0))
}
