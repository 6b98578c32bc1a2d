// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/pubflow/pkg/types"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, types.LogConfig{Level: "warn", Format: "logfmt"})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("unrecognized value", "field", "usage_type", "raw", "??")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "field=usage_type")
}

func TestNewErrors(t *testing.T) {
	_, err := New(&bytes.Buffer{}, types.LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, types.LogConfig{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}

func TestOrDiscard(t *testing.T) {
	assert.NotNil(t, OrDiscard(nil))
	l := Discard()
	assert.Same(t, l, OrDiscard(l))
}
