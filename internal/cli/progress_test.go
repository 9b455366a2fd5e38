package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWantsProgress(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, WantsProgress(&buf, 10))
	assert.False(t, WantsProgress(&buf, ProgressThreshold), "buffers are not terminals")
}

func TestNewProgressBar(t *testing.T) {
	var buf bytes.Buffer
	bar := NewProgressBar(&buf, 3)

	for i := 0; i < 3; i++ {
		require.NoError(t, bar.Add(1))
	}

	assert.True(t, bar.IsFinished())
	assert.Contains(t, buf.String(), "Generating passwords")
}
