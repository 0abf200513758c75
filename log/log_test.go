package log_test

import (
	"bytes"
	"testing"

	"github.com/Tankmaster48/conq/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaggedOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	logger.Info(log.String("worker-1"), "started", "ops", 42)
	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "msg=started")
	assert.Contains(t, out, "name=worker-1")
	assert.Contains(t, out, "ops=42")
}

func TestNilTag(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	logger.Warn(nil, "untagged")
	out := buf.String()
	assert.Contains(t, out, "msg=untagged")
	assert.NotContains(t, out, "name=")
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	logger.Debug(nil, "hidden")
	require.Empty(t, buf.String())

	logger.SetLevel(log.LevelTrace)
	logger.Trace(nil, "visible")
	assert.Contains(t, buf.String(), "level=TRACE")
	assert.Equal(t, log.LevelTrace, logger.Level())
}
