package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesConsoleAndFile(t *testing.T) {
	dir := t.TempDir()
	var out bytes.Buffer
	logger := NewLoggerTo(&out, dir)

	logger.Scan("Fetching %s", "OSMO CM")
	logger.Error("boom: %d", 500)

	assert.Contains(t, out.String(), "SCAN")
	assert.Contains(t, out.String(), "Fetching OSMO CM")
	assert.Contains(t, out.String(), "boom: 500")

	logFile := filepath.Join(dir, "liquidation-monitor-"+time.Now().Format("2006-01-02")+".log")
	content, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Fetching OSMO CM")
	assert.Contains(t, string(content), "boom: 500")
}

func TestLoggerWithoutFile(t *testing.T) {
	var out bytes.Buffer
	logger := NewLoggerTo(&out, "")

	logger.Info("hello")
	assert.Contains(t, out.String(), "INFO")
	assert.Contains(t, out.String(), "hello")
}
