package utils

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogDebugRespectsVerbose(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		SetVerbose(false)
		InfoLogger.SetOutput(os.Stdout)
		WarnLogger.SetOutput(os.Stdout)
		ErrorLogger.SetOutput(os.Stderr)
		DebugLogger.SetOutput(os.Stdout)
	})

	SetVerbose(false)
	LogDebug("hidden %d", 1)
	assert.Empty(t, buf.String())

	SetVerbose(true)
	assert.True(t, Verbose())
	LogDebug("shown %d", 2)
	assert.Contains(t, buf.String(), "DEBUG: ")
	assert.Contains(t, buf.String(), "shown 2")
}

func TestLogLevelsPrefix(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() {
		InfoLogger.SetOutput(os.Stdout)
		WarnLogger.SetOutput(os.Stdout)
		ErrorLogger.SetOutput(os.Stderr)
		DebugLogger.SetOutput(os.Stdout)
	})

	LogInfo("a")
	LogWarn("b")
	LogError("c")

	out := buf.String()
	assert.Contains(t, out, "INFO: ")
	assert.Contains(t, out, "WARN: ")
	assert.Contains(t, out, "ERROR: ")
}
