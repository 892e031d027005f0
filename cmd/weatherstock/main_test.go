package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_logger_001(t *testing.T) {
	assert := assert.New(t)

	// Debug records are dropped at info level
	var buf bytes.Buffer
	log := newLogger(&buf, false)
	log.Debug("tool call", "tool", "get_weather")
	assert.Empty(buf.String())
	log.Warn("tool call failed", "tool", "get_weather")
	assert.Contains(buf.String(), "tool call failed")

	// And kept at debug level
	buf.Reset()
	newLogger(&buf, true).Debug("tool call", "tool", "get_weather")
	assert.Contains(buf.String(), "tool call")
}

func Test_prompts_001(t *testing.T) {
	assert := assert.New(t)

	// Built-in prompts
	var globals Globals
	prompts, err := globals.Prompts()
	if assert.NoError(err) {
		assert.Len(prompts.Definitions(), 2)
	}

	// Prompts from a directory replace the built-in ones
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "market-open.yaml"), []byte("description: Market open\ntemplate: \"{{search_stocks(query=[[ quote \\\"index\\\" ]])}}\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	globals.PromptDir = dir
	prompts, err = globals.Prompts()
	if !assert.NoError(err) {
		t.FailNow()
	}
	if defs := prompts.Definitions(); assert.Len(defs, 1) {
		assert.Equal("market-open", defs[0].Name)
	}
	result, err := prompts.Render("market-open", nil)
	if assert.NoError(err) {
		assert.Equal(`{{search_stocks(query="index")}}`, result.Text)
	}
}
