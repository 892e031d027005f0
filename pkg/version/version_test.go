package version_test

import (
	"encoding/json"
	"runtime"
	"testing"

	// Packages
	version "github.com/mutablelogic/go-weatherstock/pkg/version"
	assert "github.com/stretchr/testify/assert"
)

func Test_version_001(t *testing.T) {
	assert := assert.New(t)

	tag := version.GitTag
	t.Cleanup(func() { version.GitTag = tag })

	version.GitTag = "v1.2.3"
	assert.Equal("v1.2.3", version.Version())

	metadata := version.New("weatherstock")
	assert.Equal("weatherstock", metadata.Name)
	assert.Equal("v1.2.3", metadata.Version)
	assert.Equal("v1.2.3", metadata.Tag)
	assert.Equal(runtime.Version(), metadata.Compiler)
}

func Test_version_002(t *testing.T) {
	assert := assert.New(t)

	var metadata map[string]any
	assert.NoError(json.Unmarshal(version.JSON("weatherstock"), &metadata))
	assert.Equal("weatherstock", metadata["name"])
	assert.NotEmpty(metadata["version"])
}
