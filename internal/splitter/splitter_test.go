// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package splitter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/quill/pkg/quill"
)

const sample = `title = "App"

@dev
debug = true

@prod
optimized = true
`

func TestSplit(t *testing.T) {
	outDir := t.TempDir()
	var progress strings.Builder

	summary, err := Split(sample, "config.toml", outDir, zerolog.Nop(), &progress)
	require.NoError(t, err)

	assert.Equal(t, Summary{Written: 3}, summary)
	assert.Equal(t, 3, summary.Total())
	assert.False(t, summary.HasFailures())

	global := readFile(t, filepath.Join(outDir, "config.global.toml"))
	assert.Contains(t, global, `title = "App"`)
	assert.Contains(t, global, "debug = true")

	dev := readFile(t, filepath.Join(outDir, "config.dev.toml"))
	assert.Contains(t, dev, "debug = true")
	assert.NotContains(t, dev, "optimized")

	prod := readFile(t, filepath.Join(outDir, "config.prod.toml"))
	assert.Contains(t, prod, "optimized = true")
	assert.NotContains(t, prod, "debug")

	// Every output keeps the source's line structure.
	for _, out := range []string{global, dev, prod} {
		assert.Equal(t, strings.Count(sample, "\n"), strings.Count(out, "\n"))
	}

	for _, name := range []string{"config.global.toml", "config.dev.toml", "config.prod.toml"} {
		assert.Contains(t, progress.String(), "wrote "+filepath.Join(outDir, name))
	}
}

func TestSplitCreatesOutDir(t *testing.T) {
	outDir := filepath.Join(t.TempDir(), "extracted", "nested")

	summary, err := Split("a = 1\n", "app.ini", outDir, zerolog.Nop(), &strings.Builder{})
	require.NoError(t, err)
	assert.Equal(t, Summary{Written: 1}, summary)
	assert.FileExists(t, filepath.Join(outDir, "app.global.ini"))
}

func TestSplitInvalidSourceWritesNothing(t *testing.T) {
	outDir := t.TempDir()

	_, err := Split("@dev\nok = true\n@bad!\n", "config.toml", outDir, zerolog.Nop(), &strings.Builder{})
	var qerr *quill.Error
	require.ErrorAs(t, err, &qerr)
	assert.Equal(t, quill.InvalidScopeName, qerr.Kind)

	entries, readErr := os.ReadDir(outDir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no partial output on error")
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "config.dev.toml", outputName("config.toml", "dev"))
	assert.Equal(t, "config.dev.toml", outputName("deploy/config.toml", "dev"))
	assert.Equal(t, "settings.prod", outputName("settings", "prod"))
}
