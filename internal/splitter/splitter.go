// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package splitter writes every scope of a scope-tagged document to its
// own file, one extraction per declared scope plus the global scope.
package splitter

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/quill/internal/inventory"
	"github.com/pdiddy/quill/pkg/quill"
)

// Summary holds counts from one split run.
type Summary struct {
	Written int
	Failed  int
}

// Total returns the number of scopes processed.
func (s Summary) Total() int {
	return s.Written + s.Failed
}

// HasFailures reports whether any output file could not be written.
func (s Summary) HasFailures() bool {
	return s.Failed > 0
}

// Split extracts every scope declared in src, plus the global scope,
// into files named <stem>.<scope><ext> under outDir. srcName is the
// source file name the output names derive from; progress lines go to
// w. An invalid scope name in src aborts before anything is written.
func Split(src, srcName, outDir string, logger zerolog.Logger, w io.Writer) (Summary, error) {
	report, err := inventory.Scan(src)
	if err != nil {
		return Summary{}, err
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	targets := append([]string{quill.GlobalName}, report.Names()...)

	var summary Summary
	for _, name := range targets {
		out, err := quill.ExtractScope(src, quill.Defined(name))
		if err != nil {
			// Names come from the scan above, so extraction cannot
			// reject them; counted rather than ignored all the same.
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		path := filepath.Join(outDir, outputName(srcName, name))
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			fmt.Fprintf(w, "failed  %s: %v\n", name, err)
			summary.Failed++
			continue
		}

		logger.Debug().Str("scope", name).Int("bytes", len(out)).Msg("extracted scope")
		fmt.Fprintf(w, "wrote %s\n", path)
		summary.Written++
	}

	return summary, nil
}

// outputName derives the per-scope file name: config.toml extracted for
// dev becomes config.dev.toml.
func outputName(srcName, scope string) string {
	base := filepath.Base(srcName)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "." + scope + ext
}
