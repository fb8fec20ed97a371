// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package inventory reports which scopes a scope-tagged document
// declares and where, without extracting any of them.
package inventory

import (
	"slices"
	"strings"

	"github.com/pdiddy/quill/pkg/quill"
)

// Report describes the scopes of one document. It marshals to YAML for
// the `quill scopes` command.
type Report struct {
	// GlobalLines counts non-blank content lines visible in every
	// extraction: lines before the first declaration plus lines under
	// explicit @global declarations.
	GlobalLines int `yaml:"global_lines"`

	// Scopes lists declared scopes in order of first appearance.
	Scopes []ScopeEntry `yaml:"scopes,omitempty"`
}

// ScopeEntry describes one declared scope.
type ScopeEntry struct {
	Name string `yaml:"name"`

	// Declarations holds the 1-indexed line numbers of every
	// declaration naming this scope.
	Declarations []int `yaml:"declarations"`

	// ContentLines counts the non-blank content lines governed by this
	// scope's declarations.
	ContentLines int `yaml:"content_lines"`
}

// Names returns the declared scope names in report order.
func (r *Report) Names() []string {
	names := make([]string, len(r.Scopes))
	for i, s := range r.Scopes {
		names[i] = s.Name
	}
	return names
}

// Scan walks src and builds its scope report. The same declaration
// recognition as quill.ExtractScope applies, so an invalid scope token
// aborts with the same *quill.Error the extraction would return.
func Scan(src string) (*Report, error) {
	report := &Report{}
	entries := map[string]*ScopeEntry{}
	var order []string

	active := []string{quill.GlobalName}

	for i, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")

		scopes, ok, err := quill.ScanDeclaration(line, i+1)
		if err != nil {
			return nil, err
		}
		if ok {
			for _, name := range scopes {
				if name == quill.GlobalName {
					continue
				}
				entry := entries[name]
				if entry == nil {
					entry = &ScopeEntry{Name: name}
					entries[name] = entry
					order = append(order, name)
				}
				// A name repeated on one line records the line once.
				if n := len(entry.Declarations); n == 0 || entry.Declarations[n-1] != i+1 {
					entry.Declarations = append(entry.Declarations, i+1)
				}
			}
			// A declaration may repeat a name; keep one occurrence so
			// the governed lines below count once per scope.
			active = make([]string, 0, len(scopes))
			for _, name := range scopes {
				if !slices.Contains(active, name) {
					active = append(active, name)
				}
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		for _, name := range active {
			if name == quill.GlobalName {
				report.GlobalLines++
			} else {
				entries[name].ContentLines++
			}
		}
	}

	for _, name := range order {
		report.Scopes = append(report.Scopes, *entries[name])
	}
	return report, nil
}
