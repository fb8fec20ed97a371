// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quill

import "fmt"

// ErrorKind discriminates the two failure modes of an extraction.
type ErrorKind int

const (
	// InvalidScopeName marks a bad scope token inside a declaration
	// line of the source text.
	InvalidScopeName ErrorKind = iota + 1
	// InvalidScopeArgument marks a bad target scope supplied by the
	// caller; it is detected before the source is scanned.
	InvalidScopeArgument
)

// Error is the typed error returned by ExtractScope. Line and Column
// are 1-indexed and set only for InvalidScopeName, where Column points
// at the first @ on the offending raw line.
type Error struct {
	Kind   ErrorKind
	Scope  string
	Line   int
	Column int
}

const legalCharacters = "scope names may only contain ASCII letters, ASCII digits, underscores, and dashes"

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidScopeName:
		return fmt.Sprintf("invalid scope name %q at line %d, column %d: %s", e.Scope, e.Line, e.Column, legalCharacters)
	default:
		return fmt.Sprintf("invalid scope name %q: %s", e.Scope, legalCharacters)
	}
}
