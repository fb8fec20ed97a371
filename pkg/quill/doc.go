// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package quill extracts named scopes from scope-tagged configuration
// text. It does no parsing of the underlying format: every line that is
// not a scope declaration is an opaque string, so the same mechanism
// works for TOML, ini files, or any other line-oriented text.
//
// A scope declaration is a line whose first non-whitespace character is
// @, carrying one or more @name tokens:
//
//	@dev
//	@dev @test   staging-only overrides
//
// Names may contain ASCII letters, ASCII digits, underscores, and
// dashes. Anything on a declaration line that is not an @name token is
// ignored. Content before the first declaration belongs to the implicit
// "global" scope and is included in every extraction; a declaration
// replaces the active scope set wholesale for the lines that follow,
// until the next declaration.
//
// [ExtractScope] returns the input with every line outside the requested
// scope blanked, never removed, so line numbers in the result match the
// source exactly and downstream parsers can report diagnostics against
// the original file:
//
//	src := `title = "App"
//
//	@dev
//	debug = true
//
//	@prod
//	optimized = true`
//
//	out, err := quill.ExtractScope(src, quill.Defined("dev"))
//	// out holds the title and debug lines; the prod lines are blank,
//	// and out has the same number of lines as src.
package quill
