// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quill

import (
	"slices"
	"strings"
	"unicode"
)

// ExtractScope returns src with only the lines belonging to target (or
// to the global scope) retained. Declaration lines and lines belonging
// to other scopes become empty lines, so the result has exactly as many
// lines as src and keeps or omits a trailing newline exactly as src
// does.
//
// The target is validated before scanning; GlobalName is always legal.
// The first invalid scope name, whether in the target or in a
// declaration line, aborts the extraction with a *Error and no partial
// result.
//
// Extraction is idempotent: the output contains no @ tokens, so a
// second pass over it for the same target returns it unchanged.
func ExtractScope(src string, target Scope) (string, error) {
	name := target.Name()
	if name != GlobalName && !IsValidScopeName(name) {
		return "", &Error{Kind: InvalidScopeArgument, Scope: name}
	}

	hadNewline := strings.HasSuffix(src, "\n")
	lines := strings.Split(src, "\n")
	if hadNewline {
		lines = lines[:len(lines)-1]
	}

	var out strings.Builder
	out.Grow(len(src))

	// Everything before the first declaration is global content.
	include := true

	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")

		scopes, ok, err := ScanDeclaration(line, i+1)
		if err != nil {
			return "", err
		}
		if ok {
			include = slices.Contains(scopes, name) ||
				slices.Contains(scopes, GlobalName) ||
				name == GlobalName
			out.WriteByte('\n')
			continue
		}

		if include {
			out.WriteString(line)
		}
		out.WriteByte('\n')
	}

	result := out.String()
	if !hadNewline {
		result = strings.TrimSuffix(result, "\n")
	}
	return result, nil
}

// ScanDeclaration parses one raw source line as a scope declaration.
// lineNo is the 1-indexed line number used for error reporting.
//
// ok is false when the line is not a declaration: either its first
// non-whitespace character is not @, or it carries no well-formed @name
// token (a bare @ does not declare anything). Tokens on a declaration
// line that do not start with @ are trailing commentary and are
// discarded. A token whose name fails the character-set rule aborts
// with an *Error carrying lineNo and the 1-indexed column of the first
// @ on the line.
func ScanDeclaration(line string, lineNo int) (scopes []string, ok bool, err error) {
	trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, "@") {
		return nil, false, nil
	}

	for _, token := range strings.Fields(trimmed) {
		name, isScope := strings.CutPrefix(token, "@")
		if !isScope || name == "" {
			continue
		}
		if !IsValidScopeName(name) {
			return nil, false, &Error{
				Kind:   InvalidScopeName,
				Scope:  name,
				Line:   lineNo,
				Column: strings.Index(line, "@") + 1,
			}
		}
		scopes = append(scopes, name)
	}

	if len(scopes) == 0 {
		return nil, false, nil
	}
	return scopes, true, nil
}
