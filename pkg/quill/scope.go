// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quill

// GlobalName is the canonical name of the implicit global scope.
const GlobalName = "global"

// Scope identifies a named region of a scope-tagged document. The zero
// value is the global scope.
type Scope struct {
	name    string
	defined bool
}

// Global returns the implicit scope that is active before any
// declaration and included in every extraction.
func Global() Scope {
	return Scope{}
}

// Defined returns a scope with the given user-supplied name. The name
// is not validated here; ExtractScope rejects names outside the legal
// character set. Defined(GlobalName) behaves identically to Global().
func Defined(name string) Scope {
	return Scope{name: name, defined: true}
}

// Name returns the scope's canonical name string.
func (s Scope) Name() string {
	if !s.defined {
		return GlobalName
	}
	return s.name
}

// IsValidScopeName reports whether name is a legal defined-scope name:
// non-empty and composed only of ASCII letters, ASCII digits,
// underscores, and dashes.
func IsValidScopeName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '-':
		default:
			return false
		}
	}
	return true
}
