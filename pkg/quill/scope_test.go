// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeName(t *testing.T) {
	assert.Equal(t, "global", Global().Name())
	assert.Equal(t, "global", Scope{}.Name(), "zero value is the global scope")
	assert.Equal(t, "dev", Defined("dev").Name())
	assert.Equal(t, "", Defined("").Name(), "empty defined name does not collapse to global")
}

func TestIsValidScopeName(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		want  bool
	}{
		{name: "letters", scope: "dev", want: true},
		{name: "mixed case", scope: "DevTest", want: true},
		{name: "digits", scope: "env2", want: true},
		{name: "underscore and dash", scope: "my_scope-1", want: true},
		{name: "single dash", scope: "-", want: true},
		{name: "empty", scope: "", want: false},
		{name: "space", scope: "my scope", want: false},
		{name: "punctuation", scope: "dev!", want: false},
		{name: "dot", scope: "a.b", want: false},
		{name: "at sign", scope: "@dev", want: false},
		{name: "non-ascii letter", scope: "café", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidScopeName(tt.scope))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	nameErr := &Error{Kind: InvalidScopeName, Scope: "bad scope", Line: 3, Column: 5}
	assert.Equal(t,
		`invalid scope name "bad scope" at line 3, column 5: scope names may only contain ASCII letters, ASCII digits, underscores, and dashes`,
		nameErr.Error())

	argErr := &Error{Kind: InvalidScopeArgument, Scope: "no/good"}
	assert.Equal(t,
		`invalid scope name "no/good": scope names may only contain ASCII letters, ASCII digits, underscores, and dashes`,
		argErr.Error())
}
