package scaffold

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName_Valid(t *testing.T) {
	for _, name := range []string{
		"widgets",
		"my-package",
		"pkg.utils",
		"some_thing",
		"abc123",
	} {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, ValidateName(name))
		})
	}
}

func TestValidateName_Invalid(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"", "greater than zero"},
		{".widgets", "cannot start with a period"},
		{"_widgets", "cannot start with an underscore"},
		{" widgets", "leading or trailing spaces"},
		{"widgets ", "leading or trailing spaces"},
		{"node_modules", "blacklisted"},
		{"http", "core module"},
		{"Widgets", "capital letters"},
		{"what!", `special characters`},
		{"bad name", "URL-friendly"},
		{strings.Repeat("a", 215), "more than 214 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			violations := ValidateName(tt.name)
			assert.NotEmpty(t, violations)

			found := false
			for _, v := range violations {
				if strings.Contains(v, tt.want) {
					found = true
				}
			}
			assert.True(t, found, "expected a violation containing %q, got %v", tt.want, violations)
		})
	}
}

func TestValidateName_ReportsEveryViolation(t *testing.T) {
	// One name, three broken rules: capitals, spaces (URL-unsafe, plus
	// leading space), special characters.
	violations := ValidateName(" Invalid Name!")

	assert.GreaterOrEqual(t, len(violations), 3)
}

func TestValidateFolder(t *testing.T) {
	assert.Empty(t, ValidateFolder("widgets-pkg"))
	assert.NotEmpty(t, ValidateFolder(""))
	assert.NotEmpty(t, ValidateFolder("a/b"))
	assert.NotEmpty(t, ValidateFolder(`a\b`))
	assert.NotEmpty(t, ValidateFolder(".."))
}
