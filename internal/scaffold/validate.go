package scaffold

import (
	"strings"
	"unicode"
)

// maxNameLength is the registry's limit on package name length.
const maxNameLength = 214

// blacklistedNames can never be used as package names.
var blacklistedNames = map[string]bool{
	"node_modules": true,
	"favicon.ico":  true,
}

// coreModuleNames shadow runtime built-ins and are rejected for new packages.
var coreModuleNames = map[string]bool{
	"assert": true, "buffer": true, "child_process": true, "cluster": true,
	"console": true, "constants": true, "crypto": true, "dgram": true,
	"dns": true, "domain": true, "events": true, "fs": true, "http": true,
	"https": true, "module": true, "net": true, "os": true, "path": true,
	"process": true, "punycode": true, "querystring": true, "readline": true,
	"repl": true, "stream": true, "string_decoder": true, "timers": true,
	"tls": true, "tty": true, "url": true, "util": true, "v8": true,
	"vm": true, "zlib": true,
}

// specialCharacters are explicitly disallowed even though some are URL-safe.
const specialCharacters = "~'!()*"

// ValidateName checks a proposed package name against registry naming rules.
// It returns every violation found, not just the first, so the operator sees
// the complete set of problems in one report. A nil result means the name is
// valid for new packages. Pure function; no side effects.
func ValidateName(name string) []string {
	var violations []string

	if len(name) == 0 {
		return []string{"name length must be greater than zero"}
	}

	if strings.TrimSpace(name) != name {
		violations = append(violations, "name cannot contain leading or trailing spaces")
	}
	if strings.HasPrefix(name, ".") {
		violations = append(violations, "name cannot start with a period")
	}
	if strings.HasPrefix(name, "_") {
		violations = append(violations, "name cannot start with an underscore")
	}
	if blacklistedNames[strings.ToLower(name)] {
		violations = append(violations, name+" is a blacklisted name")
	}
	if coreModuleNames[strings.ToLower(name)] {
		violations = append(violations, name+" is a core module name")
	}
	if len(name) > maxNameLength {
		violations = append(violations, "name can no longer contain more than 214 characters")
	}
	if strings.ToLower(name) != name {
		violations = append(violations, "name can no longer contain capital letters")
	}
	if strings.ContainsAny(name, specialCharacters) {
		violations = append(violations, `name can no longer contain special characters ("~'!()*")`)
	}
	if !isURLFriendly(name) {
		violations = append(violations, "name can only contain URL-friendly characters")
	}

	return violations
}

// ValidateFolder checks a folder override. The folder names a single
// directory under the packages area, so path separators are rejected.
func ValidateFolder(folder string) []string {
	var violations []string

	if len(folder) == 0 {
		return []string{"folder length must be greater than zero"}
	}
	if strings.ContainsAny(folder, `/\`) {
		violations = append(violations, "folder cannot contain path separators")
	}
	if folder == "." || folder == ".." {
		violations = append(violations, "folder cannot be a relative path segment")
	}

	return violations
}

// isURLFriendly reports whether every rune of name survives URL encoding
// unchanged (unreserved characters only).
func isURLFriendly(name string) bool {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', unicode.IsDigit(r):
		case r == '-' || r == '.' || r == '_' || r == '~':
		default:
			return false
		}
	}
	return true
}
