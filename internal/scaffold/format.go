package scaffold

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

// Parser hints tell the formatter what kind of text it is normalizing.
type Parser string

const (
	// ParserTypeScript marks generated source stubs.
	ParserTypeScript Parser = "typescript"

	// ParserMarkdown marks generated markup (the readme).
	ParserMarkdown Parser = "markdown"

	// ParserText marks plain text (license, ignore file).
	ParserText Parser = "text"
)

// Style is the resolved code-style configuration applied to every
// generated document.
type Style struct {
	// Indent is the indentation unit for structured documents.
	Indent string

	// LineEnding terminates every line, "\n" unless configured otherwise.
	LineEnding string
}

// DefaultStyle is two-space indentation with LF line endings.
func DefaultStyle() Style {
	return Style{Indent: "  ", LineEnding: "\n"}
}

// styleFileName is the optional style config at the workspace root.
const styleFileName = ".prettierrc"

// prettierConfig is the subset of the style config the formatter honors.
type prettierConfig struct {
	UseTabs   bool   `json:"useTabs"`
	TabWidth  int    `json:"tabWidth"`
	EndOfLine string `json:"endOfLine"`
}

// ResolveStyle reads the style config from the workspace root. A missing or
// unreadable config resolves to the default style; generation never fails
// over formatting preferences.
func ResolveStyle(dir string) Style {
	style := DefaultStyle()

	data, err := os.ReadFile(filepath.Join(dir, styleFileName))
	if err != nil {
		return style
	}

	var cfg prettierConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return style
	}

	if cfg.UseTabs {
		style.Indent = "\t"
	} else if cfg.TabWidth > 0 {
		style.Indent = strings.Repeat(" ", cfg.TabWidth)
	}
	if cfg.EndOfLine == "crlf" {
		style.LineEnding = "\r\n"
	}

	return style
}

// Formatter applies a code-style formatter to generated text before it is
// written. Injected so tests can substitute a recording fake.
type Formatter interface {
	Format(text string, parser Parser) (string, error)
}

// StyleFormatter normalizes generated text against a resolved style:
// line endings are unified, trailing whitespace is stripped, and the
// document ends with exactly one newline.
type StyleFormatter struct {
	style Style
}

// NewFormatter creates a formatter for the given style.
func NewFormatter(style Style) *StyleFormatter {
	return &StyleFormatter{style: style}
}

// Format implements Formatter. The parser hint is accepted for interface
// compatibility; normalization is currently uniform across content types.
func (f *StyleFormatter) Format(text string, _ Parser) (string, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	out := strings.Join(lines, "\n")
	out = strings.TrimRight(out, "\n") + "\n"

	if f.style.LineEnding != "\n" {
		out = strings.ReplaceAll(out, "\n", f.style.LineEnding)
	}
	return out, nil
}

// marshalDocument serializes a structured document with stable key ordering
// (struct field order), style-config indentation, and a single trailing
// newline.
func marshalDocument(v any, style Style) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", style.Indent)
	if err != nil {
		return nil, err
	}

	out := string(data) + "\n"
	if style.LineEnding != "\n" {
		out = strings.ReplaceAll(out, "\n", style.LineEnding)
	}
	return []byte(out), nil
}
