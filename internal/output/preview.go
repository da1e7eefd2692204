package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format specifies the manifest preview format.
type Format string

const (
	// FormatJSON previews documents as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML previews documents as YAML.
	FormatYAML Format = "yaml"
)

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// IsValid checks if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML:
		return true
	default:
		return false
	}
}

// ParseFormat parses a string into a Format. Returns FormatJSON when the
// string is empty or unrecognized.
func ParseFormat(s string) Format {
	switch strings.ToLower(s) {
	case "yaml", "yml":
		return FormatYAML
	case "json":
		return FormatJSON
	default:
		return FormatJSON
	}
}

// ValidFormats returns a slice of valid preview format strings.
func ValidFormats() []string {
	return []string{"json", "yaml"}
}

// WritePreview writes a structured document to the writer in the given format.
func WritePreview(w io.Writer, value any, format Format) error {
	switch format {
	case FormatYAML:
		data, err := yaml.Marshal(value)
		if err != nil {
			return fmt.Errorf("marshaling preview to yaml: %w", err)
		}
		_, err = w.Write(data)
		return err
	case FormatJSON:
		data, err := json.MarshalIndent(value, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling preview to json: %w", err)
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	default:
		return fmt.Errorf("unknown preview format: %s", format)
	}
}
