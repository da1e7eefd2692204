package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"
)

//go:embed templates
var templateFS embed.FS

// stubData is the rendering context for the embedded stub templates.
type stubData struct {
	PackageName string
	Author      string
	LicenseID   string
	CodeName    string
}

// renderTemplate renders one embedded template file by path.
func renderTemplate(path string, data stubData) (string, error) {
	content, err := templateFS.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}

	tmpl, err := template.New(path).Parse(string(content))
	if err != nil {
		return "", fmt.Errorf("parsing template %s: %w", path, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template %s: %w", path, err)
	}

	return buf.String(), nil
}
