// Package workspace locates the monorepo root and loads the ambient files
// package generation depends on: the root manifest and the LICENSE text.
package workspace

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trufflesuite/chisel/internal/errors"
)

const (
	// RootManifestName is the manifest file looked for at the workspace root.
	RootManifestName = "package.json"

	// LicenseFileName is the license file copied verbatim into new packages.
	LicenseFileName = "LICENSE"
)

// Workspace is the resolved monorepo context. It is loaded once at startup
// and passed explicitly through the pipeline; nothing re-reads these files
// mid-generation.
type Workspace struct {
	// Root is the absolute path of the workspace root.
	Root string

	// Manifest is the parsed root manifest.
	Manifest RootManifest

	// LicenseText is the verbatim contents of the root LICENSE file.
	LicenseText string
}

// Find walks up from startDir looking for a directory that contains both a
// root manifest and a LICENSE file. Returns a precondition error when no
// such directory exists.
func Find(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving start directory: %w", err)
	}

	for {
		manifest := filepath.Join(dir, RootManifestName)
		license := filepath.Join(dir, LicenseFileName)
		if fileExists(manifest) && fileExists(license) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.NewPreconditionError(
				fmt.Sprintf("no workspace root found above %s", startDir),
				startDir,
				fmt.Sprintf("A workspace root contains %s and a %s file.", RootManifestName, LicenseFileName),
			)
		}
		dir = parent
	}
}

// Load reads the root manifest and license text for a workspace root.
// Either file missing is a fatal precondition; no mutation has happened yet.
func Load(root string) (*Workspace, error) {
	manifestPath := filepath.Join(root, RootManifestName)
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, errors.NewPreconditionError(
			"workspace root manifest is missing or unreadable",
			manifestPath,
			"New-package defaults (author, tool versions) are inherited from the root manifest.",
		)
	}

	var manifest RootManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.NewPreconditionError(
			fmt.Sprintf("workspace root manifest is not valid JSON: %v", err),
			manifestPath,
			"",
		)
	}

	licensePath := filepath.Join(root, LicenseFileName)
	license, err := os.ReadFile(licensePath)
	if err != nil {
		return nil, errors.NewPreconditionError(
			"workspace LICENSE file is missing or unreadable",
			licensePath,
			"The LICENSE file is copied verbatim into every new package.",
		)
	}

	return &Workspace{
		Root:        root,
		Manifest:    manifest,
		LicenseText: string(license),
	}, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
