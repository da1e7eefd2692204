package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/trufflesuite/chisel/internal/config"
	"github.com/trufflesuite/chisel/internal/errors"
	"github.com/trufflesuite/chisel/internal/workspace"
)

// Request is the parsed CLI input: the proposed package name and an
// optional directory-name override. Immutable once parsed.
type Request struct {
	RawName        string
	FolderOverride string
}

// Context carries every derived value the templates need. It is built once
// from the request plus ambient workspace state and never mutated; all
// generated documents are a pure function of it.
type Context struct {
	// PackageName is the scoped registry name, "@<scope>/<rawName>".
	PackageName string

	// RawName is the validated unscoped name.
	RawName string

	// FolderName is the on-disk directory name: the folder override when
	// provided, the raw name otherwise. It never affects PackageName.
	FolderName string

	// Version is the fixed initial semantic version.
	Version string

	// Author is the detected operator identity, falling back to the
	// workspace root manifest's author.
	Author string

	// LicenseID is the SPDX identifier stamped into the manifest.
	LicenseID string

	// LicenseText is the verbatim workspace LICENSE contents.
	LicenseText string

	// WorkspaceRoot is the absolute workspace root path.
	WorkspaceRoot string

	// PackagesDir is the workspace-relative packages area.
	PackagesDir string

	// TargetDir is the absolute directory the new package is written to.
	TargetDir string

	// RepoURL and DefaultBranch parameterize the derived homepage,
	// repository, and bugs URLs.
	RepoURL       string
	DefaultBranch string

	// Product is the keyword prefix for the derived "<product>-<name>"
	// keyword; it equals the scope.
	Product string

	// RootDevDependencies is the root manifest's devDependency table. The
	// builder copies a fixed subset of keys verbatim; absent keys stay absent.
	RootDevDependencies map[string]string
}

// NewContext validates the request and derives the generation context.
// Validation failures report every violation found; no filesystem state is
// touched beyond what the workspace already loaded.
func NewContext(req Request, ws *workspace.Workspace, cfg *config.Config, identity workspace.IdentityFunc) (*Context, error) {
	if violations := ValidateName(req.RawName); len(violations) > 0 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("invalid package name %q", req.RawName), violations)
	}

	folder := req.FolderOverride
	if folder == "" {
		folder = req.RawName
	} else if violations := ValidateFolder(folder); len(violations) > 0 {
		return nil, errors.NewValidationError(
			fmt.Sprintf("invalid folder %q", folder), violations)
	}

	if identity == nil {
		identity = workspace.OperatorName
	}
	author, ok := identity()
	if !ok || author == "" {
		author = ws.Manifest.Author.Name
	}

	return &Context{
		PackageName:         fmt.Sprintf("@%s/%s", cfg.Scope, req.RawName),
		RawName:             req.RawName,
		FolderName:          folder,
		Version:             cfg.InitialVersion,
		Author:              author,
		LicenseID:           cfg.License,
		LicenseText:         ws.LicenseText,
		WorkspaceRoot:       ws.Root,
		PackagesDir:         cfg.PackagesDir,
		TargetDir:           filepath.Join(ws.Root, cfg.PackagesDir, folder),
		RepoURL:             cfg.RepoURL,
		DefaultBranch:       cfg.DefaultBranch,
		Product:             cfg.Scope,
		RootDevDependencies: ws.Manifest.DevDependencies,
	}, nil
}
