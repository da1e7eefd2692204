package scaffold

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trufflesuite/chisel/internal/config"
	oerrors "github.com/trufflesuite/chisel/internal/errors"
	"github.com/trufflesuite/chisel/internal/workspace"
)

func testWorkspace() *workspace.Workspace {
	return &workspace.Workspace{
		Root: "/repo",
		Manifest: workspace.RootManifest{
			Name:   "ganache",
			Author: workspace.Author{Name: "Truffle Suite"},
			DevDependencies: map[string]string{
				"mocha":      "8.0.1",
				"nyc":        "15.1.0",
				"typescript": "4.1.3",
				"ts-node":    "9.1.1",
				"cross-env":  "7.0.3",
				"lerna":      "3.22.1",
			},
		},
		LicenseText: "MIT License\n",
	}
}

func fixedIdentity(name string) workspace.IdentityFunc {
	return func() (string, bool) { return name, name != "" }
}

func TestNewContext(t *testing.T) {
	ctx, err := NewContext(Request{RawName: "widgets"}, testWorkspace(), config.DefaultConfig(), fixedIdentity("alice"))
	require.NoError(t, err)

	assert.Equal(t, "@ganache/widgets", ctx.PackageName)
	assert.Equal(t, "widgets", ctx.FolderName)
	assert.Equal(t, "0.1.0", ctx.Version)
	assert.Equal(t, "alice", ctx.Author)
	assert.Equal(t, "MIT License\n", ctx.LicenseText)
	assert.Equal(t, filepath.Join("/repo", "packages", "widgets"), ctx.TargetDir)
}

func TestNewContext_FolderOverride(t *testing.T) {
	req := Request{RawName: "widgets", FolderOverride: "widgets-pkg"}
	ctx, err := NewContext(req, testWorkspace(), config.DefaultConfig(), fixedIdentity("alice"))
	require.NoError(t, err)

	// The override changes the directory, never the package name.
	assert.Equal(t, "@ganache/widgets", ctx.PackageName)
	assert.Equal(t, "widgets-pkg", ctx.FolderName)
	assert.Equal(t, filepath.Join("/repo", "packages", "widgets-pkg"), ctx.TargetDir)
}

func TestNewContext_InvalidName(t *testing.T) {
	_, err := NewContext(Request{RawName: "Invalid Name!"}, testWorkspace(), config.DefaultConfig(), fixedIdentity("alice"))
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrValidation)

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.NotEmpty(t, detail.Violations)
}

func TestNewContext_InvalidFolder(t *testing.T) {
	req := Request{RawName: "widgets", FolderOverride: "a/b"}
	_, err := NewContext(req, testWorkspace(), config.DefaultConfig(), fixedIdentity("alice"))
	assert.ErrorIs(t, err, oerrors.ErrValidation)
}

func TestNewContext_AuthorFallback(t *testing.T) {
	ctx, err := NewContext(Request{RawName: "widgets"}, testWorkspace(), config.DefaultConfig(), fixedIdentity(""))
	require.NoError(t, err)

	assert.Equal(t, "Truffle Suite", ctx.Author)
}
