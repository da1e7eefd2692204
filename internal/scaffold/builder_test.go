package scaffold

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trufflesuite/chisel/internal/config"
)

func buildContext(t *testing.T, req Request) *Context {
	t.Helper()
	ctx, err := NewContext(req, testWorkspace(), config.DefaultConfig(), fixedIdentity("alice"))
	require.NoError(t, err)
	return ctx
}

func buildDocs(t *testing.T, req Request) []Document {
	t.Helper()
	docs, err := NewBuilder(buildContext(t, req), nil, DefaultStyle()).Build()
	require.NoError(t, err)
	return docs
}

func docByPath(t *testing.T, docs []Document, path string) Document {
	t.Helper()
	for _, d := range docs {
		if d.Path == path {
			return d
		}
	}
	t.Fatalf("no document at %s", path)
	return Document{}
}

func TestBuild_DocumentSet(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})

	want := []string{
		PathManifest, PathBuildConfig, PathLockfile, PathLicense,
		PathReadme, PathIgnore, PathEntryStub, PathSourceStub, PathTestStub,
	}
	var got []string
	for _, d := range docs {
		got = append(got, d.Path)
	}
	assert.ElementsMatch(t, want, got)
}

func TestBuild_Deterministic(t *testing.T) {
	ctx := buildContext(t, Request{RawName: "widgets"})

	first, err := NewBuilder(ctx, nil, DefaultStyle()).Build()
	require.NoError(t, err)
	second, err := NewBuilder(ctx, nil, DefaultStyle()).Build()
	require.NoError(t, err)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, first[i].Path, second[i].Path)
		assert.Equal(t, first[i].Raw, second[i].Raw, "document %s differs between builds", first[i].Path)
	}
}

func TestBuild_Manifest(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})
	manifest := docByPath(t, docs, PathManifest).Value.(*PackageManifest)

	assert.Equal(t, "@ganache/widgets", manifest.Name)
	assert.Equal(t, "0.1.0", manifest.Version)
	assert.Equal(t, "alice", manifest.Author)
	assert.Equal(t, "MIT", manifest.License)
	assert.Equal(t, "public", manifest.PublishConfig.Access)
	assert.Equal(t, "https://github.com/trufflesuite/ganache/tree/develop/packages/widgets#readme", manifest.Homepage)
	assert.Equal(t, "https://github.com/trufflesuite/ganache/issues", manifest.Bugs.URL)
	assert.Equal(t, "packages/widgets", manifest.Repository.Directory)
	assert.Contains(t, manifest.Keywords, "ganache")
	assert.Contains(t, manifest.Keywords, "ganache-widgets")
	assert.Equal(t, []string{"lib", "typings"}, manifest.Files)
}

func TestBuild_ManifestNameIgnoresFolderOverride(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets", FolderOverride: "widgets-pkg"})
	manifest := docByPath(t, docs, PathManifest).Value.(*PackageManifest)

	assert.Equal(t, "@ganache/widgets", manifest.Name)
	assert.Equal(t, "packages/widgets-pkg", manifest.Repository.Directory)
	assert.Contains(t, manifest.Homepage, "packages/widgets-pkg")
}

func TestBuild_ManifestRoundTrip(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})
	doc := docByPath(t, docs, PathManifest)

	var parsed PackageManifest
	require.NoError(t, json.Unmarshal(doc.Raw, &parsed))
	assert.Equal(t, doc.Value.(*PackageManifest), &parsed)
}

func TestBuild_DevDependencySubset(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})
	manifest := docByPath(t, docs, PathManifest).Value.(*PackageManifest)

	assert.Equal(t, map[string]string{
		"mocha":      "8.0.1",
		"nyc":        "15.1.0",
		"typescript": "4.1.3",
		"ts-node":    "9.1.1",
		"cross-env":  "7.0.3",
	}, manifest.DevDependencies)

	// Keys outside the fixed subset never leak through.
	assert.NotContains(t, manifest.DevDependencies, "lerna")
}

func TestBuild_DevDependencyMissingKeysStayMissing(t *testing.T) {
	ws := testWorkspace()
	delete(ws.Manifest.DevDependencies, "nyc")

	ctx, err := NewContext(Request{RawName: "widgets"}, ws, config.DefaultConfig(), fixedIdentity("alice"))
	require.NoError(t, err)

	manifest := NewBuilder(ctx, nil, DefaultStyle()).Manifest()
	assert.NotContains(t, manifest.DevDependencies, "nyc")
	assert.Contains(t, manifest.DevDependencies, "mocha")
}

func TestBuild_BuildConfig(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})
	cfg := docByPath(t, docs, PathBuildConfig).Value.(*BuildConfig)

	assert.Equal(t, "../../tsconfig-base.json", cfg.Extends)
	assert.Equal(t, "lib", cfg.CompilerOptions.OutDir)
	assert.Equal(t, "typings", cfg.CompilerOptions.DeclarationDir)
	assert.Equal(t, []string{"src", "index.ts"}, cfg.Include)
}

func TestBuild_LockfileStub(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})
	lock := docByPath(t, docs, PathLockfile).Value.(*LockfileStub)

	assert.Equal(t, "@ganache/widgets", lock.Name)
	assert.Equal(t, "0.1.0", lock.Version)
	assert.Equal(t, 1, lock.LockfileVersion)
}

func TestBuild_SourceStubs(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})

	entry := string(docByPath(t, docs, PathEntryStub).Raw)
	source := string(docByPath(t, docs, PathSourceStub).Raw)

	// Same module body; only the entry carries the attribution header.
	assert.Contains(t, entry, "/*!")
	assert.Contains(t, entry, "@ganache/widgets")
	assert.Contains(t, entry, "@author alice")
	assert.Contains(t, entry, "@license MIT")
	assert.Contains(t, entry, "export default {};")

	assert.Equal(t, "export default {};\n", source)
	assert.NotContains(t, source, "/*!")
}

func TestBuild_TestStub(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "my-widgets"})
	stub := string(docByPath(t, docs, PathTestStub).Raw)

	assert.Contains(t, stub, `import myWidgets from "../src/index";`)
	assert.Contains(t, stub, `describe("@ganache/my-widgets"`)
	assert.Contains(t, stub, `it("needs tests");`)
}

func TestBuild_Readme(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})
	readme := string(docByPath(t, docs, PathReadme).Raw)

	assert.Contains(t, readme, "# `@ganache/widgets`")
	assert.Contains(t, readme, "TODO")
}

func TestBuild_License(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})
	assert.Equal(t, "MIT License\n", string(docByPath(t, docs, PathLicense).Raw))
}

func TestBuild_IgnoreFile(t *testing.T) {
	docs := buildDocs(t, Request{RawName: "widgets"})
	ignore := string(docByPath(t, docs, PathIgnore).Raw)

	for _, entry := range []string{"./index.ts", "tests", "coverage", "scripts", "tsconfig.json", "typedoc.json", "src"} {
		assert.Contains(t, ignore, entry)
	}
}

func TestBuild_TrailingNewlines(t *testing.T) {
	for _, doc := range buildDocs(t, Request{RawName: "widgets"}) {
		raw := string(doc.Raw)
		assert.True(t, len(raw) > 0 && raw[len(raw)-1] == '\n', "%s must end with a newline", doc.Path)
		assert.False(t, len(raw) > 1 && raw[len(raw)-2] == '\n', "%s must end with a single newline", doc.Path)
	}
}
