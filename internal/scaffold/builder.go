package scaffold

import (
	"fmt"
)

// Relative paths of the generated documents.
const (
	PathManifest    = "package.json"
	PathBuildConfig = "tsconfig.json"
	PathLockfile    = "npm-shrinkwrap.json"
	PathLicense     = "LICENSE"
	PathReadme      = "README.md"
	PathIgnore      = ".npmignore"
	PathEntryStub   = "index.ts"
	PathSourceStub  = "src/index.ts"
	PathTestStub    = "tests/index.test.ts"
)

// baseConfigPath is the fixed relative path every generated build config
// extends.
const baseConfigPath = "../../tsconfig-base.json"

// lockfileVersion is the schema version stamped into the lockfile stub.
const lockfileVersion = 1

// baseKeywords is the fixed keyword list; the builder prepends the product
// keyword and the derived "<product>-<name>" keyword.
var baseKeywords = []string{
	"ethereum",
	"evm",
	"blockchain",
	"smart-contracts",
	"dapps",
	"solidity",
	"web3",
}

// devDependencyKeys is the fixed set of root-manifest devDependencies copied
// verbatim into new packages. Keys absent from the root manifest stay absent.
var devDependencyKeys = []string{
	"cross-env",
	"mocha",
	"nyc",
	"ts-node",
	"typescript",
}

// ignoreRules is the fixed publish-exclusion list.
const ignoreRules = `./index.ts
tests
.nyc_output
coverage
scripts
tsconfig.json
typedoc.json
src
`

// Builder derives the complete generated document set from a context.
type Builder struct {
	ctx       *Context
	formatter Formatter
	style     Style
}

// NewBuilder creates a builder. A nil formatter gets the default style
// formatter.
func NewBuilder(ctx *Context, formatter Formatter, style Style) *Builder {
	if formatter == nil {
		formatter = NewFormatter(style)
	}
	return &Builder{ctx: ctx, formatter: formatter, style: style}
}

// Build produces every generated document. It is a pure function of the
// context: the same context always yields byte-identical documents.
func (b *Builder) Build() ([]Document, error) {
	stub := stubData{
		PackageName: b.ctx.PackageName,
		Author:      b.ctx.Author,
		LicenseID:   b.ctx.LicenseID,
		CodeName:    CodeIdentifier(b.ctx.RawName),
	}

	moduleBody, err := renderTemplate("templates/module.ts.tmpl", stub)
	if err != nil {
		return nil, err
	}
	header, err := renderTemplate("templates/header.ts.tmpl", stub)
	if err != nil {
		return nil, err
	}
	testBody, err := renderTemplate("templates/index.test.ts.tmpl", stub)
	if err != nil {
		return nil, err
	}
	readme, err := renderTemplate("templates/README.md.tmpl", stub)
	if err != nil {
		return nil, err
	}

	docs := make([]Document, 0, 9)

	jsonDocs := []struct {
		path, desc string
		value      any
	}{
		{PathManifest, "Package manifest", b.Manifest()},
		{PathBuildConfig, "Build configuration", b.buildConfig()},
		{PathLockfile, "Lockfile stub", b.lockfileStub()},
	}
	for _, d := range jsonDocs {
		raw, err := marshalDocument(d.value, b.style)
		if err != nil {
			return nil, fmt.Errorf("serializing %s: %w", d.path, err)
		}
		docs = append(docs, Document{
			Path:        d.path,
			Kind:        KindJSON,
			Raw:         raw,
			Value:       d.value,
			Description: d.desc,
		})
	}

	textDocs := []struct {
		path, desc, content string
		parser              Parser
	}{
		{PathLicense, "Workspace license", b.ctx.LicenseText, ParserText},
		{PathReadme, "Readme", readme, ParserMarkdown},
		{PathIgnore, "Publish ignore rules", ignoreRules, ParserText},
		// The entry stub and the source stub are the same module template;
		// only the entry carries the attribution header, so bundlers that
		// honor /*! comments preserve it.
		{PathEntryStub, "Package entry stub", header + "\n" + moduleBody, ParserTypeScript},
		{PathSourceStub, "Source stub", moduleBody, ParserTypeScript},
		{PathTestStub, "Test stub", testBody, ParserTypeScript},
	}
	for _, d := range textDocs {
		formatted, err := b.formatter.Format(d.content, d.parser)
		if err != nil {
			return nil, fmt.Errorf("formatting %s: %w", d.path, err)
		}
		docs = append(docs, Document{
			Path:        d.path,
			Kind:        KindText,
			Raw:         []byte(formatted),
			Description: d.desc,
		})
	}

	return docs, nil
}

// Manifest derives the package manifest from the context. Exposed so the
// reporting layer can preview it before emission.
func (b *Builder) Manifest() *PackageManifest {
	ctx := b.ctx

	keywords := make([]string, 0, len(baseKeywords)+2)
	keywords = append(keywords, ctx.Product, fmt.Sprintf("%s-%s", ctx.Product, ctx.RawName))
	keywords = append(keywords, baseKeywords...)

	var devDeps map[string]string
	for _, key := range devDependencyKeys {
		if version, ok := ctx.RootDevDependencies[key]; ok {
			if devDeps == nil {
				devDeps = make(map[string]string, len(devDependencyKeys))
			}
			devDeps[key] = version
		}
	}

	return &PackageManifest{
		Name:        ctx.PackageName,
		Version:     ctx.Version,
		Description: "",
		Author:      ctx.Author,
		Homepage: fmt.Sprintf("%s/tree/%s/%s/%s#readme",
			ctx.RepoURL, ctx.DefaultBranch, ctx.PackagesDir, ctx.FolderName),
		License:       ctx.LicenseID,
		PublishConfig: PublishConfig{Access: "public"},
		Main:          "lib/index.js",
		Typings:       "typings",
		Source:        "index.ts",
		Directories:   Directories{Lib: "lib", Test: "tests"},
		Files:         []string{"lib", "typings"},
		Scripts: Scripts{
			Tsc:  "tsc --build",
			Test: "nyc --reporter lcov npm run mocha",
			Mocha: "cross-env TS_NODE_COMPILER_OPTIONS='{\"module\":\"commonjs\"}' " +
				"mocha --exit --check-leaks --require ts-node/register 'tests/**/*.test.ts'",
		},
		Bugs:     Bugs{URL: ctx.RepoURL + "/issues"},
		Keywords: keywords,
		Repository: Repository{
			Type:      "git",
			URL:       "git+" + ctx.RepoURL + ".git",
			Directory: ctx.PackagesDir + "/" + ctx.FolderName,
		},
		DevDependencies: devDeps,
	}
}

func (b *Builder) buildConfig() *BuildConfig {
	return &BuildConfig{
		Extends: baseConfigPath,
		CompilerOptions: CompilerOptions{
			OutDir:         "lib",
			DeclarationDir: "typings",
		},
		Include: []string{"src", "index.ts"},
	}
}

func (b *Builder) lockfileStub() *LockfileStub {
	return &LockfileStub{
		Name:            b.ctx.PackageName,
		Version:         b.ctx.Version,
		LockfileVersion: lockfileVersion,
	}
}
