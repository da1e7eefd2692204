package scaffold

// Struct field order is the serialization order; these types are the single
// source of truth for the shape of the generated JSON documents.

// PackageManifest is the generated package descriptor.
type PackageManifest struct {
	Name            string            `json:"name" yaml:"name"`
	Version         string            `json:"version" yaml:"version"`
	Description     string            `json:"description" yaml:"description"`
	Author          string            `json:"author,omitempty" yaml:"author"`
	Homepage        string            `json:"homepage" yaml:"homepage"`
	License         string            `json:"license" yaml:"license"`
	PublishConfig   PublishConfig     `json:"publishConfig" yaml:"publishConfig"`
	Main            string            `json:"main" yaml:"main"`
	Typings         string            `json:"typings" yaml:"typings"`
	Source          string            `json:"source" yaml:"source"`
	Directories     Directories       `json:"directories" yaml:"directories"`
	Files           []string          `json:"files" yaml:"files"`
	Scripts         Scripts           `json:"scripts" yaml:"scripts"`
	Bugs            Bugs              `json:"bugs" yaml:"bugs"`
	Keywords        []string          `json:"keywords" yaml:"keywords"`
	Repository      Repository        `json:"repository" yaml:"repository"`
	DevDependencies map[string]string `json:"devDependencies,omitempty" yaml:"devDependencies"`
}

// PublishConfig marks the package for public registry access.
type PublishConfig struct {
	Access string `json:"access" yaml:"access"`
}

// Directories declares the output and test directory names.
type Directories struct {
	Lib  string `json:"lib" yaml:"lib"`
	Test string `json:"test" yaml:"test"`
}

// Scripts is the fixed build/test script table stamped into new packages.
type Scripts struct {
	Tsc   string `json:"tsc" yaml:"tsc"`
	Test  string `json:"test" yaml:"test"`
	Mocha string `json:"mocha" yaml:"mocha"`
}

// Bugs points at the workspace issue tracker.
type Bugs struct {
	URL string `json:"url" yaml:"url"`
}

// Repository locates the package inside the monorepo.
type Repository struct {
	Type      string `json:"type" yaml:"type"`
	URL       string `json:"url" yaml:"url"`
	Directory string `json:"directory" yaml:"directory"`
}

// BuildConfig is the generated compiler configuration. It extends the
// shared base config and only overrides output locations and includes.
type BuildConfig struct {
	Extends         string          `json:"extends" yaml:"extends"`
	CompilerOptions CompilerOptions `json:"compilerOptions" yaml:"compilerOptions"`
	Include         []string        `json:"include" yaml:"include"`
}

// CompilerOptions overrides the output and typings directories.
type CompilerOptions struct {
	OutDir         string `json:"outDir" yaml:"outDir"`
	DeclarationDir string `json:"declarationDir" yaml:"declarationDir"`
}

// LockfileStub is a minimal placeholder dependency lock, not a resolved
// dependency graph.
type LockfileStub struct {
	Name            string `json:"name" yaml:"name"`
	Version         string `json:"version" yaml:"version"`
	LockfileVersion int    `json:"lockfileVersion" yaml:"lockfileVersion"`
}
