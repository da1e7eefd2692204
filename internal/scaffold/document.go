// Package scaffold implements the package-generation pipeline: name
// validation, template construction, and concurrent file emission.
package scaffold

// Kind classifies a generated document's content.
type Kind string

const (
	// KindText marks free-form textual documents (source stubs, readme,
	// license, ignore file). Text documents pass through the formatter.
	KindText Kind = "text"

	// KindJSON marks structured documents (manifest, build config,
	// lockfile stub). JSON documents serialize with stable key order.
	KindJSON Kind = "json"
)

// Document is one generated file, fully rendered and ready to write.
type Document struct {
	// Path is the file path relative to the target directory, using
	// forward slashes. Paths are unique within one generation.
	Path string

	// Kind is the content classification.
	Kind Kind

	// Raw is the final byte content written to disk.
	Raw []byte

	// Value retains the structured object a KindJSON document was
	// serialized from, for previews and round-trip checks. Nil for text.
	Value any

	// Description is a short human label shown in the success report.
	Description string
}
