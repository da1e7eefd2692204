package scaffold

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/trufflesuite/chisel/internal/errors"
	"github.com/trufflesuite/chisel/internal/output"
)

// Emit materializes the target directory and writes every document.
//
// The target directory must not already exist; collision is a fatal
// precondition and nothing is written. After the directory is created,
// documents fan out concurrently: root-level documents write immediately,
// documents under a subdirectory write after that subdirectory exists.
// A single fan-in barrier gates success. The first write failure aborts the
// operation and is surfaced with its cause attached; already-written files
// are not rolled back.
func Emit(ctx context.Context, targetDir string, docs []Document) error {
	rootDocs, dirDocs, err := groupDocuments(docs)
	if err != nil {
		return err
	}

	if _, err := os.Stat(targetDir); err == nil {
		return errors.NewPreconditionError(
			"target directory already exists",
			targetDir,
			"Choose a different name or folder, or remove the existing directory.",
		)
	}

	if err := os.MkdirAll(filepath.Dir(targetDir), 0o755); err != nil {
		return errors.NewPreconditionError(
			fmt.Sprintf("cannot create packages directory: %v", err),
			filepath.Dir(targetDir), "",
		)
	}

	// Mkdir (not MkdirAll) so a directory racing into existence still fails
	// loudly instead of silently merging.
	if err := os.Mkdir(targetDir, 0o755); err != nil {
		return errors.NewPreconditionError(
			fmt.Sprintf("cannot create target directory: %v", err),
			targetDir, "",
		)
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, doc := range rootDocs {
		g.Go(func() error {
			return writeDocument(gctx, targetDir, doc)
		})
	}

	for dir, group := range dirDocs {
		g.Go(func() error {
			subdir := filepath.Join(targetDir, dir)
			if err := os.Mkdir(subdir, 0o755); err != nil {
				return errors.NewEmitError("creating subdirectory", subdir, err)
			}

			// Writes into this subdirectory are gated on its creation;
			// relative to each other they remain unordered.
			sub, subctx := errgroup.WithContext(gctx)
			for _, doc := range group {
				sub.Go(func() error {
					return writeDocument(subctx, targetDir, doc)
				})
			}
			return sub.Wait()
		})
	}

	return g.Wait()
}

// groupDocuments splits documents into root-level writes and per-subdirectory
// groups, rejecting duplicate paths and nesting deeper than one level.
func groupDocuments(docs []Document) ([]Document, map[string][]Document, error) {
	seen := make(map[string]bool, len(docs))
	var rootDocs []Document
	dirDocs := make(map[string][]Document)

	for _, doc := range docs {
		if seen[doc.Path] {
			return nil, nil, fmt.Errorf("duplicate document path: %s", doc.Path)
		}
		seen[doc.Path] = true

		parts := strings.Split(filepath.ToSlash(doc.Path), "/")
		switch len(parts) {
		case 1:
			rootDocs = append(rootDocs, doc)
		case 2:
			dirDocs[parts[0]] = append(dirDocs[parts[0]], doc)
		default:
			return nil, nil, fmt.Errorf("document path nests too deep: %s", doc.Path)
		}
	}

	return rootDocs, dirDocs, nil
}

// writeDocument writes one document unless a sibling failure already
// cancelled the group.
func writeDocument(ctx context.Context, targetDir string, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path := filepath.Join(targetDir, filepath.FromSlash(doc.Path))
	if err := os.WriteFile(path, doc.Raw, 0o644); err != nil {
		return errors.NewEmitError("writing generated file", path, err)
	}

	output.Debug("wrote file", "path", doc.Path, "bytes", len(doc.Raw))
	return nil
}
