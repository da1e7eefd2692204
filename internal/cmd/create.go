package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trufflesuite/chisel/internal/config"
	"github.com/trufflesuite/chisel/internal/output"
	"github.com/trufflesuite/chisel/internal/scaffold"
	"github.com/trufflesuite/chisel/internal/workspace"
)

// NewCreateCmd creates the create command.
func NewCreateCmd() *cobra.Command {
	var (
		folderFlag    string
		workspaceFlag string
		previewFlag   string
		dryRun        bool
	)

	c := &cobra.Command{
		Use:   "create <name>",
		Short: "Scaffold a new package in the workspace",
		Long: `Scaffold a new package directory under the workspace packages area.

The package is published under the workspace scope; the --folder flag only
changes the directory name, never the package name.

Examples:
  # Create packages/widgets publishing as @ganache/widgets
  chisel create widgets

  # Same package name, different directory
  chisel create widgets --folder widgets-pkg

  # Show what would be generated without writing anything
  chisel create widgets --dry-run`,
		Args: cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return runCreate(c, args[0], folderFlag, workspaceFlag, previewFlag, dryRun)
		},
	}

	c.Flags().StringVarP(&folderFlag, "folder", "f", "",
		"directory name to create (defaults to the package name)")
	c.Flags().StringVar(&workspaceFlag, "workspace", "",
		"workspace root (defaults to walking up from the current directory)")
	c.Flags().StringVar(&previewFlag, "preview", "json",
		fmt.Sprintf("manifest preview format (%s)", strings.Join(output.ValidFormats(), ", ")))
	c.Flags().BoolVar(&dryRun, "dry-run", false,
		"build the documents and show the plan without writing")

	return c
}

func runCreate(c *cobra.Command, name, folder, workspaceRoot, preview string, dryRun bool) error {
	root := workspaceRoot
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		root, err = workspace.Find(cwd)
		if err != nil {
			return err
		}
	} else {
		abs, err := filepath.Abs(root)
		if err != nil {
			return fmt.Errorf("resolving workspace root: %w", err)
		}
		root = abs
	}

	ws, err := workspace.Load(root)
	if err != nil {
		return err
	}

	cfg, err := config.NewLoader().Load(root)
	if err != nil {
		return err
	}

	req := scaffold.Request{RawName: name, FolderOverride: folder}
	genCtx, err := scaffold.NewContext(req, ws, cfg, nil)
	if err != nil {
		return err
	}

	output.Debug("generation context ready",
		"package", genCtx.PackageName,
		"folder", genCtx.FolderName,
		"target", genCtx.TargetDir,
		"author", genCtx.Author)

	style := scaffold.ResolveStyle(root)
	builder := scaffold.NewBuilder(genCtx, nil, style)

	docs, err := builder.Build()
	if err != nil {
		return err
	}

	// Manifest preview before any filesystem mutation.
	output.Println(output.StyleBold.Render(scaffold.PathManifest))
	if err := output.WritePreview(c.OutOrStdout(), builder.Manifest(), output.ParseFormat(preview)); err != nil {
		return err
	}
	output.Println("")

	descriptions := make(map[string]string, len(docs))
	for _, doc := range docs {
		descriptions[doc.Path] = doc.Description
	}

	if dryRun {
		output.Println("Dry run; no files written. Would create:")
		output.Print(output.RenderFileTree(genCtx.FolderName, descriptions))
		return nil
	}

	emit := func() error {
		return scaffold.Emit(c.Context(), genCtx.TargetDir, docs)
	}
	title := fmt.Sprintf("Scaffolding %s...", genCtx.PackageName)
	if err := output.RunWithSpinner(c.Context(), emit, output.WithTitle(title)); err != nil {
		return err
	}

	output.Println(output.FormatCheckmark(fmt.Sprintf("Created %s in %s",
		output.StyleNoun.Render(genCtx.PackageName), genCtx.TargetDir)))
	output.Print(output.RenderFileTree(genCtx.FolderName, descriptions))

	return nil
}
