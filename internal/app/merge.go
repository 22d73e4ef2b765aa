package app

import (
	"context"

	"github.com/confit-dev/confit/internal/log"
	"github.com/confit-dev/confit/internal/pkgdir"
	"github.com/confit-dev/confit/internal/properties"
)

// MergeOptions holds options for the merge-only operation.
type MergeOptions struct {
	// PackagePath is the package directory whose properties are updated.
	PackagePath string
	// Override is the raw override mapping, a compact JSON object such
	// as {"name":"value"}.
	Override string
}

// MergeResult holds the outcome of a merge run.
type MergeResult struct {
	// Package is the normalized package directory.
	Package string
	// PropertiesPath is the rewritten property document.
	PropertiesPath string
	// KeysMerged is the number of top-level keys applied from the
	// override.
	KeysMerged int
}

// Merge runs the merge-only operation: it parses the override, applies
// it on top of the package's existing property document (absence or
// malformed content tolerated as an empty base), and writes the merged
// document back. Templates are not touched in this mode.
func Merge(ctx context.Context, opts MergeOptions) (*MergeResult, error) {
	logger := log.WithComponent("pipeline")

	pkg, err := pkgdir.Resolve(opts.PackagePath)
	if err != nil {
		return nil, NewStructuralError("invalid package directory", err)
	}

	override, err := properties.ParseOverride(opts.Override)
	if err != nil {
		return nil, NewParseError("invalid properties override", err)
	}

	store := properties.NewStore(pkg.PropertiesPath())
	doc, err := store.Load()
	if err != nil {
		return nil, NewIOError("cannot load properties", err)
	}
	if doc.Warn != nil {
		logger.Warn().Err(doc.Warn).Str("package", pkg.Root()).Msg("ignoring malformed property document")
	}

	merged := properties.Merge(doc.Values, override)
	if err := store.Write(merged); err != nil {
		return nil, NewIOError("cannot write properties", err)
	}

	logger.Debug().
		Str("package", pkg.Root()).
		Int("keys", len(override)).
		Msg("merged properties")

	return &MergeResult{
		Package:        pkg.Root(),
		PropertiesPath: pkg.PropertiesPath(),
		KeysMerged:     len(override),
	}, nil
}
